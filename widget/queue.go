// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"lwtk.org/io/event"
)

// WindowID identifies a window of an application.
type WindowID int

// Target addresses a widget of a window.
type Target struct {
	Window WindowID
	Path   Path
}

// Equal reports whether t and u address the same widget.
func (t Target) Equal(u Target) bool {
	return t.Window == u.Window && t.Path.Equal(u.Path)
}

func (t Target) String() string {
	return fmt.Sprintf("window %d %v", t.Window, []IndexPair(t.Path))
}

// Command is work deferred until the current event has been handled.
type Command interface {
	ImplementsCommand()
}

// SetFocusCmd moves the keyboard focus of a window to a widget and
// makes the window the focused window.
type SetFocusCmd struct {
	Target Target
}

// ClearStateCmd resets the interaction state of a widget.
type ClearStateCmd struct {
	Target Target
}

// SetStateCmd sets the interaction state of a widget.
type SetStateCmd struct {
	Target Target
	State  State
}

// PushEventCmd delivers an event to a widget as if it came from the
// display, bubbling to its ancestors.
type PushEventCmd struct {
	Target Target
	Event  event.Event
}

// CallbackCmd runs a function.
type CallbackCmd struct {
	Func func() error
}

func (SetFocusCmd) ImplementsCommand()   {}
func (ClearStateCmd) ImplementsCommand() {}
func (SetStateCmd) ImplementsCommand()   {}
func (PushEventCmd) ImplementsCommand()  {}
func (CallbackCmd) ImplementsCommand()   {}

// Queue is a FIFO of deferred commands.
type Queue struct {
	cmds []Command
}

// Push appends c to the queue.
func (q *Queue) Push(c Command) {
	q.cmds = append(q.cmds, c)
}

// Pending returns the queued commands without removing them.
func (q *Queue) Pending() []Command {
	return q.cmds
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return len(q.cmds)
}

// Drain runs fn for every queued command in order, including commands
// pushed by fn itself, until the queue is empty or fn fails. Commands
// left after a failure stay queued.
func (q *Queue) Drain(fn func(Command) error) error {
	for len(q.cmds) > 0 {
		c := q.cmds[0]
		q.cmds[0] = nil
		q.cmds = q.cmds[1:]
		if err := fn(c); err != nil {
			return err
		}
	}
	q.cmds = nil
	return nil
}
