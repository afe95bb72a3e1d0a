// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

A Click is fed low level press and release events and tells a plain
click from a double click and a long click. Long and double clicks are
known when the button is released. A plain click is only known once
the double click window has passed without a second press, so it is
reported by Expire, which the owner calls on the next input event or
at its timer deadline.
*/
package gesture

import (
	"time"

	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
	"lwtk.org/layout"
)

// Default delays.
const (
	DefaultLongClickDelay   = time.Second
	DefaultDoubleClickDelay = 400 * time.Millisecond
)

// Delays configures click disambiguation. Zero fields take their
// default values.
type Delays struct {
	// LongClick is how long a press must be held to be a long click.
	LongClick time.Duration
	// DoubleClick is how soon after a release a second press makes a
	// double click.
	DoubleClick time.Duration
}

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	Delays Delays

	state     ClickState
	pressed   time.Duration
	released  time.Duration
	double    bool
	position  layout.Pos
	source    pointer.Source
	modifiers key.Modifiers
}

type ClickState uint8

// ClickEvent represent a completed click action.
type ClickEvent struct {
	Kind      ClickKind
	Position  layout.Pos
	Source    pointer.Source
	Modifiers key.Modifiers
}

type ClickKind uint8

const (
	// StateIdle is the default click state.
	StateIdle ClickState = iota
	// StatePressed is reported while a button is held.
	StatePressed
	// StateReleased is reported after a release, while a second
	// press can still make a double click.
	StateReleased
)

const (
	// KindClick is a single short click.
	KindClick ClickKind = iota
	// KindDoubleClick is two clicks in quick succession.
	KindDoubleClick
	// KindLongClick is a press held for at least the long click delay.
	KindLongClick
	// KindPopupClick requests a context menu: a secondary button click
	// or a held touch.
	KindPopupClick
)

func (ClickEvent) ImplementsEvent() {}

var _ event.Event = ClickEvent{}

func (d Delays) longClick() time.Duration {
	if d.LongClick <= 0 {
		return DefaultLongClickDelay
	}
	return d.LongClick
}

func (d Delays) doubleClick() time.Duration {
	if d.DoubleClick <= 0 {
		return DefaultDoubleClickDelay
	}
	return d.DoubleClick
}

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Press records a button press and reports whether the pressed
// widget should become active. A press arriving while a release is
// pending arms a double click and leaves the state as it is. Callers
// are expected to call Expire with the event time first.
func (c *Click) Press(e pointer.Event) bool {
	if c.state == StateReleased && e.Time-c.released < c.Delays.doubleClick() {
		c.state = StatePressed
		c.double = true
		c.pressed = e.Time
		return false
	}
	c.state = StatePressed
	c.double = false
	c.pressed = e.Time
	c.position = e.Position
	c.source = e.Source
	c.modifiers = e.Modifiers
	return true
}

// Release completes a press. It returns a double or long click
// immediately; a plain click stays pending until Expire.
func (c *Click) Release(e pointer.Event) (ClickEvent, bool) {
	if c.state != StatePressed {
		return ClickEvent{}, false
	}
	switch {
	case c.double:
		c.reset()
		return c.event(KindDoubleClick), true
	case e.Time-c.pressed >= c.Delays.longClick():
		c.reset()
		return c.event(KindLongClick), true
	}
	c.state = StateReleased
	c.released = e.Time
	return ClickEvent{}, false
}

// Expire reports the pending plain click once the double click window
// has passed at time now.
func (c *Click) Expire(now time.Duration) (ClickEvent, bool) {
	if c.state != StateReleased || now-c.released < c.Delays.doubleClick() {
		return ClickEvent{}, false
	}
	c.reset()
	return c.event(KindClick), true
}

// Flush reports the pending plain click regardless of time, for when
// another target takes over the gesture.
func (c *Click) Flush() (ClickEvent, bool) {
	if c.state != StateReleased {
		return ClickEvent{}, false
	}
	c.reset()
	return c.event(KindClick), true
}

// Deadline returns the time at which Expire will report the pending
// click, if any.
func (c *Click) Deadline() (time.Duration, bool) {
	if c.state != StateReleased {
		return 0, false
	}
	return c.released + c.Delays.doubleClick(), true
}

// Cancel abandons the gesture without a click.
func (c *Click) Cancel() {
	c.reset()
}

func (c *Click) reset() {
	c.state = StateIdle
	c.double = false
}

func (c *Click) event(k ClickKind) ClickEvent {
	return ClickEvent{Kind: k, Position: c.position, Source: c.source, Modifiers: c.modifiers}
}

func (ck ClickKind) String() string {
	switch ck {
	case KindClick:
		return "KindClick"
	case KindDoubleClick:
		return "KindDoubleClick"
	case KindLongClick:
		return "KindLongClick"
	case KindPopupClick:
		return "KindPopupClick"
	default:
		panic("invalid ClickKind")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateIdle:
		return "StateIdle"
	case StatePressed:
		return "StatePressed"
	case StateReleased:
		return "StateReleased"
	default:
		panic("invalid ClickState")
	}
}
