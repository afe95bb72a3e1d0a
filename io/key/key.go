// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events.
package key

import (
	"fmt"
	"strings"
)

// A FocusEvent is generated when a window gains or loses the
// keyboard focus.
type FocusEvent struct {
	Focus bool
}

// An Event is generated when a key is pressed, released or repeated
// by the keyboard.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
	// Repeated is set for presses generated by key repeat.
	Repeated bool
	// Text is the text typed by the key, if any.
	Text string
}

// A ModifiersEvent is generated when the set of active modifiers
// changes.
type ModifiersEvent struct {
	Modifiers Modifiers
}

// A StrokeEvent is synthesized by a widget for every key pressed
// while it has the focus.
type StrokeEvent struct {
	Name      Name
	Modifiers Modifiers
}

// A CharEvent is synthesized by a widget for every character typed
// while it has the focus.
type CharEvent struct {
	Rune rune
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key.
	ModAlt
	// ModSuper is the "logo" modifier key.
	ModSuper
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
)

// Activates reports whether n activates a clickable widget.
func (n Name) Activates() bool {
	return n == NameReturn || n == NameEnter || n == NameSpace
}

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent()          {}
func (FocusEvent) ImplementsEvent()     {}
func (ModifiersEvent) ImplementsEvent() {}
func (StrokeEvent) ImplementsEvent()    {}
func (CharEvent) ImplementsEvent()      {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (e Event) String() string {
	n := string(e.Name)
	if e.Modifiers != 0 {
		n = e.Modifiers.String() + "-" + n
	}
	if e.Repeated {
		return fmt.Sprintf("%s %v (repeated)", n, e.State)
	}
	return fmt.Sprintf("%s %v", n, e.State)
}
