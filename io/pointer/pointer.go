// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events.

Mouse and touch input share the Event type and are told apart by its
Source. Touch events carry the PointerID of the touch point; mouse
events always use PointerID 0.
*/
package pointer

import (
	"strings"
	"time"

	"lwtk.org/io/key"
	"lwtk.org/layout"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	// For Press and Release it is the single button that changed.
	Buttons Buttons
	// Position is the coordinates of the event in the local coordinate
	// system of the window.
	Position layout.Pos
	// Modifiers is the set of active modifiers when
	// the mouse button was pressed.
	Modifiers key.Modifiers
}

// ID uniquely identifies a pointer, such as a finger on a touch
// screen.
type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// A Press event is generated when a pointer is pressed.
	Press Kind = iota
	// A Release event is generated when a pointer is released.
	Release
	// A Move event is generated when a pointer moves.
	Move
	// An Enter event is generated when a pointer enters a window.
	Enter
	// A Leave event is generated when a pointer leaves a window.
	Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (Event) ImplementsEvent() {}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	default:
		panic("unknown kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
