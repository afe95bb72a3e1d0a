// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
//
// Input events arrive from a display connection as pointer.Event,
// key.Event, key.FocusEvent and key.ModifiersEvent values. Widgets
// synthesize higher level events from them: gesture.ClickEvent,
// key.StrokeEvent, key.CharEvent and the widget specific events of
// package widget.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
