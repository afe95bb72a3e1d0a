// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app ties windows, widgets and the event queue into an
application.

# Windows

An App owns a table of Windows keyed by widget.WindowID. Ids are
assigned in increasing order starting at 1 and never reused. A window
added with AddChildWindow is listed by its parent and removed together
with it.

# Events

Dispatch delivers an event from the display to a window. Pointer and
touch events go to the deepest widget under the pointer, keyboard
events to the focused widget of the window. Events returned by a
widget bubble to its parent and finally to the window callback, after
which the window default behavior applies: Tab moves the focus and a
CloseEvent removes the window.

Commands queued while handling an event run after it, in order, before
Dispatch returns.

For example:

	a := app.New(app.DefaultConfig())
	w := app.NewWindow(content, app.Title("Hello"))
	id := a.AddWindow(w)
	for {
		err := a.Dispatch(id, ev)
		...
	}

# Timers

Plain clicks are reported when the double click delay has passed
without a second press. The App notices that at the next event, or
when Tick is called; NextDeadline tells when Tick has work to do. Run
drives a Source and calls Tick on its own.
*/
package app
