// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
	"lwtk.org/widget"
)

// App is the window table of an application together with the
// event queue and input state shared by its windows.
type App struct {
	cfg      Config
	windows  map[widget.WindowID]*Window
	lastID   widget.WindowID
	focused  widget.WindowID
	queue    widget.Queue
	input    widget.Input
	now      time.Duration
	draining bool
}

// New returns an application without windows.
func New(cfg Config) *App {
	a := &App{
		cfg:     cfg,
		windows: make(map[widget.WindowID]*Window),
	}
	a.input.Delays = cfg.Delays()
	return a
}

// Config returns the configuration passed to New.
func (a *App) Config() Config {
	return a.cfg
}

// AddWindow adds w to the table and returns its id.
func (a *App) AddWindow(w *Window) widget.WindowID {
	a.lastID++
	w.id = a.lastID
	a.windows[w.id] = w
	return w.id
}

// AddChildWindow adds w as a child of the window parent.
func (a *App) AddChildWindow(parent widget.WindowID, w *Window) (widget.WindowID, error) {
	p, ok := a.windows[parent]
	if !ok {
		return 0, ErrNoWindow
	}
	id := a.AddWindow(w)
	w.parent = parent
	p.addChild(id)
	return id, nil
}

// RemoveWindow removes a window and its child windows, recursively.
func (a *App) RemoveWindow(id widget.WindowID) error {
	w, ok := a.windows[id]
	if !ok {
		return ErrNoWindow
	}
	for _, c := range slices.Clone(w.children) {
		if err := a.RemoveWindow(c); err != nil {
			return err
		}
	}
	if p, ok := a.windows[w.parent]; ok {
		p.removeChild(id)
	}
	delete(a.windows, id)
	a.input.ForgetWindow(id)
	if a.focused == id {
		a.focused = 0
	}
	w.id, w.parent, w.children = 0, 0, nil
	return nil
}

// Window returns the window with the given id.
func (a *App) Window(id widget.WindowID) (*Window, bool) {
	w, ok := a.windows[id]
	return w, ok
}

// Windows returns the ids of all windows in increasing order.
func (a *App) Windows() []widget.WindowID {
	ids := maps.Keys(a.windows)
	slices.Sort(ids)
	return ids
}

// FocusedWindow returns the id of the window with the keyboard focus.
func (a *App) FocusedWindow() (widget.WindowID, bool) {
	return a.focused, a.focused != 0
}

// SetFocusedWindow moves the keyboard focus to window id.
func (a *App) SetFocusedWindow(id widget.WindowID) error {
	w, ok := a.windows[id]
	if !ok {
		return ErrNoWindow
	}
	if prev, ok := a.windows[a.focused]; ok && prev != w {
		prev.SetFocus(false)
	}
	a.focused = id
	w.SetFocus(true)
	return nil
}

// Focus moves the keyboard focus to the widget t and its window.
func (a *App) Focus(t widget.Target) error {
	w, ok := a.windows[t.Window]
	if !ok {
		return ErrNoWindow
	}
	if !w.SetFocusedWidget(t.Path) {
		return ErrNoWidget
	}
	return a.SetFocusedWindow(t.Window)
}

// Lookup returns the widget addressed by t.
func (a *App) Lookup(t widget.Target) (widget.Widget, error) {
	w, ok := a.windows[t.Window]
	if !ok {
		return nil, ErrNoWindow
	}
	root := w.Root()
	if root == nil {
		return nil, ErrNoWidget
	}
	wt, ok := widget.Lookup(root, t.Path)
	if !ok {
		return nil, ErrNoWidget
	}
	return wt, nil
}

// Queue returns the deferred command queue. Commands pushed outside
// of event handling run at the next Dispatch, Tick or Flush.
func (a *App) Queue() *widget.Queue {
	return &a.queue
}

// Input returns the input bookkeeping shared by the windows.
func (a *App) Input() *widget.Input {
	return &a.input
}

// Now returns the time of the latest event.
func (a *App) Now() time.Duration {
	return a.now
}

// Send delivers ev to the widget t as if it came from the display,
// and runs the commands it queues.
func (a *App) Send(t widget.Target, ev event.Event) error {
	if _, err := a.Lookup(t); err != nil {
		return err
	}
	a.queue.Push(widget.PushEventCmd{Target: t, Event: ev})
	return a.Flush()
}

// Dispatch delivers an event from the display to window id, then runs
// the queued commands.
func (a *App) Dispatch(id widget.WindowID, ev event.Event) error {
	w, ok := a.windows[id]
	if !ok {
		return ErrNoWindow
	}
	if e, ok := ev.(pointer.Event); ok && e.Time > a.now {
		a.now = e.Time
	}
	a.input.Expire(&a.queue, a.now)
	if err := a.Flush(); err != nil {
		return err
	}
	if err := a.route(w, ev); err != nil {
		return err
	}
	return a.Flush()
}

// Tick reports the plain clicks whose double click delay has passed
// at now.
func (a *App) Tick(now time.Duration) error {
	if now > a.now {
		a.now = now
	}
	a.input.Expire(&a.queue, a.now)
	return a.Flush()
}

// NextDeadline returns the time at which Tick has a click to report.
func (a *App) NextDeadline() (time.Duration, bool) {
	return a.input.NextDeadline()
}

// route finds the target of ev in w.
func (a *App) route(w *Window, ev event.Event) error {
	switch e := ev.(type) {
	case pointer.Event:
		return a.routePointer(w, e)
	case key.Event:
		if p, ok := w.FocusedWidget(); ok {
			return a.deliver(widget.Target{Window: w.id, Path: p}, ev)
		}
	case key.ModifiersEvent:
		a.input.Modifiers = e.Modifiers
	case key.FocusEvent:
		if e.Focus {
			if err := a.SetFocusedWindow(w.id); err != nil {
				return err
			}
		} else {
			w.SetFocus(false)
			if a.focused == w.id {
				a.focused = 0
			}
		}
	}
	return a.handle(a.context(widget.Target{Window: w.id}), w, ev)
}

func (a *App) routePointer(w *Window, e pointer.Event) error {
	if e.Kind == pointer.Leave {
		if t, ok := a.input.Hover(); ok && t.Window == w.id {
			return a.deliver(t, e)
		}
		return a.handle(a.context(widget.Target{Window: w.id}), w, e)
	}
	p, ok := w.hitTest(e.Position)
	if ok {
		return a.deliver(widget.Target{Window: w.id, Path: p}, e)
	}
	switch e.Kind {
	case pointer.Move, pointer.Enter:
		if t, ok := a.input.Hover(); ok && t.Window == w.id && e.Source == pointer.Mouse {
			leave := e
			leave.Kind = pointer.Leave
			if err := a.deliver(t, leave); err != nil {
				return err
			}
		}
	case pointer.Release:
		a.input.Cancel(&a.queue, e)
	}
	return a.handle(a.context(widget.Target{Window: w.id}), w, e)
}

func (a *App) context(t widget.Target) *widget.Context {
	return &widget.Context{Target: t, Now: a.now, Queue: &a.queue, Input: &a.input}
}

// deliver passes ev to the widget t and bubbles the result up to the
// window. Targets that no longer exist are ignored.
func (a *App) deliver(t widget.Target, ev event.Event) error {
	w, ok := a.windows[t.Window]
	if !ok {
		return nil
	}
	root := w.Root()
	if root == nil {
		return nil
	}
	p := t.Path
	for {
		wt, ok := widget.Lookup(root, p)
		if !ok {
			return nil
		}
		ctx := a.context(widget.Target{Window: t.Window, Path: p})
		res, err := wt.CallOn(ctx, ev)
		if err != nil || res == nil {
			return err
		}
		ev = res
		parent, ok := p.Parent()
		if !ok {
			return a.handle(ctx, w, ev)
		}
		p = parent
	}
}

// handle runs the window callback and the window default behavior.
func (a *App) handle(ctx *widget.Context, w *Window, ev event.Event) error {
	if w.on != nil {
		res, err := w.on(ctx, w, ev)
		if err != nil || res == nil {
			return err
		}
		ev = res
	}
	switch e := ev.(type) {
	case CloseEvent:
		return a.RemoveWindow(w.id)
	case MinimizeEvent:
		w.SetVisible(false)
	case key.StrokeEvent:
		if e.Name == key.NameTab {
			moveFocus(ctx, w, e.Modifiers)
		}
	case key.Event:
		// No widget has the focus.
		if e.Name == key.NameTab && e.State == key.Press {
			moveFocus(ctx, w, e.Modifiers)
		}
	}
	return nil
}

// moveFocus queues a focus change to the next focusable widget of w,
// or the previous one when Shift is held.
func moveFocus(ctx *widget.Context, w *Window, mods key.Modifiers) {
	root := w.Root()
	if root == nil {
		return
	}
	from, _ := w.FocusedWidget()
	next := widget.NextFocus
	if mods.Contain(key.ModShift) {
		next = widget.PrevFocus
	}
	if p, ok := next(root, from); ok {
		ctx.Push(widget.SetFocusCmd{Target: widget.Target{Window: w.id, Path: p}})
	}
}

// Flush runs the queued commands. It stops at the first failing
// callback and leaves the commands after it queued.
func (a *App) Flush() error {
	if a.draining {
		return nil
	}
	a.draining = true
	defer func() { a.draining = false }()
	return a.queue.Drain(a.run)
}

// run interprets a command. Commands addressing removed windows or
// widgets do nothing.
func (a *App) run(c widget.Command) error {
	switch c := c.(type) {
	case widget.SetFocusCmd:
		if err := a.Focus(c.Target); err != nil && err != ErrNoWindow && err != ErrNoWidget {
			return err
		}
	case widget.ClearStateCmd:
		if w, err := a.Lookup(c.Target); err == nil {
			w.Wrappee().SetState(widget.StateNone)
		}
	case widget.SetStateCmd:
		if w, err := a.Lookup(c.Target); err == nil {
			w.Wrappee().SetState(c.State)
		}
	case widget.PushEventCmd:
		return a.deliver(c.Target, c.Event)
	case widget.CallbackCmd:
		return c.Func()
	}
	return nil
}

// dirty returns the ids of the visible windows needing a redraw.
func (a *App) dirty() []widget.WindowID {
	var ids []widget.WindowID
	for _, id := range a.Windows() {
		if w := a.windows[id]; w.visible && w.Changed() {
			ids = append(ids, id)
		}
	}
	return ids
}
