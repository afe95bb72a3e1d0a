// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
)

// step is a handler of the default behavior chain. It reports false
// when it does not apply to the event. Otherwise the returned event is
// passed on to the parent, or propagation stops when it is nil.
type step func(ctx *Context, w Widget, ev event.Event) (event.Event, bool)

// leafChain is the default behavior of leaf widgets.
var leafChain = []step{pointerStep, keyboardStep, touchStep, clickStep, passStep}

// containerChain is the default behavior of containers.
var containerChain = []step{motionStep, passStep}

// clickHandler is implemented by widgets reacting to clicks.
type clickHandler interface {
	handleClick(ctx *Context, e gesture.ClickEvent) (event.Event, bool)
}

// runChain returns the default result of the first step applying to
// ev.
func runChain(ctx *Context, w Widget, ev event.Event, chain []step) event.Event {
	for _, s := range chain {
		if res, ok := s(ctx, w, ev); ok {
			return res
		}
	}
	return ev
}

// callOn runs the default behavior of w and then its callback.
func callOn(ctx *Context, w Widget, ev event.Event, chain []step) (event.Event, error) {
	def := runChain(ctx, w, ev, chain)
	if on := w.Wrappee().on; on != nil {
		return on(ctx, w, ev, def)
	}
	return def, nil
}

func clickable(b *Base) bool {
	switch b.kind {
	case KindButton, KindCheck, KindRadio, KindTitleButton:
		return b.enabled
	}
	return false
}

// hover sets the hover state of a clickable widget that is not
// pressed.
func hover(b *Base) {
	if clickable(b) && b.state == StateNone {
		b.SetState(StateHover)
	}
}

func pointerStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	e, ok := ev.(pointer.Event)
	if !ok || e.Source != pointer.Mouse {
		return nil, false
	}
	b := w.Wrappee()
	in := ctx.Input
	switch e.Kind {
	case pointer.Enter, pointer.Move:
		own(ctx, &in.hover)
		hover(b)
		return nil, true
	case pointer.Leave:
		if in.hover.is(ctx.Target) {
			in.hover = owner{}
		}
		if b.state == StateHover {
			b.SetState(StateNone)
		}
		return ev, true
	case pointer.Press:
		if !clickable(b) {
			return ev, true
		}
		switch {
		case e.Buttons.Contain(pointer.ButtonPrimary):
			press(ctx, b, e)
		case e.Buttons.Contain(pointer.ButtonSecondary):
			in.popup = owner{target: ctx.Target, ok: true}
		}
		return nil, true
	case pointer.Release:
		switch {
		case e.Buttons.Contain(pointer.ButtonPrimary):
			if !release(ctx, b, e) {
				return ev, true
			}
		case e.Buttons.Contain(pointer.ButtonSecondary):
			if !in.popup.is(ctx.Target) {
				in.popup = owner{}
				return ev, true
			}
			in.popup = owner{}
			ctx.PushEvent(gesture.ClickEvent{
				Kind:      gesture.KindPopupClick,
				Position:  e.Position,
				Source:    e.Source,
				Modifiers: e.Modifiers,
			})
		}
		return nil, true
	}
	return nil, false
}

// press starts a click gesture on the widget handling the event. A
// pending click of another widget is reported at once.
func press(ctx *Context, b *Base, e pointer.Event) {
	p := ctx.Input.pendingFor(clickKey{e.Source, e.PointerID})
	if !p.owner.Equal(ctx.Target) {
		if c, ok := p.click.Flush(); ok {
			ctx.Push(PushEventCmd{Target: p.owner, Event: c})
		}
		p.click.Cancel()
		p.owner = ctx.Target
	}
	if p.click.Press(e) {
		b.SetState(StateActive)
	}
	if b.focusable {
		ctx.Push(SetFocusCmd{Target: ctx.Target})
	}
}

// release ends the click gesture of e. It reports false when the press
// did not happen on the widget handling the event, in which case the
// gesture is abandoned.
func release(ctx *Context, b *Base, e pointer.Event) bool {
	p, ok := ctx.Input.clicks[clickKey{e.Source, e.PointerID}]
	if !ok || p.click.State() != gesture.StatePressed {
		return false
	}
	if !p.owner.Equal(ctx.Target) {
		p.click.Cancel()
		ctx.Push(ClearStateCmd{Target: p.owner})
		return false
	}
	if e.Source == pointer.Touch {
		b.SetState(StateNone)
		p.click.Cancel()
		ctx.PushEvent(gesture.ClickEvent{
			Kind:      gesture.KindPopupClick,
			Position:  e.Position,
			Source:    e.Source,
			Modifiers: e.Modifiers,
		})
		return true
	}
	b.SetState(StateHover)
	if c, ok := p.click.Release(e); ok {
		ctx.PushEvent(c)
	}
	return true
}

func keyboardStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	e, ok := ev.(key.Event)
	if !ok {
		return nil, false
	}
	b := w.Wrappee()
	in := ctx.Input
	switch e.State {
	case key.Press:
		if e.Name.Activates() && clickable(b) && !e.Repeated {
			b.SetState(StateActive)
			in.key = owner{target: ctx.Target, ok: true}
		}
		ctx.PushEvent(key.StrokeEvent{Name: e.Name, Modifiers: e.Modifiers})
		for _, r := range e.Text {
			ctx.PushEvent(key.CharEvent{Rune: r})
		}
	case key.Release:
		if e.Name.Activates() && in.key.is(ctx.Target) {
			in.key = owner{}
			if b.state == StateActive {
				b.SetState(StateNone)
				ctx.PushEvent(gesture.ClickEvent{Kind: gesture.KindClick, Modifiers: e.Modifiers})
			}
		}
	}
	return nil, true
}

func touchStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	e, ok := ev.(pointer.Event)
	if !ok || e.Source != pointer.Touch {
		return nil, false
	}
	b := w.Wrappee()
	in := ctx.Input
	switch e.Kind {
	case pointer.Move:
		if in.touches == nil {
			in.touches = make(map[pointer.ID]owner)
		}
		slot := in.touches[e.PointerID]
		own(ctx, &slot)
		in.touches[e.PointerID] = slot
		return nil, true
	case pointer.Press:
		if !clickable(b) {
			return ev, true
		}
		press(ctx, b, e)
		return nil, true
	case pointer.Release:
		delete(in.touches, e.PointerID)
		if !release(ctx, b, e) {
			return ev, true
		}
		return nil, true
	}
	return nil, false
}

func clickStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	e, ok := ev.(gesture.ClickEvent)
	if !ok {
		return nil, false
	}
	if !w.Wrappee().enabled {
		return nil, true
	}
	if h, ok := w.(clickHandler); ok {
		return h.handleClick(ctx, e)
	}
	return nil, false
}

// motionStep tracks the pointer owner for containers hit between their
// children.
func motionStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	e, ok := ev.(pointer.Event)
	if !ok || e.Source != pointer.Mouse {
		return nil, false
	}
	if e.Kind == pointer.Move || e.Kind == pointer.Enter {
		own(ctx, &ctx.Input.hover)
		return nil, true
	}
	return nil, false
}

func passStep(ctx *Context, w Widget, ev event.Event) (event.Event, bool) {
	return ev, true
}
