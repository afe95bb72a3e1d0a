// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
)

// Context is passed to CallOn. It addresses the widget handling the
// event and gives access to the deferred command queue and to the
// input bookkeeping shared by all widgets of an application.
type Context struct {
	// Target is the widget the event is delivered to.
	Target Target
	// Now is the time of the event being dispatched, on the same
	// clock as pointer.Event.Time.
	Now   time.Duration
	Queue *Queue
	Input *Input
}

// Push queues c.
func (c *Context) Push(cmd Command) {
	c.Queue.Push(cmd)
}

// PushEvent queues ev for delivery to the widget handling the current
// event.
func (c *Context) PushEvent(ev event.Event) {
	c.Queue.Push(PushEventCmd{Target: c.Target, Event: ev})
}

// OnFunc is a user event callback. It receives the raw event and the
// result of the default behavior, and returns the event to pass on to
// the parent, or nil to stop.
type OnFunc func(ctx *Context, w Widget, ev, def event.Event) (event.Event, error)

// owner is an optional widget target.
type owner struct {
	target Target
	ok     bool
}

func (o owner) is(t Target) bool {
	return o.ok && o.target.Equal(t)
}

type clickKey struct {
	source pointer.Source
	id     pointer.ID
}

// pending is the click gesture of a pointer or touch point.
type pending struct {
	click gesture.Click
	owner Target
}

// Input holds the pointer, touch and keyboard bookkeeping of an
// application: which widget owns the pointer, which one was pressed,
// and the click gestures in progress.
type Input struct {
	Delays    gesture.Delays
	Modifiers key.Modifiers

	hover   owner
	popup   owner
	key     owner
	touches map[pointer.ID]owner
	clicks  map[clickKey]*pending
}

func (in *Input) pendingFor(k clickKey) *pending {
	if in.clicks == nil {
		in.clicks = make(map[clickKey]*pending)
	}
	p, ok := in.clicks[k]
	if !ok {
		p = &pending{click: gesture.Click{Delays: in.Delays}}
		in.clicks[k] = p
	}
	return p
}

// Hover returns the widget owning the mouse pointer.
func (in *Input) Hover() (Target, bool) {
	return in.hover.target, in.hover.ok
}

// Expire queues the plain clicks whose double click window has passed
// at now.
func (in *Input) Expire(q *Queue, now time.Duration) {
	for _, p := range in.clicks {
		if e, ok := p.click.Expire(now); ok {
			q.Push(PushEventCmd{Target: p.owner, Event: e})
		}
	}
}

// NextDeadline returns the earliest time at which Expire has a click
// to report.
func (in *Input) NextDeadline() (time.Duration, bool) {
	var next time.Duration
	found := false
	for _, p := range in.clicks {
		if d, ok := p.click.Deadline(); ok && (!found || d < next) {
			next, found = d, true
		}
	}
	return next, found
}

// Cancel abandons the press of a pointer that was released outside of
// any widget.
func (in *Input) Cancel(q *Queue, e pointer.Event) {
	p, ok := in.clicks[clickKey{e.Source, e.PointerID}]
	if ok && p.click.State() == gesture.StatePressed {
		p.click.Cancel()
		q.Push(ClearStateCmd{Target: p.owner})
	}
	if e.Source == pointer.Touch {
		delete(in.touches, e.PointerID)
	}
}

// ForgetWindow drops all bookkeeping referring to window id.
func (in *Input) ForgetWindow(id WindowID) {
	for _, o := range []*owner{&in.hover, &in.popup, &in.key} {
		if o.ok && o.target.Window == id {
			*o = owner{}
		}
	}
	for k, o := range in.touches {
		if o.target.Window == id {
			delete(in.touches, k)
		}
	}
	for k, p := range in.clicks {
		if p.owner.Window == id {
			delete(in.clicks, k)
		}
	}
}

// own makes the widget handling the event the owner of slot. The
// state of the previous owner is cleared after dispatch.
func own(ctx *Context, slot *owner) {
	if slot.ok && !slot.target.Equal(ctx.Target) {
		ctx.Push(ClearStateCmd{Target: slot.target})
	}
	*slot = owner{target: ctx.Target, ok: true}
}
