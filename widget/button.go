// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Button is a clickable widget with a text. Clicks are passed on to
// the callback and the parent as gesture.ClickEvent.
type Button struct {
	Base
	caption
}

func NewButton(s string) *Button {
	w := &Button{Base: newBase(KindButton)}
	w.caption = newCaption(&w.Base, s)
	w.focusable = true
	w.t.SetAlign(layout.TextCenter)
	return w
}

func (w *Button) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	sz, err := w.measure(cv, th, area, 0)
	if err != nil {
		return err
	}
	w.fitSize(sz, th, area)
	return nil
}

func (w *Button) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Button) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	if err := th.DrawBackground(cv, w.kind, w.bounds, st); err != nil {
		return err
	}
	return w.draw(cv, th, w.contentRect(th), st)
}

func (w *Button) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}
