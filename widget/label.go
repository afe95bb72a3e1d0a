// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Label displays text.
type Label struct {
	Base
	caption
}

func NewLabel(s string) *Label {
	w := &Label{Base: newBase(KindLabel)}
	w.caption = newCaption(&w.Base, s)
	return w
}

func (w *Label) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	sz, err := w.measure(cv, th, area, 0)
	if err != nil {
		return err
	}
	w.fitSize(sz, th, area)
	return nil
}

func (w *Label) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Label) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	if err := th.DrawBackground(cv, w.kind, w.bounds, st); err != nil {
		return err
	}
	return w.draw(cv, th, w.contentRect(th), st)
}

func (w *Label) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}
