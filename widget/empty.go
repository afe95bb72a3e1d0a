// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Empty is a widget without content, used to fill space. Its size is
// its padding, its preferred size and what Fill alignment gives it.
type Empty struct {
	Base
}

func NewEmpty() *Empty {
	return &Empty{Base: newBase(KindEmpty)}
}

func (w *Empty) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	w.fitSize(layout.Size{}, th, area)
	return nil
}

func (w *Empty) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Empty) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	return th.DrawBackground(cv, w.kind, w.bounds, w.drawState(focusedWindow))
}

func (w *Empty) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}
