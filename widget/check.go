// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Check is a check box with a text. Any click flips it and emits a
// CheckChange.
type Check struct {
	Base
	caption
	checked bool
}

func NewCheck(s string) *Check {
	w := &Check{Base: newBase(KindCheck)}
	w.caption = newCaption(&w.Base, s)
	w.focusable = true
	return w
}

func (w *Check) Checked() bool {
	return w.checked
}

func (w *Check) SetChecked(checked bool) {
	if w.checked != checked {
		w.checked = checked
		w.Changed()
	}
}

func (w *Check) handleClick(ctx *Context, e gesture.ClickEvent) (event.Event, bool) {
	w.SetChecked(!w.checked)
	return CheckChange{Checked: w.checked}, true
}

func (w *Check) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	return updateIconCaption(cv, th, &w.Base, w.caption, IconCheck, area)
}

func (w *Check) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Check) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	st.Checked = w.checked
	return drawIconCaption(cv, th, &w.Base, w.caption, IconCheck, st)
}

func (w *Check) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}

// updateIconCaption sizes a widget showing an icon left of its text.
func updateIconCaption(cv paint.Canvas, th Theme, b *Base, c caption, ic Icon, area layout.OptSize) error {
	isz := th.IconSize(b.kind, ic)
	tsz, err := c.measure(cv, th, area, isz.Width)
	if err != nil {
		return err
	}
	b.fitSize(layout.Sz(isz.Width+tsz.Width, max(isz.Height, tsz.Height)), th, area)
	return nil
}

func drawIconCaption(cv paint.Canvas, th Theme, b *Base, c caption, ic Icon, st DrawState) error {
	if err := th.DrawBackground(cv, b.kind, b.bounds, st); err != nil {
		return err
	}
	r := b.contentRect(th)
	isz := th.IconSize(b.kind, ic)
	icr := layout.Rect{X: r.X, Y: r.Y + (r.Height-isz.Height)/2, Width: isz.Width, Height: isz.Height}
	if err := th.DrawIcon(cv, b.kind, ic, icr, st); err != nil {
		return err
	}
	r.X += isz.Width
	r.Width = max(r.Width-isz.Width, 0)
	return c.draw(cv, th, r, st)
}
