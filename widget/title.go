// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Title is the text of a window title bar.
type Title struct {
	Base
	caption
}

func NewTitle(s string) *Title {
	w := &Title{Base: newBase(KindTitle)}
	w.caption = newCaption(&w.Base, s)
	w.hAlign = layout.HFill
	w.t.SetAlign(layout.TextCenter)
	w.t.SetEllipsize(1)
	w.weight = 1
	return w
}

func (w *Title) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	sz, err := w.measure(cv, th, area, 0)
	if err != nil {
		return err
	}
	w.fitSize(sz, th, area)
	return nil
}

func (w *Title) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Title) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	if err := th.DrawBackground(cv, w.kind, w.bounds, st); err != nil {
		return err
	}
	return w.draw(cv, th, w.contentRect(th), st)
}

func (w *Title) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}

// TitleButton is an icon button of a window title bar, such as the
// close button.
type TitleButton struct {
	Base
	icon Icon
}

func NewTitleButton(ic Icon) *TitleButton {
	return &TitleButton{Base: newBase(KindTitleButton), icon: ic}
}

func (w *TitleButton) Icon() Icon {
	return w.icon
}

func (w *TitleButton) SetIcon(ic Icon) {
	if w.icon != ic {
		w.icon = ic
		w.Changed()
	}
}

func (w *TitleButton) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	w.fitSize(th.IconSize(w.kind, w.icon), th, area)
	return nil
}

func (w *TitleButton) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *TitleButton) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	if err := th.DrawBackground(cv, w.kind, w.bounds, st); err != nil {
		return err
	}
	return th.DrawIcon(cv, w.kind, w.icon, w.contentRect(th), st)
}

func (w *TitleButton) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}
