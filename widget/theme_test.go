// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"lwtk.org/font"
	"lwtk.org/internal/painttest"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/text"
)

// testTheme has a 1 pixel margin around leaves, a 2 pixel padding in
// buttons and 10x10 icons. Layouts have neither margin nor padding.
type testTheme struct{}

func (testTheme) Margin(k Kind) layout.Edges {
	switch k {
	case KindLinearLayout, KindGridLayout:
		return layout.Edges{}
	}
	return layout.UniformEdges(1)
}

func (testTheme) Padding(k Kind) layout.Edges {
	if k == KindButton {
		return layout.UniformEdges(2)
	}
	return layout.Edges{}
}

func (testTheme) IconSize(k Kind, ic Icon) layout.Size {
	return layout.Sz(10, 10)
}

func (testTheme) SetFont(cv paint.Canvas, k Kind) error {
	return cv.SetFont(font.Font{Size: 12})
}

func (testTheme) DrawBackground(cv paint.Canvas, k Kind, bounds layout.Rect, st DrawState) error {
	if k == KindButton {
		return paint.FillRect(cv, bounds, color.Gray{Y: 0xee})
	}
	return nil
}

func (testTheme) DrawText(cv paint.Canvas, k Kind, t *text.Text, area layout.Rect, st DrawState) error {
	cv.SetSourceColor(color.Black)
	return t.Draw(cv, area)
}

func (testTheme) DrawIcon(cv paint.Canvas, k Kind, ic Icon, area layout.Rect, st DrawState) error {
	return paint.FillRect(cv, area, color.Black)
}

// sized lays out w for area on a recording canvas.
func sized(w Widget, area layout.OptSize) error {
	cv := painttest.New()
	th := testTheme{}
	if err := w.UpdateSize(cv, th, area); err != nil {
		return err
	}
	mb := w.Wrappee().MarginBounds()
	return w.UpdatePos(cv, th, layout.Rect{Width: area.Width.Or(mb.Width), Height: area.Height.Or(mb.Height)})
}

func unbounded() layout.OptSize {
	return layout.OptSize{}
}

func bounded(w, h int) layout.OptSize {
	return layout.OptSize{Width: layout.Some(w), Height: layout.Some(h)}
}
