// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/text"
)

// caption is the text of a widget. Its setters raise the change flag
// of the owning widget.
type caption struct {
	t    *text.Text
	base *Base
}

func newCaption(b *Base, s string) caption {
	return caption{t: text.New(s), base: b}
}

func (c caption) Text() string {
	return c.t.String()
}

func (c caption) SetText(s string) {
	if c.t.SetString(s) {
		c.base.Changed()
	}
}

func (c caption) TextAlign() layout.TextAlign {
	return c.t.Align()
}

func (c caption) SetTextAlign(a layout.TextAlign) {
	if c.t.SetAlign(a) {
		c.base.Changed()
	}
}

// Ellipsize returns the maximum number of lines of the text, or 0.
func (c caption) Ellipsize() int {
	return c.t.Ellipsize()
}

func (c caption) SetEllipsize(n int) {
	if c.t.SetEllipsize(n) {
		c.base.Changed()
	}
}

// Trim reports whether leading whitespace of wrapped lines is skipped.
func (c caption) Trim() bool {
	return c.t.Trim()
}

func (c caption) SetTrim(trim bool) {
	if c.t.SetTrim(trim) {
		c.base.Changed()
	}
}

// measure breaks the text for area, the available size of the whole
// widget, less extra pixels of width used by other content. It returns
// the size of the text.
func (c caption) measure(cv paint.Canvas, th Theme, area layout.OptSize, extra int) (layout.Size, error) {
	k := c.base.kind
	if err := th.SetFont(cv, k); err != nil {
		return layout.Size{}, err
	}
	inner := layout.InnerOptSize(layout.InnerOptSize(area, th.Margin(k)), th.Padding(k))
	inner.Width = inner.Width.Sub(extra)
	if err := c.t.UpdateSize(cv, inner); err != nil {
		return layout.Size{}, err
	}
	return c.t.Size(), nil
}

func (c caption) draw(cv paint.Canvas, th Theme, area layout.Rect, st DrawState) error {
	k := c.base.kind
	if err := th.SetFont(cv, k); err != nil {
		return err
	}
	return th.DrawText(cv, k, c.t, area, st)
}
