// SPDX-License-Identifier: Unlicense OR MIT

// Package painttest provides a recording paint.Canvas for tests. It
// measures text with a text.CellMeasurer and records every drawing
// call instead of producing pixels.
package painttest

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"lwtk.org/font"
	"lwtk.org/paint"
	"lwtk.org/text"
)

// ErrInjected is returned by the operation named in Canvas.FailOn.
var ErrInjected = errors.New("painttest: injected failure")

// Op is a recorded canvas call.
type Op struct {
	Name string
	Args []float64
	Text string
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q)", o.Name, o.Text)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Canvas records calls. The zero value measures with 8x14 pixel cells.
type Canvas struct {
	Cells text.CellMeasurer
	// FailOn names an operation ("fill", "stroke", "show_text",
	// "font_extents", "text_extents", "draw_image") that fails with
	// ErrInjected.
	FailOn string

	Ops   []Op
	Font  font.Font
	depth int
}

// New returns a canvas with 8 pixel wide cells and a 14 pixel line
// height.
func New() *Canvas {
	return &Canvas{Cells: text.CellMeasurer{CellWidth: 8, Ascent: 10, Descent: 4}}
}

// Texts returns the strings passed to ShowText, in order.
func (c *Canvas) Texts() []string {
	var ts []string
	for _, op := range c.Ops {
		if op.Name == "show_text" {
			ts = append(ts, op.Text)
		}
	}
	return ts
}

// Count returns how many times the named operation was recorded.
func (c *Canvas) Count(name string) int {
	n := 0
	for _, op := range c.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Depth returns the number of unmatched Save calls.
func (c *Canvas) Depth() int {
	return c.depth
}

func (c *Canvas) record(name string, args ...float64) {
	c.Ops = append(c.Ops, Op{Name: name, Args: args})
}

func (c *Canvas) fail(name string) error {
	if c.FailOn == name {
		return ErrInjected
	}
	return nil
}

func (c *Canvas) Save() {
	c.depth++
	c.record("save")
}

func (c *Canvas) Restore() error {
	if c.depth == 0 {
		return errors.New("painttest: restore without save")
	}
	c.depth--
	c.record("restore")
	return nil
}

func (c *Canvas) Translate(x, y float64) { c.record("translate", x, y) }
func (c *Canvas) NewPath() { c.record("new_path") }
func (c *Canvas) MoveTo(x, y float64) { c.record("move_to", x, y) }
func (c *Canvas) LineTo(x, y float64) { c.record("line_to", x, y) }
func (c *Canvas) Rectangle(x, y, w, h float64) { c.record("rectangle", x, y, w, h) }
func (c *Canvas) ClosePath() { c.record("close_path") }
func (c *Canvas) Clip() { c.record("clip") }
func (c *Canvas) SetLineWidth(w float64) { c.record("set_line_width", w) }

func (c *Canvas) Arc(xc, yc, r, a1, a2 float64) {
	c.record("arc", xc, yc, r, a1, a2)
}

func (c *Canvas) SetSourceColor(col color.Color) {
	r, g, b, a := col.RGBA()
	c.record("set_source_color", float64(r>>8), float64(g>>8), float64(b>>8), float64(a>>8))
}

func (c *Canvas) SetSourceGradient(g paint.LinearGradient) {
	c.record("set_source_gradient", g.X0, g.Y0, g.X1, g.Y1)
}

func (c *Canvas) Fill() error {
	c.record("fill")
	return c.fail("fill")
}

func (c *Canvas) Stroke() error {
	c.record("stroke")
	return c.fail("stroke")
}

func (c *Canvas) SetFont(f font.Font) error {
	c.Font = f
	c.record("set_font", f.Size)
	return nil
}

func (c *Canvas) FontExtents() (paint.FontExtents, error) {
	if err := c.fail("font_extents"); err != nil {
		return paint.FontExtents{}, err
	}
	return c.Cells.FontExtents()
}

func (c *Canvas) TextExtents(s string) (paint.TextExtents, error) {
	if err := c.fail("text_extents"); err != nil {
		return paint.TextExtents{}, err
	}
	return c.Cells.TextExtents(s)
}

func (c *Canvas) ShowText(s string) error {
	c.Ops = append(c.Ops, Op{Name: "show_text", Text: s})
	return c.fail("show_text")
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) error {
	sz := img.Bounds().Size()
	c.record("draw_image", x, y, float64(sz.X), float64(sz.Y))
	return c.fail("draw_image")
}
