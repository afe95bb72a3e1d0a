// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/math/fixed"

	"lwtk.org/paint"
)

// CellMeasurer measures text as a grid of terminal cells: every cell
// is CellWidth pixels wide, wide East Asian characters take two cells
// and combining marks none. It is a deterministic stand-in for a real
// monospaced font.
type CellMeasurer struct {
	CellWidth int
	Ascent    int
	Descent   int
}

// FontExtents implements Measurer.
func (m CellMeasurer) FontExtents() (paint.FontExtents, error) {
	return paint.FontExtents{
		Ascent:  fixed.I(m.Ascent),
		Descent: fixed.I(m.Descent),
		Height:  fixed.I(m.Ascent + m.Descent),
	}, nil
}

// TextExtents implements Measurer.
func (m CellMeasurer) TextExtents(s string) (paint.TextExtents, error) {
	w := fixed.I(runewidth.StringWidth(s) * m.CellWidth)
	return paint.TextExtents{
		XAdvance: w,
		Bounds: fixed.Rectangle26_6{
			Min: fixed.Point26_6{Y: -fixed.I(m.Ascent)},
			Max: fixed.Point26_6{X: w, Y: fixed.I(m.Descent)},
		},
	}, nil
}
