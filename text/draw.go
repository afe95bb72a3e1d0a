// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Draw paints the lines of t in area with the current font and source
// of cv. Lines are aligned horizontally according to the alignment of
// t, and the block is centered vertically.
func (t *Text) Draw(cv paint.Canvas, area layout.Rect) error {
	fe, err := cv.FontExtents()
	if err != nil {
		return err
	}
	ascent := fe.Ascent.Ceil()
	lead := (t.lineHeight - ascent - fe.Descent.Ceil()) / 2
	y := area.Y + (area.Height-t.size.Height)/2
	for i, l := range t.lines {
		last := i == len(t.lines)-1
		w := l.Width
		if last && t.ellipsis {
			w += t.ellipsisW
		}
		x := area.X
		switch t.align {
		case layout.TextCenter:
			x += (area.Width - w) / 2
		case layout.TextRight:
			x += area.Width - w
		}
		baseline := y + i*t.lineHeight + lead + ascent
		cv.NewPath()
		cv.MoveTo(float64(x), float64(baseline))
		if l.End > l.Start {
			if err := cv.ShowText(t.s[l.Start:l.End]); err != nil {
				return err
			}
		}
		if last && t.ellipsis {
			if l.End == l.Start {
				cv.MoveTo(float64(x), float64(baseline))
			}
			if err := cv.ShowText(Ellipsis); err != nil {
				return err
			}
		}
	}
	return nil
}
