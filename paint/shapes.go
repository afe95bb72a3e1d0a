// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"
	"math"

	"lwtk.org/layout"
)

// RoundedRectangle adds the outline of r with rounded corners to the
// current path. Radii larger than half the rectangle are clamped.
func RoundedRectangle(cv Canvas, r layout.Rect, c layout.Corners) {
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.Width), float64(r.Height)
	lim := math.Min(w, h) / 2
	rad := func(v int) float64 { return math.Min(float64(v), lim) }
	tl, tr, br, bl := rad(c.TopLeft), rad(c.TopRight), rad(c.BottomRight), rad(c.BottomLeft)
	cv.MoveTo(x+tl, y)
	cv.LineTo(x+w-tr, y)
	if tr > 0 {
		cv.Arc(x+w-tr, y+tr, tr, -math.Pi/2, 0)
	}
	cv.LineTo(x+w, y+h-br)
	if br > 0 {
		cv.Arc(x+w-br, y+h-br, br, 0, math.Pi/2)
	}
	cv.LineTo(x+bl, y+h)
	if bl > 0 {
		cv.Arc(x+bl, y+h-bl, bl, math.Pi/2, math.Pi)
	}
	cv.LineTo(x, y+tl)
	if tl > 0 {
		cv.Arc(x+tl, y+tl, tl, math.Pi, 3*math.Pi/2)
	}
	cv.ClosePath()
}

// FillRect fills r with a solid color.
func FillRect(cv Canvas, r layout.Rect, c color.Color) error {
	cv.NewPath()
	cv.Rectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	cv.SetSourceColor(c)
	return cv.Fill()
}

// ClipRect intersects the clip with r.
func ClipRect(cv Canvas, r layout.Rect) {
	cv.NewPath()
	cv.Rectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	cv.Clip()
}
