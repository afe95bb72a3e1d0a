// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing backend that widgets and themes paint
through.

A Canvas follows the model of a 2D vector graphics context: paths are
built with MoveTo, LineTo, Rectangle and Arc, then filled, stroked or
used as a clip. Save and Restore bracket changes to the clip, the
source and the transformation. Text is measured with FontExtents and
TextExtents and drawn with ShowText at the current point, which is the
left end of the baseline.

Operations that touch pixels or fonts report errors. Callers propagate
them unmodified; a failed paint aborts the rest of the frame.
*/
package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"

	"lwtk.org/font"
)

// Canvas is the drawing backend.
type Canvas interface {
	Save()
	Restore() error
	Translate(x, y float64)

	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rectangle(x, y, w, h float64)
	// Arc adds a circular arc of the given radius centered at (xc,
	// yc), from angle1 to angle2 in radians, clockwise in screen
	// coordinates.
	Arc(xc, yc, radius, angle1, angle2 float64)
	ClosePath()
	// Clip intersects the clip with the current path and clears the
	// path.
	Clip()

	SetSourceColor(c color.Color)
	SetSourceGradient(g LinearGradient)
	SetLineWidth(w float64)
	// Fill fills the current path and clears it.
	Fill() error
	// Stroke strokes the current path and clears it.
	Stroke() error

	SetFont(f font.Font) error
	FontExtents() (FontExtents, error)
	TextExtents(s string) (TextExtents, error)
	// ShowText draws s starting at the current point, on the
	// baseline, and advances the current point.
	ShowText(s string) error

	DrawImage(img image.Image, x, y float64) error
}

// FontExtents are the vertical metrics of the current font.
type FontExtents struct {
	// Ascent is the distance from the baseline to the top of the
	// tallest glyphs.
	Ascent fixed.Int26_6
	// Descent is the distance from the baseline to the bottom of the
	// deepest glyphs.
	Descent fixed.Int26_6
	// Height is the recommended distance between baselines.
	Height fixed.Int26_6
}

// TextExtents are the metrics of a string in the current font.
type TextExtents struct {
	// XAdvance is how far the current point moves when the string is
	// drawn.
	XAdvance fixed.Int26_6
	// Bounds is the ink bounds relative to the current point.
	Bounds fixed.Rectangle26_6
}

// Stop is a color stop of a gradient, at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient is a gradient between two points.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []Stop
}

// At returns the color of the gradient at (x, y).
func (g LinearGradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	var t float64
	if l := dx*dx + dy*dy; l > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / l
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return mix(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
