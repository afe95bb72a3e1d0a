// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Theme metrics are given in dp and sp and converted to pixels with a
Metric once the scale of the output is known.
*/
package unit

import (
	"fmt"
	"math"

	"lwtk.org/layout"
)

// Metric converts Dp and Sp values to pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

// Dp represents device independent pixels.
type Dp float32

// Sp represents scaled pixels.
type Sp float32

// Scale returns a Metric where both dp and sp map to s pixels.
func Scale(s float32) Metric {
	return Metric{PxPerDp: s, PxPerSp: s}
}

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

// SpFloat converts v to fractional pixels, for font sizes.
func (c Metric) SpFloat(v Sp) float64 {
	return float64(nonZero(c.PxPerSp)) * float64(v)
}

// Edges converts dp insets to pixel edges.
func (c Metric) Edges(top, bottom, left, right Dp) layout.Edges {
	return layout.Edges{
		Top:    c.Dp(top),
		Bottom: c.Dp(bottom),
		Left:   c.Dp(left),
		Right:  c.Dp(right),
	}
}

// Size converts a dp size to pixels.
func (c Metric) Size(w, h Dp) layout.Size {
	return layout.Size{Width: c.Dp(w), Height: c.Dp(h)}
}

func nonZero(v float32) float32 {
	if v == 0.0 {
		return 1
	}
	return v
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}
