// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text breaks strings into lines for display.

A Text is measured with UpdateSize, which computes its line spans for a
given maximum width, then painted with Draw. Lines break at the last
word boundary that fits, or inside a word when the word alone is too
wide. A line never splits a grapheme cluster, so a base character and
its combining marks always stay together. When Ellipsize is set, the
text is cut to that many lines and the last visible line ends with an
ellipsis.
*/
package text

import (
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Ellipsis is appended to the last visible line of a truncated text.
const Ellipsis = "…"

// Measurer measures text in the current font. paint.Canvas implements
// it.
type Measurer interface {
	FontExtents() (paint.FontExtents, error)
	TextExtents(s string) (paint.TextExtents, error)
}

// Line is a line of a Text: the byte range [Start, End) of the string
// and its width in pixels.
type Line struct {
	Start, End int
	Width      int
}

// Text is a string with its computed line layout.
type Text struct {
	s         string
	align     layout.TextAlign
	ellipsize int
	trim      bool

	lines      []Line
	ellipsis   bool
	ellipsisW  int
	lineHeight int
	size       layout.Size
}

// New returns a Text for s.
func New(s string) *Text {
	return &Text{s: s}
}

// String returns the content of t.
func (t *Text) String() string {
	return t.s
}

// SetString replaces the content of t and reports whether it changed.
// The layout is stale until the next UpdateSize.
func (t *Text) SetString(s string) bool {
	if t.s == s {
		return false
	}
	t.s = s
	return true
}

// Align returns the alignment of the lines.
func (t *Text) Align() layout.TextAlign {
	return t.align
}

// SetAlign sets the alignment of the lines and reports whether it
// changed.
func (t *Text) SetAlign(a layout.TextAlign) bool {
	if t.align == a {
		return false
	}
	t.align = a
	return true
}

// Ellipsize returns the maximum number of lines, or 0 for no limit.
func (t *Text) Ellipsize() int {
	return t.ellipsize
}

// SetEllipsize limits the text to n lines; 0 removes the limit.
func (t *Text) SetEllipsize(n int) bool {
	if n < 0 {
		n = 0
	}
	if t.ellipsize == n {
		return false
	}
	t.ellipsize = n
	return true
}

// Trim reports whether leading whitespace of lines is skipped.
func (t *Text) Trim() bool {
	return t.trim
}

// SetTrim sets whether leading whitespace of lines is skipped.
func (t *Text) SetTrim(trim bool) bool {
	if t.trim == trim {
		return false
	}
	t.trim = trim
	return true
}

// Lines returns the line spans computed by the last UpdateSize.
func (t *Text) Lines() []Line {
	return t.lines
}

// LineString returns the content of line l.
func (t *Text) LineString(l Line) string {
	return t.s[l.Start:l.End]
}

// HasEllipsis reports whether the last UpdateSize truncated the text.
func (t *Text) HasEllipsis() bool {
	return t.ellipsis
}

// Size returns the size of the text block computed by the last
// UpdateSize.
func (t *Text) Size() layout.Size {
	return t.size
}
