// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strconv"
)

// Pos is a position in pixels, with the origin in the top left corner
// and the axes extending right and down.
type Pos struct {
	X, Y int
}

// Size is a width and a height in pixels.
type Size struct {
	Width, Height int
}

// Rect is a rectangle given by its top left corner and its size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Edges are insets on each side of a rectangle, such as a margin or a
// padding.
type Edges struct {
	Top, Bottom, Left, Right int
}

// Corners are per corner values, such as the radii of a rounded
// rectangle.
type Corners struct {
	TopLeft, TopRight, BottomLeft, BottomRight int
}

// Opt is an optional pixel count. The zero value is None, which stands
// for an unconstrained dimension.
type Opt struct {
	V  int
	Ok bool
}

// OptSize is a size where each dimension may be unconstrained.
type OptSize struct {
	Width, Height Opt
}

// None is the unconstrained Opt.
var None = Opt{}

// Some returns the constrained Opt of v pixels.
func Some(v int) Opt {
	return Opt{V: v, Ok: true}
}

// Pt is shorthand for Pos{X: x, Y: y}.
func Pt(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// UniformEdges returns Edges with the same inset on every side.
func UniformEdges(v int) Edges {
	return Edges{Top: v, Bottom: v, Left: v, Right: v}
}

// UniformCorners returns Corners with the same value for every corner.
func UniformCorners(v int) Corners {
	return Corners{TopLeft: v, TopRight: v, BottomLeft: v, BottomRight: v}
}

// Add returns the position p+q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Pos) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Max returns the component-wise maximum of s and t.
func (s Size) Max(t Size) Size {
	return Size{Width: max(s.Width, t.Width), Height: max(s.Height, t.Height)}
}

// Opt converts s to an OptSize with both dimensions constrained.
func (s Size) Opt() OptSize {
	return OptSize{Width: Some(s.Width), Height: Some(s.Height)}
}

// Empty reports whether s covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// Rt returns the rectangle of size s at p.
func Rt(p Pos, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Pos returns the top left corner of r.
func (r Rect) Pos() Pos {
	return Pos{X: r.X, Y: r.Y}
}

// Size returns the size of r.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Add returns r translated by p.
func (r Rect) Add(p Pos) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Pos(), r.Size())
}

// Horizontal returns the sum of the left and right insets.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Get returns the value of o and whether it is constrained.
func (o Opt) Get() (int, bool) {
	return o.V, o.Ok
}

// Or returns the value of o, or def if o is None.
func (o Opt) Or(def int) int {
	if !o.Ok {
		return def
	}
	return o.V
}

// Sub returns o reduced by n, floored at zero. None stays None.
func (o Opt) Sub(n int) Opt {
	if !o.Ok {
		return None
	}
	return Some(sub(o.V, n))
}

// Add returns o increased by n. None stays None.
func (o Opt) Add(n int) Opt {
	if !o.Ok {
		return None
	}
	return Some(o.V + n)
}

func (o Opt) String() string {
	if !o.Ok {
		return "none"
	}
	return strconv.Itoa(o.V)
}

// Or returns s with unconstrained dimensions replaced by def.
func (s OptSize) Or(def Size) Size {
	return Size{Width: s.Width.Or(def.Width), Height: s.Height.Or(def.Height)}
}

func (s OptSize) String() string {
	return s.Width.String() + "x" + s.Height.String()
}

// InnerSize returns the size left inside outer once the edges are
// removed, saturating at zero.
func InnerSize(outer Size, e Edges) Size {
	return Size{
		Width:  sub(outer.Width, e.Horizontal()),
		Height: sub(outer.Height, e.Vertical()),
	}
}

// OuterSize returns inner grown by the edges.
func OuterSize(inner Size, e Edges) Size {
	return Size{
		Width:  max(inner.Width, 0) + e.Horizontal(),
		Height: max(inner.Height, 0) + e.Vertical(),
	}
}

// InnerOptSize is InnerSize for optional sizes.
func InnerOptSize(outer OptSize, e Edges) OptSize {
	return OptSize{
		Width:  outer.Width.Sub(e.Horizontal()),
		Height: outer.Height.Sub(e.Vertical()),
	}
}

// OuterOptSize is OuterSize for optional sizes.
func OuterOptSize(inner OptSize, e Edges) OptSize {
	return OptSize{
		Width:  inner.Width.Add(e.Horizontal()),
		Height: inner.Height.Add(e.Vertical()),
	}
}

// InnerRect returns the rectangle inside r once the edges are removed.
func InnerRect(r Rect, e Edges) Rect {
	return Rt(Pos{X: r.X + e.Left, Y: r.Y + e.Top}, InnerSize(r.Size(), e))
}

// OuterRect returns r grown by the edges.
func OuterRect(r Rect, e Edges) Rect {
	return Rt(Pos{X: r.X - e.Left, Y: r.Y - e.Top}, OuterSize(r.Size(), e))
}

func sub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
