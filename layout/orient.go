// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Orient is the major axis of a linear or grid layout. The accessors
// below read "width" and "x" along the major axis and "height" and "y"
// along the cross axis, so that layout code is written once for both
// orientations.
type Orient uint8

const (
	Horizontal Orient = iota
	Vertical
)

// Width returns the major axis dimension of s.
func (o Orient) Width(s Size) int {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// Height returns the cross axis dimension of s.
func (o Orient) Height(s Size) int {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// Size builds a size from its major and cross axis dimensions.
func (o Orient) Size(w, h int) Size {
	if o == Horizontal {
		return Size{Width: w, Height: h}
	}
	return Size{Width: h, Height: w}
}

// OptWidth returns the major axis dimension of s.
func (o Orient) OptWidth(s OptSize) Opt {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// OptHeight returns the cross axis dimension of s.
func (o Orient) OptHeight(s OptSize) Opt {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// OptSize builds an optional size from its major and cross axis
// dimensions.
func (o Orient) OptSize(w, h Opt) OptSize {
	if o == Horizontal {
		return OptSize{Width: w, Height: h}
	}
	return OptSize{Width: h, Height: w}
}

// X returns the major axis coordinate of p.
func (o Orient) X(p Pos) int {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// Y returns the cross axis coordinate of p.
func (o Orient) Y(p Pos) int {
	if o == Horizontal {
		return p.Y
	}
	return p.X
}

// Pos builds a position from its major and cross axis coordinates.
func (o Orient) Pos(x, y int) Pos {
	if o == Horizontal {
		return Pos{X: x, Y: y}
	}
	return Pos{X: y, Y: x}
}

// EdgesWidth returns the sum of the insets along the major axis.
func (o Orient) EdgesWidth(e Edges) int {
	if o == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// EdgesHeight returns the sum of the insets along the cross axis.
func (o Orient) EdgesHeight(e Edges) int {
	if o == Horizontal {
		return e.Vertical()
	}
	return e.Horizontal()
}

// WidthForAlign applies the alignment of the major axis to w.
func (o Orient) WidthForAlign(w int, area Opt, h HAlign, v VAlign) int {
	if o == Horizontal {
		return WidthForHAlign(w, area, h)
	}
	return HeightForVAlign(w, area, v)
}

// HeightForAlign applies the alignment of the cross axis to h.
func (o Orient) HeightForAlign(hgt int, area Opt, h HAlign, v VAlign) int {
	if o == Horizontal {
		return HeightForVAlign(hgt, area, v)
	}
	return WidthForHAlign(hgt, area, h)
}

func (o Orient) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Orient")
	}
}
