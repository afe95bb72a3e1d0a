// SPDX-License-Identifier: Unlicense OR MIT

package layout

// HAlign is the horizontal alignment of a widget in its area.
type HAlign uint8

// VAlign is the vertical alignment of a widget in its area.
type VAlign uint8

// TextAlign is the alignment of the lines of a text.
type TextAlign uint8

const (
	Left HAlign = iota
	HCenter
	Right
	HFill
)

const (
	Top VAlign = iota
	VCenter
	Bottom
	VFill
)

const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
)

// PosForAlign returns the position of a widget of the given size in
// area. Fill places the widget at the area origin; the caller is
// expected to have resized it already.
func PosForAlign(size Size, area Rect, h HAlign, v VAlign) Pos {
	p := area.Pos()
	switch h {
	case HCenter:
		p.X += (area.Width - size.Width) / 2
	case Right:
		p.X += area.Width - size.Width
	}
	switch v {
	case VCenter:
		p.Y += (area.Height - size.Height) / 2
	case Bottom:
		p.Y += area.Height - size.Height
	}
	return p
}

// SizeForAlign returns size with each Fill aligned dimension replaced
// by the matching dimension of area, when that dimension is
// constrained.
func SizeForAlign(size Size, area OptSize, h HAlign, v VAlign) Size {
	return Size{
		Width:  WidthForHAlign(size.Width, area.Width, h),
		Height: HeightForVAlign(size.Height, area.Height, v),
	}
}

// WidthForHAlign is the horizontal half of SizeForAlign.
func WidthForHAlign(w int, area Opt, h HAlign) int {
	if h == HFill && area.Ok {
		return area.V
	}
	return w
}

// HeightForVAlign is the vertical half of SizeForAlign.
func HeightForVAlign(hgt int, area Opt, v VAlign) int {
	if v == VFill && area.Ok {
		return area.V
	}
	return hgt
}

// GrowForAlign is like SizeForAlign but never shrinks size.
func GrowForAlign(size Size, area OptSize, h HAlign, v VAlign) Size {
	return size.Max(SizeForAlign(size, area, h, v))
}

// MaxSizeForOptSize raises each dimension of size to the matching
// dimension of hint, when the hint is set.
func MaxSizeForOptSize(size Size, hint OptSize) Size {
	if hint.Width.Ok {
		size.Width = max(size.Width, hint.Width.V)
	}
	if hint.Height.Ok {
		size.Height = max(size.Height, hint.Height.V)
	}
	return size
}

func (a HAlign) String() string {
	switch a {
	case Left:
		return "Left"
	case HCenter:
		return "Center"
	case Right:
		return "Right"
	case HFill:
		return "Fill"
	default:
		panic("invalid HAlign")
	}
}

func (a VAlign) String() string {
	switch a {
	case Top:
		return "Top"
	case VCenter:
		return "Center"
	case Bottom:
		return "Bottom"
	case VFill:
		return "Fill"
	default:
		panic("invalid VAlign")
	}
}

func (a TextAlign) String() string {
	switch a {
	case TextLeft:
		return "Left"
	case TextCenter:
		return "Center"
	case TextRight:
		return "Right"
	default:
		panic("invalid TextAlign")
	}
}
