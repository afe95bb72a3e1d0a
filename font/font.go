// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides types describing font faces attributes.
*/
package font

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style, weight and size.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
	// Size is the font size in pixels.
	Size float64
}

// Face is an opaque handle to a typeface. The concrete implementation
// depends upon the paint backend in use.
type Face interface {
	// Name reports the family name of the face.
	Name() string
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Match returns the face of the collection that best matches f: the
// typeface and variant must match when given, then the closest style
// and weight win. It returns false for an empty collection.
func Match(collection []FontFace, f Font) (FontFace, bool) {
	best, bestScore := FontFace{}, -1
	for _, ff := range collection {
		if f.Typeface != "" && ff.Font.Typeface != f.Typeface {
			continue
		}
		if ff.Font.Variant != f.Variant {
			continue
		}
		score := 1000
		if ff.Font.Style != f.Style {
			score -= 500
		}
		d := int(ff.Font.Weight - f.Weight)
		if d < 0 {
			d = -d
		}
		score -= d
		if score > bestScore {
			best, bestScore = ff, score
		}
	}
	if bestScore < 0 && f.Typeface != "" {
		// Fall back to any typeface.
		g := f
		g.Typeface = ""
		return Match(collection, g)
	}
	if bestScore < 0 && len(collection) > 0 {
		return collection[0], true
	}
	return best, bestScore >= 0
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
