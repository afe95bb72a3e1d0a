// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements font faces for OpenType and TrueType
// files, measured and drawn through golang.org/x/image/font.
package opentype

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"lwtk.org/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should parse a font file once and reuse the Face across
// canvases.
type Face struct {
	font   *opentype.Font
	family string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return &Face{font: f, family: family}, nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice with
// length 1.
func ParseCollection(src []byte) ([]font.FontFace, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]font.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		family, _ := f.Name(nil, sfnt.NameIDFamily)
		out[i] = font.FontFace{
			Font: font.Font{Typeface: font.Typeface(family)},
			Face: &Face{font: f, family: family},
		}
	}
	return out, nil
}

// Name returns the family name recorded in the font file.
func (f *Face) Name() string {
	return f.family
}

// NewFace returns a face of the given pixel size, ready for measuring
// and drawing.
func (f *Face) NewFace(size float64) (xfont.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}
