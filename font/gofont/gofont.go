// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts drawn by the material theme:
// regular, medium and bold text in both styles, and Go Mono.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"lwtk.org/font"
	"lwtk.org/font/opentype"
)

// Typeface is the typeface of every face in the collection.
const Typeface font.Typeface = "Go"

var faces = []struct {
	style   font.Style
	weight  font.Weight
	variant font.Variant
	ttf     []byte
}{
	{font.Regular, font.Normal, "", goregular.TTF},
	{font.Italic, font.Normal, "", goitalic.TTF},
	{font.Regular, font.Medium, "", gomedium.TTF},
	{font.Italic, font.Medium, "", gomediumitalic.TTF},
	{font.Regular, font.Bold, "", gobold.TTF},
	{font.Italic, font.Bold, "", gobolditalic.TTF},
	{font.Regular, font.Normal, "Mono", gomono.TTF},
	{font.Regular, font.Bold, "Mono", gomonobold.TTF},
}

var collection = sync.OnceValue(func() []font.FontFace {
	c := make([]font.FontFace, 0, len(faces))
	for _, f := range faces {
		face, err := opentype.Parse(f.ttf)
		if err != nil {
			panic(fmt.Errorf("gofont: %v", err))
		}
		c = append(c, font.FontFace{
			Font: font.Font{Typeface: Typeface, Variant: f.variant, Style: f.style, Weight: f.weight},
			Face: face,
		})
	}
	return c
})

// Collection returns the Go faces. The regular face comes first, so
// that it is the fallback of font.Match. The slice is shared and must
// not be modified.
func Collection() []font.FontFace {
	c := collection()
	return c[:len(c):len(c)]
}
