// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements a widget.Theme in the spirit of the
// Material design.
//
// Metrics are given in dp and converted with the unit.Metric of the
// theme, so the same theme scales to any output density:
//
//	th := material.NewTheme(material.Options{Scale: 2})
//	err := win.Layout(cv, th, area)
//
// Colors come from a Palette. Hover and pressed shades are derived
// from the palette colors, and icons are rasterized from the Material
// icon set.
package material
