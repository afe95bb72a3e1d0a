// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"lwtk.org/font"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/text"
	"lwtk.org/unit"
	"lwtk.org/widget"
)

// Palette contains the colors of a theme.
type Palette struct {
	// Bg is the background of windows and layouts.
	Bg color.RGBA
	// Fg is the color of text and icons.
	Fg color.RGBA
	// ContrastBg is the background of buttons and title bars.
	ContrastBg color.RGBA
	// ContrastFg is the color of text on ContrastBg.
	ContrastFg color.RGBA
	// Focus outlines the focused widget.
	Focus color.RGBA
	// Inactive is the background of the title bar of unfocused
	// windows.
	Inactive color.RGBA
}

// Options configures NewTheme. Zero fields take default values.
type Options struct {
	// Scale is the number of pixels per dp and sp.
	Scale float32
	// TextSize is the size of text.
	TextSize unit.Sp
	// Accent names the accent color, one of the SVG 1.1 color names.
	Accent string
	// Dark selects the dark palette.
	Dark bool
}

// Theme implements widget.Theme.
type Theme struct {
	Metric   unit.Metric
	Palette  Palette
	TextSize unit.Sp
	// Typeface of the text.
	Typeface font.Typeface

	icons *iconCache
}

var _ widget.Theme = (*Theme)(nil)

// NewTheme returns a theme configured by opts. It fails when the accent
// color is unknown.
func NewTheme(opts Options) (*Theme, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	th := &Theme{
		Metric:   unit.Scale(scale),
		TextSize: opts.TextSize,
		Typeface: "Go",
		icons:    newIconCache(),
	}
	if th.TextSize <= 0 {
		th.TextSize = 14
	}
	accent := colornames.Steelblue
	if opts.Accent != "" {
		c, ok := colornames.Map[opts.Accent]
		if !ok {
			return nil, fmt.Errorf("material: unknown color %q", opts.Accent)
		}
		accent = c
	}
	th.Palette = LightPalette(accent)
	if opts.Dark {
		th.Palette = DarkPalette(accent)
	}
	return th, nil
}

// LightPalette returns a light palette around an accent color.
func LightPalette(accent color.RGBA) Palette {
	return Palette{
		Bg:         colornames.Whitesmoke,
		Fg:         colornames.Black,
		ContrastBg: accent,
		ContrastFg: colornames.White,
		Focus:      shade(accent, colornames.Black, 0.3),
		Inactive:   colornames.Lightgray,
	}
}

// DarkPalette returns a dark palette around an accent color.
func DarkPalette(accent color.RGBA) Palette {
	return Palette{
		Bg:         colornames.Darkslategray,
		Fg:         colornames.Whitesmoke,
		ContrastBg: shade(accent, colornames.Black, 0.2),
		ContrastFg: colornames.White,
		Focus:      shade(accent, colornames.White, 0.3),
		Inactive:   colornames.Dimgray,
	}
}

// shade blends c toward to by t in the L*a*b* space.
func shade(c, to color.RGBA, t float64) color.RGBA {
	a, _ := colorful.MakeColor(c)
	b, _ := colorful.MakeColor(to)
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: c.A}
}

// stateColor returns c adjusted for the interaction state st.
func stateColor(c color.RGBA, st widget.DrawState) color.RGBA {
	if !st.Enabled {
		g, _ := colorful.MakeColor(c)
		h, _, l := g.Hsl()
		r, gr, b := colorful.Hsl(h, 0, l).Clamped().RGB255()
		return color.RGBA{R: r, G: gr, B: b, A: c.A}
	}
	switch st.State {
	case widget.StateHover:
		return shade(c, colornames.White, 0.15)
	case widget.StateActive:
		return shade(c, colornames.Black, 0.2)
	}
	return c
}

func (th *Theme) Margin(k widget.Kind) layout.Edges {
	m := th.Metric
	switch k {
	case widget.KindButton, widget.KindLabel, widget.KindCheck, widget.KindRadio:
		return m.Edges(4, 4, 4, 4)
	case widget.KindTitleButton:
		return m.Edges(2, 2, 2, 2)
	}
	return layout.Edges{}
}

func (th *Theme) Padding(k widget.Kind) layout.Edges {
	m := th.Metric
	switch k {
	case widget.KindButton:
		return m.Edges(6, 6, 12, 12)
	case widget.KindCheck, widget.KindRadio, widget.KindTitleButton:
		return m.Edges(2, 2, 2, 2)
	case widget.KindTitle:
		return m.Edges(4, 4, 8, 8)
	case widget.KindWindow:
		return m.Edges(8, 8, 8, 8)
	}
	return layout.Edges{}
}

// IconSize includes the space between a check or radio icon and its
// text.
func (th *Theme) IconSize(k widget.Kind, ic widget.Icon) layout.Size {
	m := th.Metric
	switch k {
	case widget.KindCheck, widget.KindRadio:
		return layout.Sz(m.Dp(18+6), m.Dp(18))
	case widget.KindTitleButton:
		return m.Size(16, 16)
	}
	return m.Size(18, 18)
}

func (th *Theme) SetFont(cv paint.Canvas, k widget.Kind) error {
	f := font.Font{Typeface: th.Typeface, Size: th.Metric.SpFloat(th.TextSize)}
	switch k {
	case widget.KindButton:
		f.Weight = font.Medium
	case widget.KindTitle:
		f.Weight = font.Bold
	}
	return cv.SetFont(f)
}

func (th *Theme) DrawBackground(cv paint.Canvas, k widget.Kind, bounds layout.Rect, st widget.DrawState) error {
	switch k {
	case widget.KindButton:
		return th.drawButton(cv, bounds, st)
	case widget.KindTitle:
		bg := th.Palette.Inactive
		if st.FocusedWindow {
			bg = th.Palette.ContrastBg
		}
		return paint.FillRect(cv, bounds, bg)
	case widget.KindTitleButton:
		if st.State == widget.StateNone {
			return nil
		}
		cv.NewPath()
		r := float64(min(bounds.Width, bounds.Height)) / 2
		cv.Arc(float64(bounds.X)+float64(bounds.Width)/2, float64(bounds.Y)+float64(bounds.Height)/2, r, 0, 2*math.Pi)
		cv.SetSourceColor(stateColor(th.Palette.Bg, st))
		return cv.Fill()
	case widget.KindCheck, widget.KindRadio:
		return th.drawFocus(cv, bounds, st)
	case widget.KindWindow:
		return paint.FillRect(cv, bounds, th.Palette.Bg)
	}
	return nil
}

func (th *Theme) drawButton(cv paint.Canvas, bounds layout.Rect, st widget.DrawState) error {
	bg := stateColor(th.Palette.ContrastBg, st)
	cv.NewPath()
	paint.RoundedRectangle(cv, bounds, layout.UniformCorners(th.Metric.Dp(4)))
	y0, y1 := float64(bounds.Y), float64(bounds.Y+bounds.Height)
	cv.SetSourceGradient(paint.LinearGradient{
		Y0: y0, Y1: y1,
		Stops: []paint.Stop{
			{Offset: 0, Color: toNRGBA(shade(bg, colornames.White, 0.1))},
			{Offset: 1, Color: toNRGBA(bg)},
		},
	})
	if err := cv.Fill(); err != nil {
		return err
	}
	return th.drawFocus(cv, bounds, st)
}

// drawFocus outlines bounds when the widget has the focus of the
// focused window.
func (th *Theme) drawFocus(cv paint.Canvas, bounds layout.Rect, st widget.DrawState) error {
	if !st.Focused || !st.FocusedWindow {
		return nil
	}
	w := float64(th.Metric.Dp(1))
	cv.NewPath()
	cv.Rectangle(float64(bounds.X)+w/2, float64(bounds.Y)+w/2, float64(bounds.Width)-w, float64(bounds.Height)-w)
	cv.SetLineWidth(w)
	cv.SetSourceColor(th.Palette.Focus)
	return cv.Stroke()
}

func (th *Theme) DrawText(cv paint.Canvas, k widget.Kind, t *text.Text, area layout.Rect, st widget.DrawState) error {
	cv.SetSourceColor(th.fg(k, st))
	return t.Draw(cv, area)
}

func (th *Theme) DrawIcon(cv paint.Canvas, k widget.Kind, ic widget.Icon, area layout.Rect, st widget.DrawState) error {
	src, ok := iconData(ic, st.Checked)
	if !ok {
		return nil
	}
	sz := min(area.Width, area.Height)
	if k == widget.KindCheck || k == widget.KindRadio {
		sz = min(sz, th.Metric.Dp(18))
	}
	fg := th.fg(k, st)
	if k == widget.KindCheck || k == widget.KindRadio {
		fg = stateColor(th.Palette.ContrastBg, st)
	}
	img, err := th.icons.image(src, sz, fg)
	if err != nil {
		return err
	}
	x := area.X
	if k == widget.KindTitleButton {
		x += (area.Width - sz) / 2
	}
	y := area.Y + (area.Height-sz)/2
	return cv.DrawImage(img, float64(x), float64(y))
}

// fg returns the text and icon color of widgets of kind k.
func (th *Theme) fg(k widget.Kind, st widget.DrawState) color.RGBA {
	c := th.Palette.Fg
	switch k {
	case widget.KindButton:
		c = th.Palette.ContrastFg
	case widget.KindTitle, widget.KindTitleButton:
		if st.FocusedWindow {
			c = th.Palette.ContrastFg
		}
	}
	if !st.Enabled {
		c.A = 0x80
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
