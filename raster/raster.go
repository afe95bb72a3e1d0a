// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements paint.Canvas on an in-memory RGBA image.

Paths are flattened to polygons and filled with golang.org/x/image/vector.
Strokes are approximated by one quad per segment. Clips are rectangular:
Clip intersects the clip with the bounds of the current path, which is
exact for the rectangles widgets clip to. Text is drawn with
golang.org/x/image/font faces resolved from a font collection; text
honors translation but not scale.
*/
package raster

import (
	"errors"
	"image"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"lwtk.org/f32"
	"lwtk.org/font"
	"lwtk.org/paint"
)

var (
	// ErrNoFont is returned when no face of the collection matches the
	// requested font, or when text is used before SetFont.
	ErrNoFont = errors.New("raster: no matching font")
	// ErrStack is returned by Restore without a matching Save.
	ErrStack = errors.New("raster: restore without save")
)

// sizedFace is implemented by faces able to produce a face of a given
// pixel size, such as *opentype.Face.
type sizedFace interface {
	NewFace(size float64) (xfont.Face, error)
}

// Canvas paints into an *image.RGBA.
type Canvas struct {
	dst   *image.RGBA
	fonts []font.FontFace
	faces faceCache

	state  state
	states []state

	subpaths []subpath
	cur      f32.Point
	hasCur   bool
}

type state struct {
	t         f32.Affine2D
	clip      image.Rectangle
	src       image.Image
	lineWidth float64
	face      xfont.Face
}

type subpath struct {
	pts    []f32.Point
	closed bool
}

// NewCanvas returns a canvas drawing into dst with fonts from the
// collection.
func NewCanvas(dst *image.RGBA, fonts []font.FontFace) *Canvas {
	return &Canvas{
		dst:   dst,
		fonts: fonts,
		state: state{
			clip:      dst.Bounds(),
			src:       image.NewUniform(color.Black),
			lineWidth: 1,
		},
	}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

func (c *Canvas) Save() {
	c.states = append(c.states, c.state)
}

func (c *Canvas) Restore() error {
	n := len(c.states)
	if n == 0 {
		return ErrStack
	}
	c.state = c.states[n-1]
	c.states = c.states[:n-1]
	return nil
}

func (c *Canvas) Translate(x, y float64) {
	c.state.t = c.state.t.Mul(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y))))
}

func (c *Canvas) NewPath() {
	c.subpaths = c.subpaths[:0]
	c.hasCur = false
}

func (c *Canvas) MoveTo(x, y float64) {
	p := c.state.t.Transform(f32.Pt(float32(x), float32(y)))
	c.subpaths = append(c.subpaths, subpath{pts: []f32.Point{p}})
	c.cur = p
	c.hasCur = true
}

func (c *Canvas) LineTo(x, y float64) {
	p := c.state.t.Transform(f32.Pt(float32(x), float32(y)))
	c.lineToDevice(p)
}

func (c *Canvas) lineToDevice(p f32.Point) {
	if !c.hasCur || len(c.subpaths) == 0 || c.subpaths[len(c.subpaths)-1].closed {
		c.subpaths = append(c.subpaths, subpath{pts: []f32.Point{p}})
	} else {
		sp := &c.subpaths[len(c.subpaths)-1]
		sp.pts = append(sp.pts, p)
	}
	c.cur = p
	c.hasCur = true
}

func (c *Canvas) Rectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *Canvas) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	scale := c.state.t.Factor()
	devRadius := radius * math.Max(math.Abs(float64(scale.X)), math.Abs(float64(scale.Y)))
	n := int(math.Ceil((angle2 - angle1) * math.Max(devRadius, 1) / 2))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := angle1 + (angle2-angle1)*float64(i)/float64(n)
		x, y := xc+radius*math.Cos(a), yc+radius*math.Sin(a)
		if i == 0 && !c.hasCur {
			c.MoveTo(x, y)
			continue
		}
		c.LineTo(x, y)
	}
}

func (c *Canvas) ClosePath() {
	if len(c.subpaths) == 0 {
		return
	}
	sp := &c.subpaths[len(c.subpaths)-1]
	sp.closed = true
	c.cur = sp.pts[0]
}

func (c *Canvas) Clip() {
	c.state.clip = c.state.clip.Intersect(c.pathBounds())
	c.NewPath()
}

func (c *Canvas) pathBounds() image.Rectangle {
	var b f32.Rectangle
	first := true
	for _, sp := range c.subpaths {
		for _, p := range sp.pts {
			if first {
				b = f32.Rectangle{Min: p, Max: p}
				first = false
				continue
			}
			b.Min.X = min(b.Min.X, p.X)
			b.Min.Y = min(b.Min.Y, p.Y)
			b.Max.X = max(b.Max.X, p.X)
			b.Max.Y = max(b.Max.Y, p.Y)
		}
	}
	if first {
		return image.Rectangle{}
	}
	return b.Round()
}

func (c *Canvas) SetSourceColor(col color.Color) {
	c.state.src = image.NewUniform(col)
}

func (c *Canvas) SetSourceGradient(g paint.LinearGradient) {
	p0 := c.state.t.Transform(f32.Pt(float32(g.X0), float32(g.Y0)))
	p1 := c.state.t.Transform(f32.Pt(float32(g.X1), float32(g.Y1)))
	g.X0, g.Y0 = float64(p0.X), float64(p0.Y)
	g.X1, g.Y1 = float64(p1.X), float64(p1.Y)
	c.state.src = gradientImage{g: g}
}

func (c *Canvas) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

func (c *Canvas) Fill() error {
	defer c.NewPath()
	r := c.state.clip.Intersect(c.pathBounds())
	if r.Empty() {
		return nil
	}
	vr := vector.NewRasterizer(r.Dx(), r.Dy())
	off := f32.Pt(float32(-r.Min.X), float32(-r.Min.Y))
	for _, sp := range c.subpaths {
		if len(sp.pts) < 2 {
			continue
		}
		polygon(vr, sp.pts, off)
	}
	vr.Draw(c.dst, r, c.state.src, r.Min)
	return nil
}

func (c *Canvas) Stroke() error {
	defer c.NewPath()
	scale := c.state.t.Factor()
	hw := float32(c.state.lineWidth) * float32(math.Max(math.Abs(float64(scale.X)), math.Abs(float64(scale.Y)))) / 2
	pad := int(math.Ceil(float64(hw))) + 1
	r := c.pathBounds()
	r.Min = r.Min.Sub(image.Pt(pad, pad))
	r.Max = r.Max.Add(image.Pt(pad, pad))
	r = r.Intersect(c.state.clip)
	if r.Empty() || hw <= 0 {
		return nil
	}
	vr := vector.NewRasterizer(r.Dx(), r.Dy())
	off := f32.Pt(float32(-r.Min.X), float32(-r.Min.Y))
	for _, sp := range c.subpaths {
		pts := sp.pts
		if sp.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			segment(vr, pts[i-1], pts[i], hw, off)
		}
	}
	vr.Draw(c.dst, r, c.state.src, r.Min)
	return nil
}

func polygon(vr *vector.Rasterizer, pts []f32.Point, off f32.Point) {
	p := pts[0].Add(off)
	vr.MoveTo(p.X, p.Y)
	for _, q := range pts[1:] {
		q = q.Add(off)
		vr.LineTo(q.X, q.Y)
	}
	vr.ClosePath()
}

// segment adds a quad of half width hw around the segment from a to b.
// All quads share the same winding so overlaps do not cancel out.
func segment(vr *vector.Rasterizer, a, b f32.Point, hw float32, off f32.Point) {
	d := b.Sub(a)
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if l == 0 {
		return
	}
	n := f32.Pt(-d.Y/l*hw, d.X/l*hw)
	// Extend the ends by hw to cover joins.
	e := d.Mul(hw / l)
	a, b = a.Sub(e).Add(off), b.Add(e).Add(off)
	polygon(vr, []f32.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, f32.Point{})
}

func (c *Canvas) SetFont(f font.Font) error {
	ff, ok := font.Match(c.fonts, f)
	if !ok {
		return ErrNoFont
	}
	sf, ok := ff.Face.(sizedFace)
	if !ok {
		return ErrNoFont
	}
	k := faceKey{face: ff.Face, size: f.Size}
	if face, ok := c.faces.Get(k); ok {
		c.state.face = face
		return nil
	}
	face, err := sf.NewFace(f.Size)
	if err != nil {
		return err
	}
	c.faces.Put(k, face)
	c.state.face = face
	return nil
}

func (c *Canvas) FontExtents() (paint.FontExtents, error) {
	if c.state.face == nil {
		return paint.FontExtents{}, ErrNoFont
	}
	m := c.state.face.Metrics()
	return paint.FontExtents{Ascent: m.Ascent, Descent: m.Descent, Height: m.Height}, nil
}

func (c *Canvas) TextExtents(s string) (paint.TextExtents, error) {
	if c.state.face == nil {
		return paint.TextExtents{}, ErrNoFont
	}
	b, adv := xfont.BoundString(c.state.face, s)
	return paint.TextExtents{XAdvance: adv, Bounds: b}, nil
}

func (c *Canvas) ShowText(s string) error {
	if c.state.face == nil {
		return ErrNoFont
	}
	dst, ok := c.dst.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return nil
	}
	d := xfont.Drawer{
		Dst:  dst,
		Src:  c.state.src,
		Face: c.state.face,
		Dot:  fixed.Point26_6{X: toFixed(c.cur.X), Y: toFixed(c.cur.Y)},
	}
	d.DrawString(s)
	c.cur = f32.Pt(float32(d.Dot.X)/64, float32(d.Dot.Y)/64)
	c.hasCur = true
	return nil
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) error {
	p := c.state.t.Transform(f32.Pt(float32(x), float32(y)))
	scale := c.state.t.Factor()
	sz := img.Bounds().Size()
	r := f32.Rectangle{
		Min: p,
		Max: p.Add(f32.Pt(float32(sz.X)*scale.X, float32(sz.Y)*scale.Y)),
	}.Canon().Round()
	clip := r.Intersect(c.state.clip)
	if clip.Empty() {
		return nil
	}
	dst, ok := c.dst.SubImage(clip).(*image.RGBA)
	if !ok {
		return nil
	}
	if scale == f32.Pt(1, 1) {
		xdraw.Draw(dst, r, img, img.Bounds().Min, xdraw.Over)
		return nil
	}
	xdraw.ApproxBiLinear.Scale(dst, r, img, img.Bounds(), xdraw.Over, nil)
	return nil
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// gradientImage is an unbounded image painting a linear gradient in
// device coordinates.
type gradientImage struct {
	g paint.LinearGradient
}

func (gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (gi gradientImage) At(x, y int) color.Color {
	return gi.g.At(float64(x)+.5, float64(y)+.5)
}
