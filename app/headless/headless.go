// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements an offscreen display rendering windows
// to images. Events are scripted with Push and time is virtual: it
// advances with the scripted events and jumps ahead to the deadline of
// a waiting reader.
package headless

import (
	"context"
	"image"
	"io"
	"time"

	"golang.org/x/image/draw"

	"lwtk.org/app"
	"lwtk.org/font"
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/raster"
	"lwtk.org/widget"
)

// Display is an offscreen app.Source.
type Display struct {
	size   layout.Size
	fonts  []font.FontFace
	now    time.Duration
	events []timed
	sizes  map[widget.WindowID]layout.Size
	images map[widget.WindowID]*image.RGBA
	shown  map[widget.WindowID]*image.RGBA
	frames map[widget.WindowID]int
}

type timed struct {
	at  time.Duration
	env app.Envelope
}

var _ app.Source = (*Display)(nil)

// NewDisplay returns a display offering width x height pixels to each
// window, drawing text with fonts.
func NewDisplay(width, height int, fonts []font.FontFace) *Display {
	return &Display{
		size:   layout.Sz(width, height),
		fonts:  fonts,
		sizes:  make(map[widget.WindowID]layout.Size),
		images: make(map[widget.WindowID]*image.RGBA),
		shown:  make(map[widget.WindowID]*image.RGBA),
		frames: make(map[widget.WindowID]int),
	}
}

// SetSize overrides the area offered to window id.
func (d *Display) SetSize(id widget.WindowID, width, height int) {
	d.sizes[id] = layout.Sz(width, height)
	delete(d.images, id)
}

// Push scripts ev for window id at time at. Events are delivered in
// the order pushed; an event pushed with an earlier time than the
// current one is delivered at the current time.
func (d *Display) Push(at time.Duration, id widget.WindowID, ev event.Event) {
	d.events = append(d.events, timed{at: at, env: app.Envelope{Window: id, Event: ev}})
}

// Pending returns the number of scripted events not yet delivered.
func (d *Display) Pending() int {
	return len(d.events)
}

func (d *Display) Now() time.Duration {
	return d.now
}

// Next returns the next scripted event. When ctx has a deadline
// before it, time advances to the deadline instead.
func (d *Display) Next(ctx context.Context) (app.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return app.Envelope{}, err
	}
	if dl, ok := ctx.Deadline(); ok {
		target := d.now + roundUp(time.Until(dl))
		if len(d.events) == 0 || d.events[0].at > target {
			d.now = target
			return app.Envelope{}, context.DeadlineExceeded
		}
	}
	if len(d.events) == 0 {
		return app.Envelope{}, io.EOF
	}
	e := d.events[0]
	d.events = d.events[1:]
	if e.at > d.now {
		d.now = e.at
	}
	return e.env, nil
}

// roundUp rounds a wall clock wait up to whole milliseconds, at least
// one.
func roundUp(wait time.Duration) time.Duration {
	r := (wait + time.Millisecond - 1).Truncate(time.Millisecond)
	if r < time.Millisecond {
		r = time.Millisecond
	}
	return r
}

// Canvas returns a cleared raster canvas for window id.
func (d *Display) Canvas(id widget.WindowID) (paint.Canvas, layout.OptSize, error) {
	sz, ok := d.sizes[id]
	if !ok {
		sz = d.size
	}
	img, ok := d.images[id]
	if !ok {
		img = image.NewRGBA(image.Rect(0, 0, sz.Width, sz.Height))
		d.images[id] = img
	} else {
		draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	return raster.NewCanvas(img, d.fonts), sz.Opt(), nil
}

// Present keeps a copy of the canvas of window id as its latest frame.
func (d *Display) Present(id widget.WindowID) error {
	img, ok := d.images[id]
	if !ok {
		return app.ErrNoWindow
	}
	dst, ok := d.shown[id]
	if !ok || dst.Bounds() != img.Bounds() {
		dst = image.NewRGBA(img.Bounds())
		d.shown[id] = dst
	}
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	d.frames[id]++
	return nil
}

// Frame returns the latest frame presented for window id.
func (d *Display) Frame(id widget.WindowID) (*image.RGBA, bool) {
	img, ok := d.shown[id]
	return img, ok
}

// Frames returns how many frames were presented for window id.
func (d *Display) Frames(id widget.WindowID) int {
	return d.frames[id]
}
