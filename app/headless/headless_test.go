// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"context"
	"testing"
	"time"

	"lwtk.org/app"
	"lwtk.org/font/gofont"
	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/io/pointer"
	"lwtk.org/layout"
	"lwtk.org/widget"
	"lwtk.org/widget/material"
)

const ms = time.Millisecond

func newTheme(t *testing.T) *material.Theme {
	t.Helper()
	th, err := material.NewTheme(material.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return th
}

func TestRunClick(t *testing.T) {
	th := newTheme(t)
	d := NewDisplay(200, 100, gofont.Collection())
	a := app.New(app.DefaultConfig())
	b := widget.NewButton("OK")
	var clicks []gesture.ClickKind
	w := app.NewWindow(b, app.On(func(ctx *widget.Context, w *app.Window, ev event.Event) (event.Event, error) {
		if c, ok := ev.(gesture.ClickEvent); ok {
			clicks = append(clicks, c.Kind)
		}
		return ev, nil
	}))
	id := a.AddWindow(w)
	if err := a.Render(d, th); err != nil {
		t.Fatal(err)
	}
	if got := w.Size(); got != layout.Sz(200, 100) {
		t.Errorf("window size = %v, want the display area", got)
	}
	r := b.Bounds()
	pos := layout.Pt(r.X+r.Width/2, r.Y+r.Height/2)
	for _, e := range []pointer.Event{
		{Kind: pointer.Press, Time: 10 * ms},
		{Kind: pointer.Release, Time: 60 * ms},
	} {
		e.Source = pointer.Mouse
		e.Buttons = pointer.ButtonPrimary
		e.Position = pos
		d.Push(e.Time, id, e)
	}
	if err := a.Run(context.Background(), d, th); err != nil {
		t.Fatal(err)
	}
	if len(clicks) != 1 || clicks[0] != gesture.KindClick {
		t.Errorf("clicks = %v, want [Click]", clicks)
	}
	if d.Now() < 460*ms {
		t.Errorf("time = %v, want past the double click delay", d.Now())
	}
	if n := d.Frames(id); n < 3 {
		t.Errorf("%d frames presented, want at least 3", n)
	}
	img, ok := d.Frame(id)
	if !ok {
		t.Fatal("no frame")
	}
	if got := img.RGBAAt(1, 1); got != th.Palette.Bg {
		t.Errorf("window background = %v, want %v", got, th.Palette.Bg)
	}
	if got := img.RGBAAt(r.X+2, r.Y+r.Height/2); got == th.Palette.Bg {
		t.Error("button not painted")
	}
}

func TestRunClose(t *testing.T) {
	th := newTheme(t)
	d := NewDisplay(50, 50, gofont.Collection())
	a := app.New(app.DefaultConfig())
	id := a.AddWindow(app.NewWindow(widget.NewLabel("bye")))
	d.Push(0, id, app.CloseEvent{})
	d.Push(0, id, app.CloseEvent{})
	if err := a.Run(context.Background(), d, th); err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Window(id); ok {
		t.Error("window not closed")
	}
	if d.Pending() != 1 {
		t.Errorf("%d events left, want 1", d.Pending())
	}
}

func TestRunCanceled(t *testing.T) {
	th := newTheme(t)
	d := NewDisplay(50, 50, gofont.Collection())
	a := app.New(app.DefaultConfig())
	id := a.AddWindow(app.NewWindow(nil))
	d.Push(0, id, app.MinimizeEvent{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx, d, th); err != context.Canceled {
		t.Errorf("Run = %v, want %v", err, context.Canceled)
	}
}

func TestSetSize(t *testing.T) {
	d := NewDisplay(50, 50, gofont.Collection())
	d.SetSize(2, 30, 20)
	_, area, err := d.Canvas(2)
	if err != nil {
		t.Fatal(err)
	}
	if area != layout.Sz(30, 20).Opt() {
		t.Errorf("area = %v, want 30x20", area)
	}
	if _, area, _ := d.Canvas(1); area != layout.Sz(50, 50).Opt() {
		t.Errorf("default area = %v, want 50x50", area)
	}
	if err := d.Present(3); err != app.ErrNoWindow {
		t.Errorf("Present without canvas = %v, want %v", err, app.ErrNoWindow)
	}
}
