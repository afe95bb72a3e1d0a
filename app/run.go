// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/widget"
)

// Envelope is an event addressed to a window.
type Envelope struct {
	Window widget.WindowID
	Event  event.Event
}

// Source is the connection to a display.
type Source interface {
	// Next blocks until the next event. It returns io.EOF once the
	// display is closed, and the context error when ctx is done.
	Next(ctx context.Context) (Envelope, error)
	// Now returns the current time on the clock of pointer event
	// timestamps.
	Now() time.Duration
	// Canvas returns the canvas of a window and the area available to
	// it.
	Canvas(id widget.WindowID) (paint.Canvas, layout.OptSize, error)
	// Present shows the window painted on its canvas.
	Present(id widget.WindowID) error
}

// Render lays out and paints every visible window that changed since
// it was last drawn.
func (a *App) Render(src Source, th widget.Theme) error {
	for _, id := range a.dirty() {
		w := a.windows[id]
		cv, area, err := src.Canvas(id)
		if err != nil {
			return err
		}
		if err := w.Layout(cv, th, area); err != nil {
			return err
		}
		if err := w.Draw(cv, th); err != nil {
			return err
		}
		if err := src.Present(id); err != nil {
			return err
		}
	}
	return nil
}

// Run renders the windows and dispatches the events of src until the
// source is closed, ctx is done or the last window is removed.
// Pending clicks are reported when their delay passes even without
// further events.
func (a *App) Run(ctx context.Context, src Source, th widget.Theme) error {
	for {
		if err := a.Render(src, th); err != nil {
			log.Printf("app: paint: %v", err)
			return err
		}
		if len(a.windows) == 0 {
			return nil
		}
		wctx, cancel := ctx, context.CancelFunc(func() {})
		if d, ok := a.NextDeadline(); ok {
			wctx, cancel = context.WithTimeout(ctx, d-src.Now())
		}
		env, err := src.Next(wctx)
		cancel()
		switch {
		case err == nil:
			if err := a.Dispatch(env.Window, env.Event); err != nil && !errors.Is(err, ErrNoWindow) {
				return err
			}
		case errors.Is(err, io.EOF):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, context.DeadlineExceeded):
			if err := a.Tick(src.Now()); err != nil {
				return err
			}
		default:
			return err
		}
	}
}
