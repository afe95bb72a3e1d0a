// SPDX-License-Identifier: Unlicense OR MIT

// Command lwtkshot replays a scripted session on a demo window and
// writes the resulting frames as PNG images.
//
// Usage:
//
//	lwtkshot [flags] [script]
//
// The script is read from the named file, or from standard input when
// it is "-". Without a script the demo window is rendered as it
// starts. See parseScript for the script commands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"lwtk.org/app"
	"lwtk.org/app/headless"
	"lwtk.org/font/gofont"
	"lwtk.org/widget"
	"lwtk.org/widget/material"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	outPath    = flag.String("o", "lwtkshot.png", "output PNG file, or - for standard output.\nChild windows are written next to it with their id appended.")
	width      = flag.Int("width", 360, "window width in pixels")
	height     = flag.Int("height", 240, "window height in pixels")
	zoom       = flag.Float64("zoom", 1, "scale factor applied to the output images")
	verbose    = flag.Bool("v", false, "log the events reaching the window")
)

const pipeName = "-"

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: lwtkshot [flags] [script]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		log.Fatalf("lwtkshot: %v", err)
	}
}

func mainErr() error {
	if *width <= 0 || *height <= 0 {
		return errors.New("-width and -height must be positive")
	}
	if *zoom <= 0 {
		return errors.New("-zoom must be positive")
	}
	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	steps, err := readScript(flag.Arg(0))
	if err != nil {
		return err
	}
	th, err := material.NewTheme(cfg.ThemeOptions())
	if err != nil {
		return err
	}
	a := app.New(cfg)
	d := newDemo(a, *verbose)
	id := a.AddWindow(d.win)
	if err := a.SetFocusedWindow(id); err != nil {
		return err
	}
	disp := headless.NewDisplay(*width, *height, gofont.Collection())
	for _, s := range steps {
		disp.Push(s.at, 0, s.ev)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.Run(ctx, focusRouter{disp, a, id}, th); err != nil {
		return err
	}
	return writeFrames(disp, a, id)
}

// focusRouter delivers the scripted events to the focused window, as
// a display does with keyboard input.
type focusRouter struct {
	*headless.Display
	a    *app.App
	main widget.WindowID
}

func (r focusRouter) Next(ctx context.Context) (app.Envelope, error) {
	env, err := r.Display.Next(ctx)
	if err != nil || env.Window != 0 {
		return env, err
	}
	env.Window = r.main
	if id, ok := r.a.FocusedWindow(); ok {
		env.Window = id
	}
	return env, nil
}

func readScript(path string) ([]step, error) {
	var r io.Reader
	switch path {
	case "":
		return nil, nil
	case pipeName:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		r = os.Stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parseScript(r)
}

// writeFrames encodes the latest frame of every window that was shown.
func writeFrames(disp *headless.Display, a *app.App, main widget.WindowID) error {
	ids := []widget.WindowID{main}
	for _, id := range a.Windows() {
		if id != main {
			ids = append(ids, id)
		}
	}
	if *outPath == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		img, ok := disp.Frame(main)
		if !ok {
			return errors.New("no frame rendered")
		}
		return imaging.Encode(os.Stdout, scale(img), imaging.PNG)
	}
	var g errgroup.Group
	for _, id := range ids {
		img, ok := disp.Frame(id)
		if !ok {
			continue
		}
		path := framePath(*outPath, main, id)
		g.Go(func() error {
			return imaging.Save(scale(img), path)
		})
	}
	return g.Wait()
}

// framePath returns the output path of window id.
func framePath(out string, main, id widget.WindowID) string {
	if id == main {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), id, ext)
}

func scale(img image.Image) image.Image {
	if *zoom == 1 {
		return img
	}
	w := int(float64(img.Bounds().Dx())**zoom + 0.5)
	return imaging.Resize(img, max(w, 1), 0, imaging.Lanczos)
}
