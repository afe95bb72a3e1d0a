// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log"

	"lwtk.org/app"
	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/widget"
)

// demo is the window shown by lwtkshot.
type demo struct {
	a      *app.App
	win    *app.Window
	status *widget.Label
	level  *widget.RadioGroup
	about  widget.WindowID
}

func newDemo(a *app.App, verbose bool) *demo {
	d := &demo{a: a, level: widget.NewRadioGroup()}
	d.status = widget.NewLabel("Ready.")
	d.status.SetEllipsize(1)
	d.status.SetHAlign(layout.HFill)

	options := widget.NewGridLayout(layout.Horizontal, 3)
	for _, s := range []string{"Sound", "Music"} {
		c := widget.NewCheck(s)
		c.SetOn(d.report(s))
		options.Add(c)
	}
	options.AddEmptyRow()
	for _, s := range []string{"Easy", "Normal", "Hard"} {
		r := widget.NewRadio(s, d.level)
		r.SetOn(d.report(s))
		options.Add(r)
	}
	d.level.Select(2)

	buttons := widget.NewLinearLayout(layout.Horizontal)
	buttons.SetHAlign(layout.HFill)
	about := widget.NewButton("About")
	about.SetOn(d.clicked(d.openAbout))
	spacer := widget.NewEmpty()
	spacer.SetWeight(1)
	ok := widget.NewButton("OK")
	ok.SetOn(d.clicked(func() error { d.status.SetText("OK pressed."); return nil }))
	buttons.Add(about)
	buttons.Add(spacer)
	buttons.Add(ok)

	content := widget.NewLinearLayout(layout.Vertical)
	content.Add(widget.NewLabel("Settings"))
	content.Add(options)
	content.Add(d.status)
	content.Add(buttons)

	var opts []app.Option
	opts = append(opts, app.Decorated(), app.Title("lwtk demo"))
	if verbose {
		opts = append(opts, app.On(func(ctx *widget.Context, w *app.Window, ev event.Event) (event.Event, error) {
			log.Printf("window %d: %T %+v", w.ID(), ev, ev)
			return ev, nil
		}))
	}
	d.win = app.NewWindow(content, opts...)
	return d
}

// report shows the check and selection changes of a widget in the
// status line.
func (d *demo) report(name string) widget.OnFunc {
	return func(ctx *widget.Context, w widget.Widget, ev, def event.Event) (event.Event, error) {
		switch e := def.(type) {
		case widget.CheckChange:
			d.status.SetText(fmt.Sprintf("%s: %v", name, e.Checked))
		case widget.RadioSelection:
			d.status.SetText(fmt.Sprintf("Level %d: %s", e.Ordinal, name))
		}
		return def, nil
	}
}

// clicked runs f after the current event when a button is clicked.
func (d *demo) clicked(f func() error) widget.OnFunc {
	return func(ctx *widget.Context, w widget.Widget, ev, def event.Event) (event.Event, error) {
		if c, ok := ev.(gesture.ClickEvent); ok && c.Kind == gesture.KindClick {
			ctx.Push(widget.CallbackCmd{Func: f})
			return nil, nil
		}
		return def, nil
	}
}

func (d *demo) openAbout() error {
	if _, ok := d.a.Window(d.about); ok {
		return d.a.SetFocusedWindow(d.about)
	}
	text := widget.NewLabel("lwtkshot renders scripted sessions of the lwtk widgets.")
	text.SetHAlign(layout.HFill)
	w := app.NewWindow(text, app.Decorated(), app.Title("About"))
	id, err := d.a.AddChildWindow(d.win.ID(), w)
	if err != nil {
		return err
	}
	d.about = id
	return d.a.SetFocusedWindow(id)
}
