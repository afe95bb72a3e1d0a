// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/widget"
)

// CloseEvent asks a window to close. Unless the window callback
// consumes it, the window is removed from the App.
type CloseEvent struct{}

// MinimizeEvent asks a window to minimize. Unless the window callback
// consumes it, the window is hidden.
type MinimizeEvent struct{}

func (CloseEvent) ImplementsEvent()    {}
func (MinimizeEvent) ImplementsEvent() {}

// Index of the content in the root of a decorated window.
var decorContent = widget.IndexPair{I: 1}

// decoration is the title bar of a window.
type decoration struct {
	root  *widget.LinearLayout
	title *widget.Title
}

func newDecoration(title string, content widget.Widget) *decoration {
	d := &decoration{
		root:  widget.NewLinearLayout(layout.Vertical),
		title: widget.NewTitle(title),
	}
	d.root.SetHAlign(layout.HFill)
	d.root.SetVAlign(layout.VFill)
	bar := widget.NewLinearLayout(layout.Horizontal)
	bar.SetHAlign(layout.HFill)
	bar.Add(d.title)
	bar.Add(titleButton(widget.IconMinimize, MinimizeEvent{}))
	bar.Add(titleButton(widget.IconClose, CloseEvent{}))
	d.root.Add(bar)
	if content == nil {
		content = widget.NewEmpty()
	}
	if content.Wrappee().Weight() == 0 {
		content.Wrappee().SetWeight(1)
	}
	d.root.Add(content)
	return d
}

// titleButton returns a title bar button turning clicks into ev.
func titleButton(ic widget.Icon, ev event.Event) *widget.TitleButton {
	b := widget.NewTitleButton(ic)
	b.SetOn(func(ctx *widget.Context, w widget.Widget, in, def event.Event) (event.Event, error) {
		if c, ok := def.(gesture.ClickEvent); ok && c.Kind == gesture.KindClick {
			return ev, nil
		}
		return def, nil
	})
	return b
}
