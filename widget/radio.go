// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync/atomic"

	"lwtk.org/gesture"
	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// RadioGroup is the selection shared by a set of radios. At most one
// radio of a group is selected: the one selected last.
type RadioGroup struct {
	selected atomic.Int64
	count    atomic.Int64
}

func NewRadioGroup() *RadioGroup {
	return new(RadioGroup)
}

// Selected returns the ordinal of the selected radio.
func (g *RadioGroup) Selected() (int, bool) {
	n := int(g.selected.Load())
	return n, n > 0
}

// Select selects the radio with ordinal n. Zero clears the selection.
func (g *RadioGroup) Select(n int) {
	g.selected.Store(int64(n))
}

// Count returns the number of radios created in the group.
func (g *RadioGroup) Count() int {
	return int(g.count.Load())
}

func (g *RadioGroup) next() int {
	return int(g.count.Add(1))
}

// Radio is a radio button of a RadioGroup. Radios are numbered in the
// order they are created, starting at 1.
type Radio struct {
	Base
	caption
	group   *RadioGroup
	ordinal int
}

func NewRadio(s string, g *RadioGroup) *Radio {
	w := &Radio{Base: newBase(KindRadio), group: g, ordinal: g.next()}
	w.caption = newCaption(&w.Base, s)
	w.focusable = true
	return w
}

func (w *Radio) Group() *RadioGroup {
	return w.group
}

// Ordinal returns the 1-based ordinal of w in its group.
func (w *Radio) Ordinal() int {
	return w.ordinal
}

// Selected reports whether w is the selected radio of its group.
func (w *Radio) Selected() bool {
	n, ok := w.group.Selected()
	return ok && n == w.ordinal
}

// Select makes w the selected radio of its group.
func (w *Radio) Select() {
	if !w.Selected() {
		w.group.Select(w.ordinal)
		w.Changed()
	}
}

func (w *Radio) handleClick(ctx *Context, e gesture.ClickEvent) (event.Event, bool) {
	w.Select()
	return RadioSelection{Ordinal: w.ordinal}, true
}

func (w *Radio) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	return updateIconCaption(cv, th, &w.Base, w.caption, IconRadio, area)
}

func (w *Radio) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	return nil
}

func (w *Radio) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	st := w.drawState(focusedWindow)
	st.Checked = w.Selected()
	return drawIconCaption(cv, th, &w.Base, w.caption, IconRadio, st)
}

func (w *Radio) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, leafChain)
}
