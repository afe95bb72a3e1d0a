// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync/atomic"

	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// LinearLayout arranges its children in a row or a column. Children
// with zero weight take their natural size; the space left is shared
// among weighted children in proportion to their weight.
type LinearLayout struct {
	Base
	orient   layout.Orient
	children []Widget
	line     line
}

func NewLinearLayout(o layout.Orient) *LinearLayout {
	return &LinearLayout{Base: newBase(KindLinearLayout), orient: o}
}

func (w *LinearLayout) Orient() layout.Orient {
	return w.orient
}

func (w *LinearLayout) SetOrient(o layout.Orient) {
	if w.orient != o {
		w.orient = o
		w.Changed()
	}
}

// Len returns the number of children.
func (w *LinearLayout) Len() int {
	return len(w.children)
}

// Add appends c and returns its index.
func (w *LinearLayout) Add(c Widget) IndexPair {
	w.children = append(w.children, c)
	w.adopt(c)
	return IndexPair{I: len(w.children) - 1}
}

// Insert inserts c before the child at idx. An index equal to Len
// appends.
func (w *LinearLayout) Insert(idx IndexPair, c Widget) bool {
	if idx.J != 0 || idx.I < 0 || idx.I > len(w.children) {
		return false
	}
	w.children = append(w.children, nil)
	copy(w.children[idx.I+1:], w.children[idx.I:])
	w.children[idx.I] = c
	w.adopt(c)
	return true
}

// Remove removes and returns the child at idx. The removed widget
// gets a change flag of its own.
func (w *LinearLayout) Remove(idx IndexPair) (Widget, bool) {
	c, ok := w.Child(idx)
	if !ok {
		return nil, false
	}
	w.children = append(w.children[:idx.I], w.children[idx.I+1:]...)
	c.SetChangeFlag(new(atomic.Bool))
	w.Changed()
	return c, true
}

func (w *LinearLayout) adopt(c Widget) {
	c.SetChangeFlag(w.flag)
	w.Changed()
}

// SetChangeFlag implements Widget.
func (w *LinearLayout) SetChangeFlag(f *atomic.Bool) {
	w.flag = f
	for _, c := range w.children {
		c.SetChangeFlag(f)
	}
}

// WeightWidth returns the width of a weight unit computed by the last
// UpdateSize and the pixels left over after dividing the space among
// weight units.
func (w *LinearLayout) WeightWidth() (width, rem int) {
	return w.line.weightWidth, w.line.weightRem
}

func (w *LinearLayout) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	inner := layout.InnerOptSize(layout.InnerOptSize(area, th.Margin(w.kind)), th.Padding(w.kind))
	o := w.orient
	if err := w.line.update(cv, th, o, w.children, o.OptWidth(inner), o.OptHeight(inner)); err != nil {
		return err
	}
	w.fitSize(o.Size(w.line.width, w.line.height), th, area)
	return nil
}

func (w *LinearLayout) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	r := w.contentRect(th)
	origin := r.Pos().Sub(w.clientPos)
	return w.line.place(cv, th, w.orient, w.children, origin, w.orient.Height(r.Size()))
}

func (w *LinearLayout) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	if err := th.DrawBackground(cv, w.kind, w.bounds, w.drawState(focusedWindow)); err != nil {
		return err
	}
	return drawChildren(cv, th, w.bounds, w.children, focusedWindow)
}

func (w *LinearLayout) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, containerChain)
}

func (w *LinearLayout) First() (IndexPair, bool) {
	return IndexPair{}, len(w.children) > 0
}

func (w *LinearLayout) Last() (IndexPair, bool) {
	return IndexPair{I: len(w.children) - 1}, len(w.children) > 0
}

func (w *LinearLayout) Next(idx IndexPair) (IndexPair, bool) {
	return w.check(IndexPair{I: idx.I + 1})
}

func (w *LinearLayout) Prev(idx IndexPair) (IndexPair, bool) {
	return w.check(IndexPair{I: idx.I - 1})
}

func (w *LinearLayout) check(idx IndexPair) (IndexPair, bool) {
	if idx.I < 0 || idx.I >= len(w.children) {
		return IndexPair{}, false
	}
	return idx, true
}

func (w *LinearLayout) Child(idx IndexPair) (Widget, bool) {
	if idx.J != 0 || idx.I < 0 || idx.I >= len(w.children) {
		return nil, false
	}
	return w.children[idx.I], true
}

func (w *LinearLayout) IndexAt(p layout.Pos) (IndexPair, bool) {
	i, ok := indexAt(w.children, p)
	return IndexPair{I: i}, ok
}
