// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync/atomic"

	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// Widget is a node of the widget tree.
type Widget interface {
	// UpdateSize computes the size of the widget for the available
	// area. None dimensions are unconstrained.
	UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error
	// UpdatePos places the widget in area. UpdateSize must have been
	// called first.
	UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error
	// Draw paints the widget at the position computed by UpdatePos.
	Draw(cv paint.Canvas, th Theme, focusedWindow bool) error
	// CallOn handles ev. A non-nil result is passed on to the parent,
	// a nil result stops propagation.
	CallOn(ctx *Context, ev event.Event) (event.Event, error)
	// Wrappee returns the state common to all widgets.
	Wrappee() *Base
	// SetChangeFlag makes the widget, and its children, raise f on
	// change.
	SetChangeFlag(f *atomic.Bool)
}

// Container is implemented by widgets with children.
type Container interface {
	Widget
	// First returns the index of the first child.
	First() (IndexPair, bool)
	// Last returns the index of the last child.
	Last() (IndexPair, bool)
	// Next returns the index of the child following idx.
	Next(idx IndexPair) (IndexPair, bool)
	// Prev returns the index of the child preceding idx.
	Prev(idx IndexPair) (IndexPair, bool)
	// Child returns the child at idx.
	Child(idx IndexPair) (Widget, bool)
	// IndexAt returns the index of the child whose margin bounds
	// contain p.
	IndexAt(p layout.Pos) (IndexPair, bool)
}

// IndexPair addresses a child of a container. Linear layouts only use
// I; grid layouts use I for the row and J for the column.
type IndexPair struct {
	I, J int
}

// Path addresses a widget from the root of a window. The empty path is
// the root.
type Path []IndexPair

// Parent returns the path of the parent of p.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p[:len(p)-1], true
}

// Child returns a new path to child idx of p.
func (p Path) Child(idx IndexPair) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = idx
	return c
}

// Equal reports whether p and q address the same widget.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Lookup returns the widget at path p below root.
func Lookup(root Widget, p Path) (Widget, bool) {
	w := root
	for _, idx := range p {
		c, ok := w.(Container)
		if !ok {
			return nil, false
		}
		if w, ok = c.Child(idx); !ok {
			return nil, false
		}
	}
	return w, true
}

// HitTest returns the path of the deepest widget below root whose
// margin bounds contain p.
func HitTest(root Widget, p layout.Pos) (Path, bool) {
	if !root.Wrappee().MarginBounds().Contains(p) {
		return nil, false
	}
	var path Path
	w := root
	for {
		c, ok := w.(Container)
		if !ok {
			return path, true
		}
		idx, ok := c.IndexAt(p)
		if !ok {
			return path, true
		}
		child, ok := c.Child(idx)
		if !ok {
			return path, true
		}
		path = path.Child(idx)
		w = child
	}
}

// Walk calls fn for root and its descendants in depth first order
// until fn returns false.
func Walk(root Widget, fn func(p Path, w Widget) bool) {
	walk(root, nil, fn)
}

func walk(w Widget, p Path, fn func(Path, Widget) bool) bool {
	if !fn(p, w) {
		return false
	}
	c, ok := w.(Container)
	if !ok {
		return true
	}
	for idx, ok := c.First(); ok; idx, ok = c.Next(idx) {
		child, ok := c.Child(idx)
		if !ok {
			continue
		}
		if !walk(child, p.Child(idx), fn) {
			return false
		}
	}
	return true
}

// NextFocus returns the path of the focusable widget following from
// in depth first order, wrapping around. An empty or unknown from
// starts at the beginning.
func NextFocus(root Widget, from Path) (Path, bool) {
	return cycleFocus(focusable(root), from, 1)
}

// PrevFocus is like NextFocus in reverse order.
func PrevFocus(root Widget, from Path) (Path, bool) {
	return cycleFocus(focusable(root), from, -1)
}

func focusable(root Widget) []Path {
	var ps []Path
	Walk(root, func(p Path, w Widget) bool {
		b := w.Wrappee()
		if b.Focusable() && b.Enabled() {
			ps = append(ps, p)
		}
		return true
	})
	return ps
}

func cycleFocus(ps []Path, from Path, dir int) (Path, bool) {
	if len(ps) == 0 {
		return nil, false
	}
	for i, p := range ps {
		if p.Equal(from) {
			return ps[(i+dir+len(ps))%len(ps)], true
		}
	}
	if dir < 0 {
		return ps[len(ps)-1], true
	}
	return ps[0], true
}
