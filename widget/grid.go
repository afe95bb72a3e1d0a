// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync/atomic"

	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// GridLayout arranges its children in rows of at most a fixed number
// of columns. Each row is laid out like a LinearLayout and is as high
// as its highest child. Rows are managed by the user: removing a child
// never moves children between rows.
type GridLayout struct {
	Base
	orient     layout.Orient
	maxColumns int
	rows       [][]Widget
	lines      []line
}

// NewGridLayout returns a grid whose rows run along o and hold at most
// maxColumns children.
func NewGridLayout(o layout.Orient, maxColumns int) *GridLayout {
	return &GridLayout{
		Base:       newBase(KindGridLayout),
		orient:     o,
		maxColumns: max(maxColumns, 1),
	}
}

func (w *GridLayout) Orient() layout.Orient {
	return w.orient
}

func (w *GridLayout) MaxColumns() int {
	return w.maxColumns
}

// Rows returns the number of rows, empty ones included.
func (w *GridLayout) Rows() int {
	return len(w.rows)
}

// Columns returns the number of children of row i.
func (w *GridLayout) Columns(i int) int {
	if i < 0 || i >= len(w.rows) {
		return 0
	}
	return len(w.rows[i])
}

// Add appends c to the last row, starting a new row when the last one
// is full.
func (w *GridLayout) Add(c Widget) IndexPair {
	n := len(w.rows)
	if n == 0 || len(w.rows[n-1]) >= w.maxColumns {
		w.rows = append(w.rows, nil)
		n++
	}
	w.rows[n-1] = append(w.rows[n-1], c)
	w.adopt(c)
	return IndexPair{I: n - 1, J: len(w.rows[n-1]) - 1}
}

// AddEmptyRow starts a new row. The row stays empty until a child is
// added to it.
func (w *GridLayout) AddEmptyRow() {
	w.rows = append(w.rows, nil)
	w.Changed()
}

// Insert inserts c at idx, shifting the following children of the row.
// It fails when the row is full or idx is out of range. A row index
// equal to Rows appends a new row.
func (w *GridLayout) Insert(idx IndexPair, c Widget) bool {
	if idx.I < 0 || idx.I > len(w.rows) {
		return false
	}
	if idx.I == len(w.rows) {
		if idx.J != 0 {
			return false
		}
		w.rows = append(w.rows, nil)
	}
	row := w.rows[idx.I]
	if idx.J < 0 || idx.J > len(row) || len(row) >= w.maxColumns {
		return false
	}
	row = append(row, nil)
	copy(row[idx.J+1:], row[idx.J:])
	row[idx.J] = c
	w.rows[idx.I] = row
	w.adopt(c)
	return true
}

// Remove removes and returns the child at idx. Its row keeps its place
// even when it becomes empty.
func (w *GridLayout) Remove(idx IndexPair) (Widget, bool) {
	c, ok := w.Child(idx)
	if !ok {
		return nil, false
	}
	row := w.rows[idx.I]
	w.rows[idx.I] = append(row[:idx.J], row[idx.J+1:]...)
	c.SetChangeFlag(new(atomic.Bool))
	w.Changed()
	return c, true
}

func (w *GridLayout) adopt(c Widget) {
	c.SetChangeFlag(w.flag)
	w.Changed()
}

// SetChangeFlag implements Widget.
func (w *GridLayout) SetChangeFlag(f *atomic.Bool) {
	w.flag = f
	for _, row := range w.rows {
		for _, c := range row {
			c.SetChangeFlag(f)
		}
	}
}

func (w *GridLayout) UpdateSize(cv paint.Canvas, th Theme, area layout.OptSize) error {
	inner := layout.InnerOptSize(layout.InnerOptSize(area, th.Margin(w.kind)), th.Padding(w.kind))
	o := w.orient
	for len(w.lines) < len(w.rows) {
		w.lines = append(w.lines, line{})
	}
	w.lines = w.lines[:len(w.rows)]
	width, height := 0, 0
	for i, row := range w.rows {
		l := &w.lines[i]
		if err := l.update(cv, th, o, row, o.OptWidth(inner), layout.None); err != nil {
			return err
		}
		width = max(width, l.width)
		height += l.height
	}
	w.fitSize(o.Size(width, height), th, area)
	return nil
}

func (w *GridLayout) UpdatePos(cv paint.Canvas, th Theme, area layout.Rect) error {
	w.place(th, area)
	o := w.orient
	origin := w.contentRect(th).Pos().Sub(w.clientPos)
	y := o.Y(origin)
	for i, row := range w.rows {
		l := &w.lines[i]
		if err := l.place(cv, th, o, row, o.Pos(o.X(origin), y), l.height); err != nil {
			return err
		}
		y += l.height
	}
	return nil
}

func (w *GridLayout) Draw(cv paint.Canvas, th Theme, focusedWindow bool) error {
	if err := th.DrawBackground(cv, w.kind, w.bounds, w.drawState(focusedWindow)); err != nil {
		return err
	}
	var all []Widget
	for _, row := range w.rows {
		all = append(all, row...)
	}
	return drawChildren(cv, th, w.bounds, all, focusedWindow)
}

func (w *GridLayout) CallOn(ctx *Context, ev event.Event) (event.Event, error) {
	return callOn(ctx, w, ev, containerChain)
}

// First returns the first child, skipping empty rows.
func (w *GridLayout) First() (IndexPair, bool) {
	return w.from(0)
}

func (w *GridLayout) Last() (IndexPair, bool) {
	return w.upTo(len(w.rows) - 1)
}

func (w *GridLayout) Next(idx IndexPair) (IndexPair, bool) {
	if idx.I < 0 || idx.I >= len(w.rows) {
		return IndexPair{}, false
	}
	if idx.J+1 < len(w.rows[idx.I]) {
		return IndexPair{I: idx.I, J: idx.J + 1}, true
	}
	return w.from(idx.I + 1)
}

func (w *GridLayout) Prev(idx IndexPair) (IndexPair, bool) {
	if idx.I < 0 || idx.I >= len(w.rows) {
		return IndexPair{}, false
	}
	if idx.J > 0 && idx.J <= len(w.rows[idx.I]) {
		return IndexPair{I: idx.I, J: idx.J - 1}, true
	}
	return w.upTo(idx.I - 1)
}

// from returns the first child of the first non-empty row at or after
// row i.
func (w *GridLayout) from(i int) (IndexPair, bool) {
	for ; i < len(w.rows); i++ {
		if len(w.rows[i]) > 0 {
			return IndexPair{I: i}, true
		}
	}
	return IndexPair{}, false
}

// upTo returns the last child of the last non-empty row at or before
// row i.
func (w *GridLayout) upTo(i int) (IndexPair, bool) {
	for ; i >= 0; i-- {
		if n := len(w.rows[i]); n > 0 {
			return IndexPair{I: i, J: n - 1}, true
		}
	}
	return IndexPair{}, false
}

func (w *GridLayout) Child(idx IndexPair) (Widget, bool) {
	if idx.I < 0 || idx.I >= len(w.rows) {
		return nil, false
	}
	row := w.rows[idx.I]
	if idx.J < 0 || idx.J >= len(row) {
		return nil, false
	}
	return row[idx.J], true
}

func (w *GridLayout) IndexAt(p layout.Pos) (IndexPair, bool) {
	for i, row := range w.rows {
		if j, ok := indexAt(row, p); ok {
			return IndexPair{I: i, J: j}, true
		}
	}
	return IndexPair{}, false
}
