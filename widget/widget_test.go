// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"

	"lwtk.org/internal/painttest"
	"lwtk.org/layout"
)

func TestButtonSize(t *testing.T) {
	b := NewButton("Button")
	if err := sized(b, unbounded()); err != nil {
		t.Fatal(err)
	}
	// 6 cells of 8 pixels, 14 pixels high, 2 pixels of padding and 1
	// of margin.
	if got, want := b.Bounds(), (layout.Rect{X: 1, Y: 1, Width: 52, Height: 18}); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	if got, want := b.MarginBounds(), (layout.Rect{Width: 54, Height: 20}); got != want {
		t.Errorf("margin bounds = %v, want %v", got, want)
	}
}

func TestSizingProtocol(t *testing.T) {
	for _, tc := range []struct {
		label     string
		preferred layout.OptSize
		hAlign    layout.HAlign
		area      layout.OptSize
		want      layout.Size
	}{
		{"natural", layout.OptSize{}, layout.Left, bounded(200, 100), layout.Sz(52, 18)},
		{"preferred floor", layout.OptSize{Width: layout.Some(80)}, layout.Left, bounded(200, 100), layout.Sz(80, 18)},
		{"preferred below content", layout.OptSize{Width: layout.Some(10)}, layout.Left, bounded(200, 100), layout.Sz(52, 18)},
		{"fill", layout.OptSize{}, layout.HFill, bounded(200, 100), layout.Sz(198, 18)},
		{"fill past preferred", layout.OptSize{Width: layout.Some(80)}, layout.HFill, bounded(200, 100), layout.Sz(198, 18)},
		{"fill never shrinks", layout.OptSize{Width: layout.Some(80)}, layout.HFill, bounded(60, 100), layout.Sz(80, 18)},
		{"fill unbounded", layout.OptSize{}, layout.HFill, unbounded(), layout.Sz(52, 18)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			b := NewButton("Button")
			b.SetPreferredSize(tc.preferred)
			b.SetHAlign(tc.hAlign)
			if err := b.UpdateSize(painttest.New(), testTheme{}, tc.area); err != nil {
				t.Fatal(err)
			}
			if got := b.Bounds().Size(); got != tc.want {
				t.Errorf("size = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSizingMonotonic(t *testing.T) {
	cv := painttest.New()
	last := 0
	for pw := 0; pw <= 120; pw += 3 {
		b := NewButton("Go")
		b.SetPreferredSize(layout.OptSize{Width: layout.Some(pw)})
		if err := b.UpdateSize(cv, testTheme{}, bounded(100, 100)); err != nil {
			t.Fatal(err)
		}
		w := b.Bounds().Width
		if w < last {
			t.Fatalf("preferred width %d: width %d shrank from %d", pw, w, last)
		}
		last = w
	}
	last = 0
	for aw := 0; aw <= 120; aw += 3 {
		b := NewButton("Go")
		b.SetHAlign(layout.HFill)
		if err := b.UpdateSize(cv, testTheme{}, bounded(aw, 100)); err != nil {
			t.Fatal(err)
		}
		w := b.Bounds().Width
		if w < last {
			t.Fatalf("area width %d: width %d shrank from %d", aw, w, last)
		}
		last = w
	}
}

func TestTextWrap(t *testing.T) {
	l := NewLabel("Hello world")
	if err := sized(l, bounded(66, 100)); err != nil {
		t.Fatal(err)
	}
	// 64 pixels of text fit in 66 less the margin.
	if got, want := l.Bounds().Size(), layout.Sz(48, 28); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestChangeFlag(t *testing.T) {
	l := NewLinearLayout(layout.Vertical)
	root := new(atomic.Bool)
	l.SetChangeFlag(root)
	b := NewButton("ok")
	l.Add(b)
	if !root.Load() {
		t.Fatal("Add did not raise the flag")
	}
	root.Store(false)
	b.SetText("ok")
	b.SetWeight(0)
	b.SetEnabled(true)
	if root.Load() {
		t.Fatal("setters without change raised the flag")
	}
	b.SetText("cancel")
	if !root.Load() {
		t.Fatal("child change did not reach the parent flag")
	}
	root.Store(false)
	c, ok := l.Remove(IndexPair{})
	if !ok || c != Widget(b) {
		t.Fatalf("Remove = %v, %v", c, ok)
	}
	if !root.Load() {
		t.Error("Remove did not raise the flag")
	}
	root.Store(false)
	b.SetText("detached")
	if root.Load() {
		t.Error("removed widget still notifies its parent")
	}
	if !b.ChangeFlag().Load() {
		t.Error("removed widget does not raise its own flag")
	}
}

func TestLinearWeights(t *testing.T) {
	for _, tc := range []struct {
		width   int
		unit    int
		rem     int
		widths  []int
		offsets []int
	}{
		{100, 15, 1, []int{16, 9, 45, 30}, []int{0, 16, 25, 70}},
		{104, 15, 5, []int{16, 9, 48, 31}, []int{0, 16, 25, 73}},
		{21, 2, 0, []int{2, 9, 6, 4}, []int{0, 2, 11, 17}},
	} {
		l := NewLinearLayout(layout.Horizontal)
		for _, weight := range []int{1, 0, 3, 2} {
			e := NewEmpty()
			e.SetWeight(weight)
			if weight == 0 {
				e.SetPreferredSize(layout.OptSize{Width: layout.Some(7)})
			} else {
				e.SetHAlign(layout.HFill)
			}
			l.Add(e)
		}
		if err := sized(l, layout.OptSize{Width: layout.Some(tc.width)}); err != nil {
			t.Fatal(err)
		}
		if u, r := l.WeightWidth(); u != tc.unit || r != tc.rem {
			t.Errorf("width %d: weight unit %d rem %d, want %d rem %d", tc.width, u, r, tc.unit, tc.rem)
		}
		sum := 0
		for i := 0; i < l.Len(); i++ {
			c, _ := l.Child(IndexPair{I: i})
			mb := c.Wrappee().MarginBounds()
			sum += mb.Width
			if mb.Width != tc.widths[i] || mb.X != tc.offsets[i] {
				t.Errorf("width %d: child %d at %d wide %d, want %d wide %d", tc.width, i, mb.X, mb.Width, tc.offsets[i], tc.widths[i])
			}
		}
		if want := 9 + tc.unit*6 + tc.rem; sum != want {
			t.Errorf("width %d: children take %d, want %d", tc.width, sum, want)
		}
	}
}

func TestLinearWeightsUnbounded(t *testing.T) {
	l := NewLinearLayout(layout.Horizontal)
	labels := []string{"abcdef", "zz", "a", "abc"}
	for i, weight := range []int{1, 0, 3, 2} {
		lb := NewLabel(labels[i])
		lb.SetWeight(weight)
		lb.SetHAlign(layout.HFill)
		l.Add(lb)
	}
	if err := sized(l, unbounded()); err != nil {
		t.Fatal(err)
	}
	// Natural margin widths are 50, 18, 10 and 26: the first label
	// needs 50 pixels per unit of weight.
	unit, rem := l.WeightWidth()
	if unit != 50 || rem != 0 {
		t.Fatalf("weight unit %d rem %d, want 50 rem 0", unit, rem)
	}
	want := []int{50, 18, 150, 100}
	sum := 0
	for i := 0; i < l.Len(); i++ {
		c, _ := l.Child(IndexPair{I: i})
		w := c.Wrappee().MarginBounds().Width
		sum += w
		if w != want[i] {
			t.Errorf("child %d is %d wide, want %d", i, w, want[i])
		}
	}
	if want := 18 + unit*6 + rem; sum != want {
		t.Errorf("children take %d, want %d", sum, want)
	}
}

func TestLinearUnbounded(t *testing.T) {
	l := NewLinearLayout(layout.Horizontal)
	a := NewLabel("ab")
	b := NewLabel("Hello")
	b.SetWeight(2)
	b.SetVAlign(layout.VFill)
	c := NewButton("x")
	for _, w := range []Widget{a, b, c} {
		l.Add(w)
	}
	if err := sized(l, unbounded()); err != nil {
		t.Fatal(err)
	}
	// Margin widths 18, 42 and 14; the button is 20 high with its
	// margin and the weighted label fills that height.
	if got, want := l.MarginBounds().Size(), layout.Sz(74, 20); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
	if got, want := b.MarginBounds(), (layout.Rect{X: 18, Width: 42, Height: 20}); got != want {
		t.Errorf("weighted child = %v, want %v", got, want)
	}
	if got, want := c.MarginBounds(), (layout.Rect{X: 60, Width: 14, Height: 20}); got != want {
		t.Errorf("button = %v, want %v", got, want)
	}
}

func TestLinearVertical(t *testing.T) {
	l := NewLinearLayout(layout.Vertical)
	a := NewLabel("a")
	b := NewEmpty()
	b.SetWeight(1)
	b.SetVAlign(layout.VFill)
	c := NewLabel("c")
	for _, w := range []Widget{a, b, c} {
		l.Add(w)
	}
	if err := sized(l, bounded(50, 100)); err != nil {
		t.Fatal(err)
	}
	// Labels are 16 high with their margin, the empty widget gets the
	// remaining 68.
	for _, tc := range []struct {
		w    Widget
		y, h int
	}{{a, 0, 16}, {b, 16, 68}, {c, 84, 16}} {
		mb := tc.w.Wrappee().MarginBounds()
		if mb.Y != tc.y || mb.Height != tc.h {
			t.Errorf("%v: got y %d height %d, want %d, %d", tc.w.Wrappee().Kind(), mb.Y, mb.Height, tc.y, tc.h)
		}
	}
}

func TestLinearInsertRemove(t *testing.T) {
	l := NewLinearLayout(layout.Horizontal)
	a, b, c := NewEmpty(), NewEmpty(), NewEmpty()
	l.Add(a)
	l.Add(c)
	if !l.Insert(IndexPair{I: 1}, b) {
		t.Fatal("Insert failed")
	}
	if l.Insert(IndexPair{I: 4}, NewEmpty()) || l.Insert(IndexPair{I: 0, J: 1}, NewEmpty()) {
		t.Error("Insert out of range succeeded")
	}
	var got []Widget
	for idx, ok := l.First(); ok; idx, ok = l.Next(idx) {
		w, _ := l.Child(idx)
		got = append(got, w)
	}
	if len(got) != 3 || got[0] != Widget(a) || got[1] != Widget(b) || got[2] != Widget(c) {
		t.Errorf("children = %v", got)
	}
	idx, _ := l.Last()
	if idx, ok := l.Prev(idx); !ok || idx.I != 1 {
		t.Errorf("Prev(Last) = %v, %v", idx, ok)
	}
	if _, ok := l.Remove(IndexPair{I: 3}); ok {
		t.Error("Remove out of range succeeded")
	}
}

func TestGrid(t *testing.T) {
	g := NewGridLayout(layout.Horizontal, 2)
	a, b, c, d := NewLabel("a"), NewLabel("bb"), NewButton("c"), NewLabel("d")
	for _, w := range []Widget{a, b, c} {
		g.Add(w)
	}
	g.AddEmptyRow()
	g.AddEmptyRow()
	if idx := g.Add(d); idx != (IndexPair{I: 3, J: 0}) {
		t.Errorf("Add after empty rows = %v", idx)
	}
	if g.Insert(IndexPair{I: 0, J: 1}, NewEmpty()) {
		t.Error("Insert into a full row succeeded")
	}
	if err := sized(g, unbounded()); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		w    Widget
		x, y int
	}{{a, 0, 0}, {b, 10, 0}, {c, 0, 16}, {d, 0, 36}} {
		mb := tc.w.Wrappee().MarginBounds()
		if mb.X != tc.x || mb.Y != tc.y {
			t.Errorf("%v at (%d,%d), want (%d,%d)", tc.w.Wrappee().Kind(), mb.X, mb.Y, tc.x, tc.y)
		}
	}
	if got, want := g.MarginBounds().Size(), layout.Sz(28, 52); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}

	if w, ok := g.Remove(IndexPair{I: 1, J: 0}); !ok || w != Widget(c) {
		t.Fatalf("Remove = %v, %v", w, ok)
	}
	if g.Rows() != 4 || g.Columns(1) != 0 {
		t.Errorf("rows were compacted: %d rows", g.Rows())
	}
	var order []IndexPair
	for idx, ok := g.First(); ok; idx, ok = g.Next(idx) {
		order = append(order, idx)
	}
	want := []IndexPair{{0, 0}, {0, 1}, {3, 0}}
	if len(order) != len(want) {
		t.Fatalf("traversal = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("traversal = %v, want %v", order, want)
		}
	}
	if idx, ok := g.Prev(IndexPair{I: 3, J: 0}); !ok || idx != (IndexPair{0, 1}) {
		t.Errorf("Prev = %v, %v", idx, ok)
	}
}

func TestHitTest(t *testing.T) {
	root := NewLinearLayout(layout.Vertical)
	row := NewLinearLayout(layout.Horizontal)
	ok := NewButton("ok")
	cancel := NewButton("cancel")
	row.Add(ok)
	row.Add(cancel)
	root.Add(NewLabel("title"))
	root.Add(row)
	if err := sized(root, unbounded()); err != nil {
		t.Fatal(err)
	}
	mb := cancel.MarginBounds()
	p, found := HitTest(root, layout.Pt(mb.X+1, mb.Y+1))
	if !found || !p.Equal(Path{{I: 1}, {I: 1}}) {
		t.Fatalf("HitTest = %v, %v", p, found)
	}
	if w, _ := Lookup(root, p); w != Widget(cancel) {
		t.Errorf("Lookup = %v", w)
	}
	if _, found := HitTest(root, layout.Pt(-1, 0)); found {
		t.Error("hit outside of root")
	}
	if _, found := Lookup(root, Path{{I: 0}, {I: 0}}); found {
		t.Error("Lookup through a leaf succeeded")
	}

	next, _ := NextFocus(root, nil)
	if !next.Equal(Path{{I: 1}, {I: 0}}) {
		t.Errorf("first focus = %v", next)
	}
	next, _ = NextFocus(root, next)
	if !next.Equal(Path{{I: 1}, {I: 1}}) {
		t.Errorf("second focus = %v", next)
	}
	next, _ = NextFocus(root, next)
	if !next.Equal(Path{{I: 1}, {I: 0}}) {
		t.Errorf("focus did not wrap: %v", next)
	}
	prev, _ := PrevFocus(root, next)
	if !prev.Equal(Path{{I: 1}, {I: 1}}) {
		t.Errorf("PrevFocus = %v", prev)
	}
}

func TestRadioGroupExclusive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := NewRadioGroup()
	radios := make([]*Radio, 5)
	for i := range radios {
		radios[i] = NewRadio("r", g)
		if radios[i].Ordinal() != i+1 {
			t.Fatalf("radio %d has ordinal %d", i, radios[i].Ordinal())
		}
	}
	for n := 0; n < 200; n++ {
		last := radios[r.Intn(len(radios))]
		last.Select()
		selected := 0
		for _, rd := range radios {
			if rd.Selected() {
				selected++
				if rd != last {
					t.Fatalf("radio %d selected, want %d", rd.Ordinal(), last.Ordinal())
				}
			}
		}
		if selected != 1 {
			t.Fatalf("%d radios selected", selected)
		}
	}
	if g.Count() != 5 {
		t.Errorf("count = %d", g.Count())
	}
}

func TestDraw(t *testing.T) {
	l := NewLinearLayout(layout.Horizontal)
	b := NewButton("ok")
	chk := NewCheck("on")
	l.Add(b)
	l.Add(chk)
	if err := sized(l, unbounded()); err != nil {
		t.Fatal(err)
	}
	cv := painttest.New()
	if err := l.Draw(cv, testTheme{}, true); err != nil {
		t.Fatal(err)
	}
	if got := cv.Texts(); len(got) != 2 || got[0] != "ok" || got[1] != "on" {
		t.Errorf("texts = %q", got)
	}
	if cv.Depth() != 0 {
		t.Errorf("unbalanced save: depth %d", cv.Depth())
	}
	// Button background and check icon.
	if n := cv.Count("fill"); n != 2 {
		t.Errorf("%d fills, want 2", n)
	}

	cv = painttest.New()
	cv.FailOn = "fill"
	if err := l.Draw(cv, testTheme{}, true); !errors.Is(err, painttest.ErrInjected) {
		t.Errorf("Draw error = %v, want %v", err, painttest.ErrInjected)
	}
	if cv.Depth() != 0 {
		t.Errorf("failed draw left depth %d", cv.Depth())
	}
	if n := len(cv.Texts()); n != 0 {
		t.Errorf("drawing went on after a failure: %d texts", n)
	}
}
