// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"lwtk.org/font"
	"lwtk.org/gesture"
	"lwtk.org/internal/painttest"
	"lwtk.org/io/event"
	"lwtk.org/io/key"
	"lwtk.org/io/pointer"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/text"
	"lwtk.org/widget"
)

const ms = time.Millisecond

// testTheme has no margins and a 2 pixel window padding. Text is
// measured by the recording canvas: 8 pixels per character and 14
// pixels per line.
type testTheme struct{}

func (testTheme) Margin(k widget.Kind) layout.Edges { return layout.Edges{} }

func (testTheme) Padding(k widget.Kind) layout.Edges {
	if k == widget.KindWindow {
		return layout.UniformEdges(2)
	}
	return layout.Edges{}
}

func (testTheme) IconSize(k widget.Kind, ic widget.Icon) layout.Size { return layout.Sz(10, 10) }

func (testTheme) SetFont(cv paint.Canvas, k widget.Kind) error {
	return cv.SetFont(font.Font{Size: 12})
}

func (testTheme) DrawBackground(cv paint.Canvas, k widget.Kind, bounds layout.Rect, st widget.DrawState) error {
	return paint.FillRect(cv, bounds, color.Gray{Y: 0xee})
}

func (testTheme) DrawText(cv paint.Canvas, k widget.Kind, t *text.Text, area layout.Rect, st widget.DrawState) error {
	return t.Draw(cv, area)
}

func (testTheme) DrawIcon(cv paint.Canvas, k widget.Kind, ic widget.Icon, area layout.Rect, st widget.DrawState) error {
	return paint.FillRect(cv, area, color.Black)
}

// fixture is an application with one window showing buttons A, B and
// C in a row. The window callback records the events reaching it.
type fixture struct {
	t    *testing.T
	app  *App
	win  *Window
	id   widget.WindowID
	btns []*widget.Button
	top  []event.Event
}

func newFixture(t *testing.T, options ...Option) *fixture {
	f := &fixture{t: t, app: New(DefaultConfig())}
	row := widget.NewLinearLayout(layout.Horizontal)
	for _, s := range []string{"A", "B", "C"} {
		b := widget.NewButton(s)
		f.btns = append(f.btns, b)
		row.Add(b)
	}
	options = append(options, On(func(ctx *widget.Context, w *Window, ev event.Event) (event.Event, error) {
		f.top = append(f.top, ev)
		return ev, nil
	}))
	f.win = NewWindow(row, options...)
	f.id = f.app.AddWindow(f.win)
	f.layout(layout.OptSize{})
	return f
}

func (f *fixture) layout(area layout.OptSize) {
	f.t.Helper()
	if err := f.win.Layout(painttest.New(), testTheme{}, area); err != nil {
		f.t.Fatal(err)
	}
}

func (f *fixture) dispatch(ev event.Event) {
	f.t.Helper()
	if err := f.app.Dispatch(f.id, ev); err != nil {
		f.t.Fatal(err)
	}
}

func (f *fixture) mouse(k pointer.Kind, x, y int, at time.Duration) {
	f.t.Helper()
	f.dispatch(pointer.Event{
		Kind:     k,
		Source:   pointer.Mouse,
		Time:     at,
		Buttons:  pointer.ButtonPrimary,
		Position: layout.Pt(x, y),
	})
}

func (f *fixture) clicks() []gesture.ClickKind {
	var ks []gesture.ClickKind
	for _, ev := range f.top {
		if c, ok := ev.(gesture.ClickEvent); ok {
			ks = append(ks, c.Kind)
		}
	}
	return ks
}

func TestWindowIDs(t *testing.T) {
	a := New(DefaultConfig())
	for want := widget.WindowID(1); want <= 3; want++ {
		if got := a.AddWindow(NewWindow(nil)); got != want {
			t.Errorf("AddWindow = %d, want %d", got, want)
		}
	}
	if err := a.RemoveWindow(2); err != nil {
		t.Fatal(err)
	}
	if got := a.AddWindow(NewWindow(nil)); got != 4 {
		t.Errorf("id after removal = %d, want 4", got)
	}
	want := []widget.WindowID{1, 3, 4}
	got := a.Windows()
	if len(got) != len(want) {
		t.Fatalf("Windows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Windows = %v, want %v", got, want)
		}
	}
	if err := a.RemoveWindow(2); err != ErrNoWindow {
		t.Errorf("removing twice = %v, want %v", err, ErrNoWindow)
	}
}

func TestRemoveChildren(t *testing.T) {
	a := New(DefaultConfig())
	root := a.AddWindow(NewWindow(nil))
	parent, err := a.AddChildWindow(root, NewWindow(nil))
	if err != nil {
		t.Fatal(err)
	}
	child, _ := a.AddChildWindow(parent, NewWindow(nil))
	grandchild, _ := a.AddChildWindow(child, NewWindow(nil))
	sibling, _ := a.AddChildWindow(root, NewWindow(nil))
	if _, err := a.AddChildWindow(99, NewWindow(nil)); err != ErrNoWindow {
		t.Errorf("child of missing window: %v, want %v", err, ErrNoWindow)
	}
	w, _ := a.Window(root)
	if got := w.Children(); len(got) != 2 || got[0] != parent || got[1] != sibling {
		t.Errorf("children = %v, want [%d %d]", got, parent, sibling)
	}
	if err := a.RemoveWindow(parent); err != nil {
		t.Fatal(err)
	}
	for _, id := range []widget.WindowID{parent, child, grandchild} {
		if _, ok := a.Window(id); ok {
			t.Errorf("window %d survived its parent", id)
		}
	}
	if got := w.Children(); len(got) != 1 || got[0] != sibling {
		t.Errorf("children after removal = %v, want [%d]", got, sibling)
	}
	if err := a.RemoveWindow(child); err != ErrNoWindow {
		t.Errorf("removing a removed window: %v, want %v", err, ErrNoWindow)
	}
	if err := a.RemoveWindow(root); err != nil {
		t.Fatal(err)
	}
	if ids := a.Windows(); len(ids) != 0 {
		t.Errorf("windows left: %v", ids)
	}
}

func TestWindowSize(t *testing.T) {
	th := testTheme{}
	tests := []struct {
		name    string
		content widget.Widget
		options []Option
		area    layout.OptSize
		want    layout.Size
	}{
		{"empty unbounded", nil, nil, layout.OptSize{}, layout.Sz(1, 1)},
		{"empty bounded", nil, nil, layout.Sz(30, 20).Opt(), layout.Sz(30, 20)},
		{"content", widget.NewButton("OK"), nil, layout.OptSize{}, layout.Sz(20, 18)},
		{"content in area", widget.NewButton("OK"), nil, layout.Sz(50, 40).Opt(), layout.Sz(50, 40)},
		{"min size", widget.NewButton("OK"), []Option{MinSize(layout.Sz(40, 10))}, layout.OptSize{}, layout.Sz(40, 18)},
		{"content min size", minButton(layout.OptSize{Width: layout.Some(30)}), nil, layout.OptSize{}, layout.Sz(34, 18)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWindow(tc.content, tc.options...)
			if err := w.Layout(painttest.New(), th, tc.area); err != nil {
				t.Fatal(err)
			}
			if got := w.Size(); got != tc.want {
				t.Errorf("size = %v, want %v", got, tc.want)
			}
		})
	}
}

func minButton(hint layout.OptSize) *widget.Button {
	b := widget.NewButton("OK")
	b.SetMinSize(hint)
	return b
}

func TestWindowChangeFlag(t *testing.T) {
	b := widget.NewButton("OK")
	w := NewWindow(b, Title("x"))
	th := testTheme{}
	draw := func() {
		t.Helper()
		cv := painttest.New()
		if err := w.Layout(cv, th, layout.OptSize{}); err != nil {
			t.Fatal(err)
		}
		if err := w.Draw(cv, th); err != nil {
			t.Fatal(err)
		}
		if w.Changed() {
			t.Fatal("changed after Draw")
		}
	}
	draw()
	w.SetTitle("x")
	w.SetVisible(true)
	w.SetFocus(false)
	if w.Changed() {
		t.Error("setting unchanged values raised the flag")
	}
	w.SetVisible(false)
	if !w.Changed() {
		t.Error("SetVisible did not raise the flag")
	}
	draw()
	b.SetText("Cancel")
	if !w.Changed() {
		t.Error("widget change not propagated to the window")
	}
	draw()
	w.SetFocus(true)
	if !w.Changed() {
		t.Error("SetFocus did not raise the flag")
	}
}

func TestClick(t *testing.T) {
	f := newFixture(t)
	f.mouse(pointer.Press, 5, 5, 0)
	if f.btns[0].State() != widget.StateActive {
		t.Errorf("pressed state = %v", f.btns[0].State())
	}
	f.mouse(pointer.Release, 5, 5, 50*ms)
	if len(f.clicks()) != 0 {
		t.Fatalf("click reported before the double click delay: %v", f.clicks())
	}
	d, ok := f.app.NextDeadline()
	if want := 450 * ms; !ok || d != want {
		t.Errorf("deadline = %v %v, want %v", d, ok, want)
	}
	if err := f.app.Tick(d); err != nil {
		t.Fatal(err)
	}
	if got := f.clicks(); len(got) != 1 || got[0] != gesture.KindClick {
		t.Errorf("clicks = %v, want [Click]", got)
	}
	if _, ok := f.app.NextDeadline(); ok {
		t.Error("deadline left after Tick")
	}
}

func TestPressFocuses(t *testing.T) {
	f := newFixture(t)
	f.mouse(pointer.Press, 13, 5, 0)
	p, ok := f.win.FocusedWidget()
	if !ok || !p.Equal(widget.Path{{I: 1}}) {
		t.Errorf("focused widget = %v %v, want [{1 0}]", p, ok)
	}
	if !f.btns[1].Focused() {
		t.Error("button B not focused")
	}
	if id, ok := f.app.FocusedWindow(); !ok || id != f.id {
		t.Errorf("focused window = %d %v, want %d", id, ok, f.id)
	}
	f.mouse(pointer.Release, 13, 5, 10*ms)
	f.mouse(pointer.Press, 5, 5, 20*ms)
	if f.btns[1].Focused() || !f.btns[0].Focused() {
		t.Error("focus did not move to button A")
	}
}

func TestTabFocus(t *testing.T) {
	f := newFixture(t)
	tab := func(mods key.Modifiers) {
		t.Helper()
		f.dispatch(key.Event{Name: key.NameTab, Modifiers: mods, State: key.Press})
		f.dispatch(key.Event{Name: key.NameTab, Modifiers: mods, State: key.Release})
	}
	steps := []struct {
		mods key.Modifiers
		want int
	}{
		{0, 0},
		{0, 1},
		{0, 2},
		{0, 0},
		{key.ModShift, 2},
	}
	for i, s := range steps {
		tab(s.mods)
		p, ok := f.win.FocusedWidget()
		if !ok || !p.Equal(widget.Path{{I: s.want}}) {
			t.Fatalf("step %d: focused %v %v, want [{%d 0}]", i, p, ok, s.want)
		}
	}
}

func TestKeyActivation(t *testing.T) {
	f := newFixture(t)
	if err := f.app.Focus(widget.Target{Window: f.id, Path: widget.Path{{I: 2}}}); err != nil {
		t.Fatal(err)
	}
	f.dispatch(key.Event{Name: key.NameSpace, State: key.Press, Text: " "})
	f.dispatch(key.Event{Name: key.NameSpace, State: key.Release})
	if got := f.clicks(); len(got) != 1 || got[0] != gesture.KindClick {
		t.Errorf("clicks = %v, want [Click]", got)
	}
	var chars []rune
	for _, ev := range f.top {
		if c, ok := ev.(key.CharEvent); ok {
			chars = append(chars, c.Rune)
		}
	}
	if string(chars) != " " {
		t.Errorf("chars = %q, want \" \"", string(chars))
	}
	if err := f.app.Focus(widget.Target{Window: f.id, Path: widget.Path{{I: 7}}}); err != ErrNoWidget {
		t.Errorf("focusing a missing widget: %v, want %v", err, ErrNoWidget)
	}
}

func TestReleaseOutside(t *testing.T) {
	f := newFixture(t)
	f.mouse(pointer.Press, 5, 5, 0)
	f.mouse(pointer.Release, 1, 1, 50*ms)
	if err := f.app.Tick(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := f.clicks(); len(got) != 0 {
		t.Errorf("clicks = %v, want none", got)
	}
	if s := f.btns[0].State(); s != widget.StateNone {
		t.Errorf("state = %v, want None", s)
	}
}

func TestHover(t *testing.T) {
	f := newFixture(t)
	f.mouse(pointer.Move, 5, 5, 0)
	if s := f.btns[0].State(); s != widget.StateHover {
		t.Fatalf("state = %v, want Hover", s)
	}
	f.mouse(pointer.Move, 13, 5, 10*ms)
	if s := f.btns[0].State(); s != widget.StateNone {
		t.Errorf("previous owner state = %v, want None", s)
	}
	if s := f.btns[1].State(); s != widget.StateHover {
		t.Errorf("new owner state = %v, want Hover", s)
	}
	f.mouse(pointer.Move, 1, 1, 20*ms)
	if s := f.btns[1].State(); s != widget.StateNone {
		t.Errorf("state in padding = %v, want None", s)
	}
	if _, ok := f.app.Input().Hover(); ok {
		t.Error("hover owner left in padding")
	}
}

func TestDecoratedClose(t *testing.T) {
	f := newFixture(t, Decorated(), Title("Test"))
	f.layout(layout.Sz(100, 60).Opt())
	closeBtn, err := f.app.Lookup(widget.Target{Window: f.id, Path: widget.Path{{I: 0}, {I: 2}}})
	if err != nil {
		t.Fatal(err)
	}
	r := closeBtn.Wrappee().Bounds()
	x, y := r.X+r.Width/2, r.Y+r.Height/2
	f.mouse(pointer.Press, x, y, 0)
	f.mouse(pointer.Release, x, y, 10*ms)
	if err := f.app.Tick(time.Second); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.app.Window(f.id); ok {
		t.Error("window not removed by its close button")
	}
	if len(f.top) == 0 {
		t.Fatal("window callback not called")
	}
	if _, ok := f.top[len(f.top)-1].(CloseEvent); !ok {
		t.Errorf("last event = %T, want CloseEvent", f.top[len(f.top)-1])
	}
}

func TestMinimizeConsumed(t *testing.T) {
	a := New(DefaultConfig())
	w := NewWindow(nil, On(func(ctx *widget.Context, w *Window, ev event.Event) (event.Event, error) {
		if _, ok := ev.(MinimizeEvent); ok {
			return nil, nil
		}
		return ev, nil
	}))
	id := a.AddWindow(w)
	if err := a.Dispatch(id, MinimizeEvent{}); err != nil {
		t.Fatal(err)
	}
	if !w.Visible() {
		t.Error("consumed MinimizeEvent hid the window")
	}
	w.SetOn(nil)
	if err := a.Dispatch(id, MinimizeEvent{}); err != nil {
		t.Fatal(err)
	}
	if w.Visible() {
		t.Error("MinimizeEvent did not hide the window")
	}
	if err := a.Dispatch(42, MinimizeEvent{}); err != ErrNoWindow {
		t.Errorf("dispatch to missing window: %v, want %v", err, ErrNoWindow)
	}
}

func TestCallbackOrder(t *testing.T) {
	f := newFixture(t)
	var got []int
	q := f.app.Queue()
	errStop := errors.New("stop")
	q.Push(widget.CallbackCmd{Func: func() error {
		got = append(got, 1)
		q.Push(widget.CallbackCmd{Func: func() error { got = append(got, 3); return nil }})
		return nil
	}})
	q.Push(widget.CallbackCmd{Func: func() error { got = append(got, 2); return errStop }})
	if err := f.app.Flush(); err != errStop {
		t.Fatalf("Flush = %v, want %v", err, errStop)
	}
	if q.Len() != 1 {
		t.Errorf("%d commands left, want 1", q.Len())
	}
	if err := f.app.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
}

func TestStaleTargets(t *testing.T) {
	f := newFixture(t)
	q := f.app.Queue()
	gone := widget.Target{Window: f.id, Path: widget.Path{{I: 9}}}
	q.Push(widget.ClearStateCmd{Target: gone})
	q.Push(widget.SetFocusCmd{Target: gone})
	q.Push(widget.PushEventCmd{Target: widget.Target{Window: 77}, Event: CloseEvent{}})
	if err := f.app.Flush(); err != nil {
		t.Errorf("stale commands failed: %v", err)
	}
}
