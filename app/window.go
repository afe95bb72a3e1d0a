// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync/atomic"

	"golang.org/x/exp/slices"

	"lwtk.org/io/event"
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/widget"
)

// Window is a toplevel window showing a widget tree.
type Window struct {
	id       widget.WindowID
	parent   widget.WindowID
	content  widget.Widget
	decor    *decoration
	title    string
	minSize  layout.Size
	size     layout.Size
	padding  layout.Rect
	visible  bool
	focused  bool
	flag     *atomic.Bool
	children []widget.WindowID
	focus    widget.Path
	focusOK  bool
	on       OnFunc

	decorated bool
}

// OnFunc is a window callback. It receives the events bubbling out of
// the widget tree and the events without a widget target, and returns
// the event left to the window default behavior, or nil.
type OnFunc func(ctx *widget.Context, w *Window, ev event.Event) (event.Event, error)

// Option configures a window.
type Option func(w *Window)

// Title sets the title of the window.
func Title(t string) Option {
	return func(w *Window) {
		w.title = t
	}
}

// MinSize sets the minimum size of the window.
func MinSize(sz layout.Size) Option {
	return func(w *Window) {
		w.minSize = sz
	}
}

// Hidden creates the window invisible.
func Hidden() Option {
	return func(w *Window) {
		w.visible = false
	}
}

// Decorated adds a title bar with minimize and close buttons above the
// content.
func Decorated() Option {
	return func(w *Window) {
		w.decorated = true
	}
}

// On sets the window callback.
func On(f OnFunc) Option {
	return func(w *Window) {
		w.on = f
	}
}

// NewWindow returns a window showing content. Content may be nil.
func NewWindow(content widget.Widget, options ...Option) *Window {
	w := &Window{
		content: content,
		visible: true,
		flag:    new(atomic.Bool),
	}
	w.flag.Store(true)
	for _, o := range options {
		o(w)
	}
	if w.decorated {
		w.decor = newDecoration(w.title, content)
	}
	if r := w.Root(); r != nil {
		r.SetChangeFlag(w.flag)
	}
	return w
}

// ID returns the id assigned by App.AddWindow, or zero.
func (w *Window) ID() widget.WindowID {
	return w.id
}

// Parent returns the id of the parent window.
func (w *Window) Parent() (widget.WindowID, bool) {
	return w.parent, w.parent != 0
}

// Content returns the widget passed to NewWindow.
func (w *Window) Content() widget.Widget {
	return w.content
}

// Root returns the root of the widget tree, which differs from the
// content for decorated windows. Paths are relative to the root.
func (w *Window) Root() widget.Widget {
	if w.decor != nil {
		return w.decor.root
	}
	return w.content
}

// ContentPath returns the path of the content from the root.
func (w *Window) ContentPath() widget.Path {
	if w.decor != nil {
		return widget.Path{decorContent}
	}
	return nil
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) SetTitle(t string) {
	if w.title != t {
		w.title = t
		if w.decor != nil {
			w.decor.title.SetText(t)
		}
		w.Invalidate()
	}
}

func (w *Window) MinSize() layout.Size {
	return w.minSize
}

func (w *Window) SetMinSize(sz layout.Size) {
	if w.minSize != sz {
		w.minSize = sz
		w.Invalidate()
	}
}

// Size returns the size computed by UpdateSize.
func (w *Window) Size() layout.Size {
	return w.size
}

// PaddingBounds returns the area of the widget tree inside the window
// padding.
func (w *Window) PaddingBounds() layout.Rect {
	return w.padding
}

func (w *Window) Visible() bool {
	return w.visible
}

func (w *Window) SetVisible(v bool) {
	if w.visible != v {
		w.visible = v
		w.Invalidate()
	}
}

// Focused reports whether the window has the keyboard focus.
func (w *Window) Focused() bool {
	return w.focused
}

func (w *Window) SetFocus(f bool) {
	if w.focused != f {
		w.focused = f
		w.Invalidate()
	}
}

// Invalidate marks the window for layout and drawing.
func (w *Window) Invalidate() {
	w.flag.Store(true)
}

// Changed reports whether the window or one of its widgets changed
// since the last Draw.
func (w *Window) Changed() bool {
	return w.flag.Load()
}

// ChangeFlag returns the flag shared with the widget tree.
func (w *Window) ChangeFlag() *atomic.Bool {
	return w.flag
}

// Children returns the ids of the child windows in increasing order.
func (w *Window) Children() []widget.WindowID {
	return slices.Clone(w.children)
}

func (w *Window) addChild(id widget.WindowID) {
	i, found := slices.BinarySearch(w.children, id)
	if !found {
		w.children = slices.Insert(w.children, i, id)
		w.Invalidate()
	}
}

func (w *Window) removeChild(id widget.WindowID) {
	if i, found := slices.BinarySearch(w.children, id); found {
		w.children = slices.Delete(w.children, i, i+1)
		w.Invalidate()
	}
}

// FocusedWidget returns the path of the widget with the keyboard focus.
func (w *Window) FocusedWidget() (widget.Path, bool) {
	return w.focus, w.focusOK
}

// SetFocusedWidget moves the keyboard focus to the widget at p. It
// reports false when p addresses no widget.
func (w *Window) SetFocusedWidget(p widget.Path) bool {
	root := w.Root()
	if root == nil {
		return false
	}
	next, ok := widget.Lookup(root, p)
	if !ok {
		return false
	}
	w.ClearFocusedWidget()
	next.Wrappee().SetFocused(true)
	w.focus, w.focusOK = slices.Clone(p), true
	return true
}

// ClearFocusedWidget removes the keyboard focus from the widget tree.
func (w *Window) ClearFocusedWidget() {
	if !w.focusOK {
		return
	}
	if prev, ok := widget.Lookup(w.Root(), w.focus); ok {
		prev.Wrappee().SetFocused(false)
	}
	w.focus, w.focusOK = nil, false
}

// SetOn sets the window callback.
func (w *Window) SetOn(f OnFunc) {
	w.on = f
}

// Layout computes the size of the window for area and places its
// widgets.
func (w *Window) Layout(cv paint.Canvas, th widget.Theme, area layout.OptSize) error {
	if err := w.UpdateSize(cv, th, area); err != nil {
		return err
	}
	return w.UpdatePos(cv, th)
}

// UpdateSize computes the size of the window from its widgets and the
// available area. A window without widgets takes the area, or 1x1
// pixel when unconstrained. The result is at least the window minimum
// size and the minimum size hint of the content.
func (w *Window) UpdateSize(cv paint.Canvas, th widget.Theme, area layout.OptSize) error {
	root := w.Root()
	var sz layout.Size
	if root == nil {
		sz = layout.Sz(area.Width.Or(1), area.Height.Or(1))
	} else {
		pad := th.Padding(widget.KindWindow)
		if err := root.UpdateSize(cv, th, layout.InnerOptSize(area, pad)); err != nil {
			return err
		}
		sz = layout.OuterSize(root.Wrappee().MarginBounds().Size(), pad)
		sz = layout.GrowForAlign(sz, area, layout.HFill, layout.VFill)
	}
	w.size = sz.Max(w.minSize).Max(w.contentMinSize(th))
	return nil
}

// contentMinSize is the minimum size hint of the content widget with
// the window padding around it.
func (w *Window) contentMinSize(th widget.Theme) layout.Size {
	c := w.Content()
	if c == nil {
		return layout.Size{}
	}
	m := c.Wrappee().MinSize()
	if !m.Width.Ok && !m.Height.Ok {
		return layout.Size{}
	}
	return layout.OuterSize(layout.Sz(m.Width.Or(0), m.Height.Or(0)), th.Padding(widget.KindWindow))
}

// UpdatePos places the widgets inside the window padding.
func (w *Window) UpdatePos(cv paint.Canvas, th widget.Theme) error {
	w.padding = layout.InnerRect(layout.Rect{Width: w.size.Width, Height: w.size.Height}, th.Padding(widget.KindWindow))
	root := w.Root()
	if root == nil {
		return nil
	}
	return root.UpdatePos(cv, th, w.padding)
}

// Draw paints the window and clears its change flag.
func (w *Window) Draw(cv paint.Canvas, th widget.Theme) error {
	st := widget.DrawState{Enabled: true, FocusedWindow: w.focused}
	if err := th.DrawBackground(cv, widget.KindWindow, layout.Rect{Width: w.size.Width, Height: w.size.Height}, st); err != nil {
		return err
	}
	if root := w.Root(); root != nil {
		if err := root.Draw(cv, th, w.focused); err != nil {
			return err
		}
	}
	w.flag.Store(false)
	return nil
}

// hitTest returns the path of the widget under p.
func (w *Window) hitTest(p layout.Pos) (widget.Path, bool) {
	root := w.Root()
	if root == nil {
		return nil, false
	}
	return widget.HitTest(root, p)
}
