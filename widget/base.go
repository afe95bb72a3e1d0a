// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync/atomic"

	"lwtk.org/layout"
)

// State is the interaction state of a widget.
type State uint8

const (
	StateNone State = iota
	// StateHover is set while the pointer is over the widget.
	StateHover
	// StateActive is set while the widget is pressed.
	StateActive
)

// Base holds the state common to all widgets. Widgets embed it and
// return it from Widget.Wrappee.
type Base struct {
	kind Kind
	flag *atomic.Bool

	marginBounds layout.Rect
	bounds       layout.Rect
	clientPos    layout.Pos

	weight    int
	hAlign    layout.HAlign
	vAlign    layout.VAlign
	state     State
	enabled   bool
	focusable bool
	focused   bool
	preferred layout.OptSize
	min       layout.OptSize
	on        OnFunc
}

func newBase(k Kind) Base {
	return Base{
		kind:    k,
		flag:    new(atomic.Bool),
		enabled: true,
	}
}

// Wrappee implements Widget.
func (b *Base) Wrappee() *Base {
	return b
}

// Kind returns the kind of the widget, used to query the theme.
func (b *Base) Kind() Kind {
	return b.kind
}

// ChangeFlag returns the flag raised when the widget changes.
func (b *Base) ChangeFlag() *atomic.Bool {
	return b.flag
}

// SetChangeFlag implements Widget for leaf widgets.
func (b *Base) SetChangeFlag(f *atomic.Bool) {
	b.flag = f
}

// Changed raises the change flag.
func (b *Base) Changed() {
	b.flag.Store(true)
}

// MarginBounds returns the bounds of the widget including its margin.
func (b *Base) MarginBounds() layout.Rect {
	return b.marginBounds
}

// Bounds returns the bounds of the widget without its margin.
func (b *Base) Bounds() layout.Rect {
	return b.bounds
}

// ClientPos returns the scroll offset of the content.
func (b *Base) ClientPos() layout.Pos {
	return b.clientPos
}

func (b *Base) SetClientPos(p layout.Pos) {
	if b.clientPos != p {
		b.clientPos = p
		b.Changed()
	}
}

// Weight returns the share of the leftover space a layout gives the
// widget. Zero means the natural size.
func (b *Base) Weight() int {
	return b.weight
}

func (b *Base) SetWeight(w int) {
	w = max(w, 0)
	if b.weight != w {
		b.weight = w
		b.Changed()
	}
}

func (b *Base) HAlign() layout.HAlign {
	return b.hAlign
}

func (b *Base) SetHAlign(a layout.HAlign) {
	if b.hAlign != a {
		b.hAlign = a
		b.Changed()
	}
}

func (b *Base) VAlign() layout.VAlign {
	return b.vAlign
}

func (b *Base) SetVAlign(a layout.VAlign) {
	if b.vAlign != a {
		b.vAlign = a
		b.Changed()
	}
}

func (b *Base) State() State {
	return b.state
}

func (b *Base) SetState(s State) {
	if b.state != s {
		b.state = s
		b.Changed()
	}
}

func (b *Base) Enabled() bool {
	return b.enabled
}

// SetEnabled enables or disables the widget. A disabled widget loses
// its interaction state.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled != enabled {
		b.enabled = enabled
		if !enabled {
			b.state = StateNone
		}
		b.Changed()
	}
}

func (b *Base) Focusable() bool {
	return b.focusable
}

func (b *Base) SetFocusable(focusable bool) {
	if b.focusable != focusable {
		b.focusable = focusable
		b.Changed()
	}
}

func (b *Base) Focused() bool {
	return b.focused
}

// SetFocused is called by the window owning the widget when the
// keyboard focus moves.
func (b *Base) SetFocused(focused bool) {
	if b.focused != focused {
		b.focused = focused
		b.Changed()
	}
}

// PreferredSize returns the preferred size hint. Set dimensions are a
// floor for the computed size.
func (b *Base) PreferredSize() layout.OptSize {
	return b.preferred
}

func (b *Base) SetPreferredSize(s layout.OptSize) {
	if b.preferred != s {
		b.preferred = s
		b.Changed()
	}
}

// MinSize returns the minimum size hint. A window never gets smaller
// than the hint of its content.
func (b *Base) MinSize() layout.OptSize {
	return b.min
}

func (b *Base) SetMinSize(s layout.OptSize) {
	if b.min != s {
		b.min = s
		b.Changed()
	}
}

// SetOn installs the event callback of the widget.
func (b *Base) SetOn(f OnFunc) {
	b.on = f
}

// drawState returns the theme state of the widget.
func (b *Base) drawState(focusedWindow bool) DrawState {
	return DrawState{
		State:         b.state,
		Enabled:       b.enabled,
		Focused:       b.focused,
		FocusedWindow: focusedWindow,
	}
}

// fitSize applies the sizing protocol of leaf widgets to a content
// size: padding, then the preferred size floor, then margin, then
// growth for Fill alignment, and finally the margin is stripped again.
func (b *Base) fitSize(content layout.Size, th Theme, area layout.OptSize) {
	size := layout.OuterSize(content, th.Padding(b.kind))
	size = layout.MaxSizeForOptSize(size, b.preferred)
	margin := th.Margin(b.kind)
	outer := layout.OuterSize(size, margin)
	outer = layout.GrowForAlign(outer, area, b.hAlign, b.vAlign)
	b.marginBounds.Width, b.marginBounds.Height = outer.Width, outer.Height
	inner := layout.InnerSize(outer, margin)
	b.bounds.Width, b.bounds.Height = inner.Width, inner.Height
}

// place positions the margin bounds of the widget in area according
// to its alignment.
func (b *Base) place(th Theme, area layout.Rect) {
	size := b.marginBounds.Size()
	p := layout.PosForAlign(size, area, b.hAlign, b.vAlign)
	b.marginBounds = layout.Rt(p, size)
	b.bounds = layout.InnerRect(b.marginBounds, th.Margin(b.kind))
}

// contentRect returns the bounds of the widget without padding.
func (b *Base) contentRect(th Theme) layout.Rect {
	return layout.InnerRect(b.bounds, th.Padding(b.kind))
}
