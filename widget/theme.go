// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/layout"
	"lwtk.org/paint"
	"lwtk.org/text"
)

// Kind identifies the kind of a widget for the theme.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindButton
	KindLabel
	KindCheck
	KindRadio
	KindTitle
	KindTitleButton
	KindLinearLayout
	KindGridLayout
	KindWindow
)

// Icon names the icons a theme draws.
type Icon uint8

const (
	IconNone Icon = iota
	IconCheck
	IconRadio
	IconClose
	IconMaximize
	IconMinimize
)

// DrawState is the state a theme paints a widget in.
type DrawState struct {
	State         State
	Enabled       bool
	Focused       bool
	FocusedWindow bool
	// Checked is set for checked checks and selected radios.
	Checked bool
}

// Theme provides the metrics and the painting of widgets. Widgets
// never interpret the errors returned by a theme; they come from the
// canvas and are passed on unchanged.
type Theme interface {
	// Margin returns the margin of widgets of kind k.
	Margin(k Kind) layout.Edges
	// Padding returns the padding of widgets of kind k.
	Padding(k Kind) layout.Edges
	// IconSize returns the size of icon ic for widgets of kind k.
	IconSize(k Kind, ic Icon) layout.Size
	// SetFont sets the font used by widgets of kind k on cv.
	SetFont(cv paint.Canvas, k Kind) error
	// DrawBackground paints the background of a widget of kind k
	// with the given bounds.
	DrawBackground(cv paint.Canvas, k Kind, bounds layout.Rect, st DrawState) error
	// DrawText paints t in area. The font set by SetFont is current.
	DrawText(cv paint.Canvas, k Kind, t *text.Text, area layout.Rect, st DrawState) error
	// DrawIcon paints ic in area.
	DrawIcon(cv paint.Canvas, k Kind, ic Icon, area layout.Rect, st DrawState) error
}

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindButton:
		return "Button"
	case KindLabel:
		return "Label"
	case KindCheck:
		return "Check"
	case KindRadio:
		return "Radio"
	case KindTitle:
		return "Title"
	case KindTitleButton:
		return "TitleButton"
	case KindLinearLayout:
		return "LinearLayout"
	case KindGridLayout:
		return "GridLayout"
	case KindWindow:
		return "Window"
	default:
		panic("invalid Kind")
	}
}

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateHover:
		return "Hover"
	case StateActive:
		return "Active"
	default:
		panic("invalid State")
	}
}
