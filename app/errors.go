// SPDX-License-Identifier: Unlicense OR MIT

package app

import "errors"

var (
	// ErrNoWindow is returned for a window id not in the table.
	ErrNoWindow = errors.New("app: no such window")
	// ErrNoWidget is returned for a path not addressing a widget.
	ErrNoWidget = errors.New("app: no such widget")
)
