// SPDX-License-Identifier: Unlicense OR MIT

package widget

// CheckChange is emitted by a Check when a click flips it.
type CheckChange struct {
	Checked bool
}

// RadioSelection is emitted by a Radio when a click selects it. Ordinal
// is the 1-based ordinal of the radio in its group.
type RadioSelection struct {
	Ordinal int
}

func (CheckChange) ImplementsEvent()    {}
func (RadioSelection) ImplementsEvent() {}
