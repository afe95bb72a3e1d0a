// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"lwtk.org/layout"
	"lwtk.org/paint"
)

// line is the computed layout of children arranged along the major
// axis of an orientation.
type line struct {
	// widths are the major axis widths allotted to the children.
	widths []int
	width  int
	height int

	// zeroWidth is the sum of the margin widths of zero weight
	// children.
	zeroWidth int
	weightSum int
	// weightWidth is the width of a weight unit and weightRem the
	// pixels left over, given one each to the earliest weight units.
	weightWidth int
	weightRem   int
}

// update sizes children for an available major width and cross height.
// Zero weight children are sized first, each against the space left by
// the previous ones. The remaining space is then shared among weighted
// children in proportion to their weight. Without a major constraint
// the weight unit grows to fit the widest child per unit of weight.
func (l *line) update(cv paint.Canvas, th Theme, o layout.Orient, children []Widget, avail, cross layout.Opt) error {
	l.widths = l.widths[:0]
	for range children {
		l.widths = append(l.widths, 0)
	}
	l.zeroWidth, l.weightSum, l.height = 0, 0, 0
	remaining := avail
	for i, c := range children {
		b := c.Wrappee()
		if b.weight > 0 {
			l.weightSum += b.weight
			continue
		}
		if err := c.UpdateSize(cv, th, o.OptSize(remaining, cross)); err != nil {
			return err
		}
		mb := b.marginBounds.Size()
		l.widths[i] = o.Width(mb)
		l.zeroWidth += l.widths[i]
		l.height = max(l.height, o.Height(mb))
		remaining = remaining.Sub(l.widths[i])
	}
	l.weightWidth, l.weightRem = 0, 0
	l.width = l.zeroWidth
	if l.weightSum == 0 {
		return nil
	}
	r, bounded := remaining.Get()
	if bounded {
		l.weightWidth = r / l.weightSum
		l.weightRem = r % l.weightSum
	} else {
		// Without a major constraint the weight unit is the smallest
		// that gives every weighted child its natural width.
		for i, c := range children {
			b := c.Wrappee()
			if b.weight == 0 {
				continue
			}
			if err := c.UpdateSize(cv, th, o.OptSize(layout.None, cross)); err != nil {
				return err
			}
			mb := b.marginBounds.Size()
			l.widths[i] = o.Width(mb)
			l.height = max(l.height, o.Height(mb))
			l.weightWidth = max(l.weightWidth, (l.widths[i]+b.weight-1)/b.weight)
		}
	}
	rem := l.weightRem
	for i, c := range children {
		b := c.Wrappee()
		if b.weight == 0 {
			continue
		}
		extra := min(b.weight, rem)
		rem -= extra
		l.widths[i] = b.weight*l.weightWidth + extra
		l.width += l.widths[i]
		if !bounded {
			continue
		}
		if err := c.UpdateSize(cv, th, o.OptSize(layout.Some(l.widths[i]), cross)); err != nil {
			return err
		}
		l.height = max(l.height, o.Height(b.marginBounds.Size()))
	}
	if bounded {
		return nil
	}
	// The weighted children were sized before their share and the line
	// height were known. Size them again so that wrapped text and Fill
	// alignment see the final width and height.
	h := cross
	if !h.Ok {
		h = layout.Some(l.height)
	}
	for i, c := range children {
		b := c.Wrappee()
		if b.weight == 0 {
			continue
		}
		if err := c.UpdateSize(cv, th, o.OptSize(layout.Some(l.widths[i]), h)); err != nil {
			return err
		}
		l.height = max(l.height, o.Height(b.marginBounds.Size()))
	}
	return nil
}

// place positions children along the major axis from origin, giving
// each its allotted width and the given cross height.
func (l *line) place(cv paint.Canvas, th Theme, o layout.Orient, children []Widget, origin layout.Pos, height int) error {
	x, y := o.X(origin), o.Y(origin)
	for i, c := range children {
		p := o.Pos(x, y)
		area := layout.Rt(p, o.Size(l.widths[i], height))
		if err := c.UpdatePos(cv, th, area); err != nil {
			return err
		}
		x += l.widths[i]
	}
	return nil
}

// drawChildren paints children clipped to r.
func drawChildren(cv paint.Canvas, th Theme, r layout.Rect, children []Widget, focusedWindow bool) error {
	cv.Save()
	paint.ClipRect(cv, r)
	var err error
	for _, c := range children {
		if err = c.Draw(cv, th, focusedWindow); err != nil {
			break
		}
	}
	if rerr := cv.Restore(); err == nil {
		err = rerr
	}
	return err
}

// indexAt returns the index of the child whose margin bounds contain p.
func indexAt(children []Widget, p layout.Pos) (int, bool) {
	for i, c := range children {
		if c.Wrappee().marginBounds.Contains(p) {
			return i, true
		}
	}
	return 0, false
}
