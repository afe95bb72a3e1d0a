// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"

	"lwtk.org/layout"
)

// cluster is a measured grapheme cluster.
type cluster struct {
	start, end int
	adv        fixed.Int26_6
	newline    bool
	space      bool
}

// span is a line under construction, in cluster indices.
type span struct {
	first, last int
	width       fixed.Int26_6
}

// IsMark reports whether r is a combining mark, which never starts a
// cluster of its own.
func IsMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// clusters splits s into grapheme clusters. A cluster starting with a
// mark is folded into the previous one unless that one ends a line.
func clusters(s string) []cluster {
	var cs []cluster
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, end := g.Positions()
		r, _ := utf8.DecodeRuneInString(s[start:end])
		if n := len(cs); n > 0 && IsMark(r) && !cs[n-1].newline {
			cs[n-1].end = end
			continue
		}
		cs = append(cs, cluster{
			start:   start,
			end:     end,
			newline: r == '\n' || r == '\r',
			space:   r != '\n' && r != '\r' && unicode.IsSpace(r),
		})
	}
	return cs
}

// UpdateSize computes the lines of t for the width of area, measuring
// with the current font of m. An unconstrained width only breaks lines
// at newlines.
func (t *Text) UpdateSize(m Measurer, area layout.OptSize) error {
	fe, err := m.FontExtents()
	if err != nil {
		return err
	}
	cs := clusters(t.s)
	for i := range cs {
		c := &cs[i]
		if c.newline {
			continue
		}
		ext, err := m.TextExtents(t.s[c.start:c.end])
		if err != nil {
			return err
		}
		c.adv = ext.XAdvance
	}
	var ellipsisW fixed.Int26_6
	if t.ellipsize > 0 {
		ext, err := m.TextExtents(Ellipsis)
		if err != nil {
			return err
		}
		ellipsisW = ext.XAdvance
	}
	maxW, bounded := area.Width.Get()
	spans := t.breakLines(cs, fixed.I(maxW), bounded)
	t.ellipsis = false
	t.ellipsisW = 0
	if t.ellipsize > 0 && len(spans) > t.ellipsize {
		spans = spans[:t.ellipsize]
		last := &spans[len(spans)-1]
		*last = fitWithEllipsis(cs, *last, fixed.I(maxW)-ellipsisW, bounded)
		t.ellipsis = true
		t.ellipsisW = ellipsisW.Ceil()
	}
	t.lines = t.lines[:0]
	width := 0
	for i, sp := range spans {
		l := Line{Width: sp.width.Ceil()}
		if sp.first < sp.last {
			l.Start, l.End = cs[sp.first].start, cs[sp.last-1].end
		} else if sp.first < len(cs) {
			l.Start, l.End = cs[sp.first].start, cs[sp.first].start
		} else {
			l.Start, l.End = len(t.s), len(t.s)
		}
		w := l.Width
		if t.ellipsis && i == len(spans)-1 {
			w += t.ellipsisW
		}
		width = max(width, w)
		t.lines = append(t.lines, l)
	}
	t.lineHeight = fe.Height.Ceil()
	t.size = layout.Size{Width: width, Height: len(t.lines) * t.lineHeight}
	return nil
}

func (t *Text) breakLines(cs []cluster, maxW fixed.Int26_6, bounded bool) []span {
	var spans []span
	start := 0
	var width fixed.Int26_6
	// word is the cluster index following the last whitespace run of
	// the line, or -1.
	word := -1
	var wordWidth fixed.Int26_6
	endLine := func(last int, w fixed.Int26_6) {
		spans = append(spans, span{first: start, last: last, width: w})
		width = 0
		word = -1
	}
	for i := 0; i < len(cs); {
		c := cs[i]
		if c.newline {
			endLine(i, width)
			i++
			start = i
			continue
		}
		if t.trim && i == start && c.space {
			i++
			start = i
			continue
		}
		if bounded && i > start && width+c.adv > maxW {
			if w := word; w > start {
				endLine(w, wordWidth)
				i = w
			} else {
				endLine(i, width)
			}
			start = i
			continue
		}
		width += c.adv
		i++
		if c.space && (i == len(cs) || !cs[i].space) {
			word = i
			wordWidth = width
		}
	}
	endLine(len(cs), width)
	return spans
}

// fitWithEllipsis refills sp from its first cluster with as many
// clusters as fit in maxW, which already excludes the ellipsis. Word
// boundaries are ignored; the line still ends at a newline.
func fitWithEllipsis(cs []cluster, sp span, maxW fixed.Int26_6, bounded bool) span {
	if !bounded {
		return sp
	}
	var w fixed.Int26_6
	last := sp.first
	for last < len(cs) && !cs[last].newline && w+cs[last].adv <= maxW {
		w += cs[last].adv
		last++
	}
	sp.last = last
	sp.width = w
	return sp
}
