// SPDX-License-Identifier: Unlicense OR MIT

package text_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"lwtk.org/internal/painttest"
	"lwtk.org/layout"
	"lwtk.org/text"
)

// cells measures 8 pixels per cell with a 14 pixel line height.
var cells = text.CellMeasurer{CellWidth: 8, Ascent: 10, Descent: 4}

func width(w int) layout.OptSize {
	return layout.OptSize{Width: layout.Some(w), Height: layout.None}
}

func lineStrings(t *text.Text) []string {
	var ls []string
	for _, l := range t.Lines() {
		ls = append(ls, t.LineString(l))
	}
	return ls
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBreakLines(t *testing.T) {
	for _, tc := range []struct {
		label string
		s     string
		area  layout.OptSize
		trim  bool
		want  []string
	}{
		{"empty", "", width(100), false, []string{""}},
		{"unbounded", "Hello world", layout.OptSize{}, false, []string{"Hello world"}},
		{"fits", "Hello", width(40), false, []string{"Hello"}},
		{"overlong word", "Button", width(39), false, []string{"Butt", "on"}},
		{"word boundary", "Hello world", width(64), false, []string{"Hello ", "world"}},
		{"newline", "ab\ncd", layout.OptSize{}, false, []string{"ab", "cd"}},
		{"crlf", "ab\r\ncd", layout.OptSize{}, false, []string{"ab", "cd"}},
		{"trailing newline", "ab\n", layout.OptSize{}, false, []string{"ab", ""}},
		{"too narrow", "abc", width(1), false, []string{"a", "b", "c"}},
		{"trim", "  ab", layout.OptSize{}, true, []string{"ab"}},
		{"trim after break", "abcd  efgh", width(40), true, []string{"abcd ", "efgh"}},
		{"no trim", "  ab", layout.OptSize{}, false, []string{"  ab"}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			txt := text.New(tc.s)
			txt.SetTrim(tc.trim)
			if err := txt.UpdateSize(cells, tc.area); err != nil {
				t.Fatal(err)
			}
			if got := lineStrings(txt); !equal(got, tc.want) {
				t.Errorf("lines = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrapSize(t *testing.T) {
	txt := text.New("Button")
	// One cell narrower than the word, minus one more pixel.
	if err := txt.UpdateSize(cells, width(6*8-8-1)); err != nil {
		t.Fatal(err)
	}
	if got := len(txt.Lines()); got != 2 {
		t.Fatalf("got %d lines, want 2", got)
	}
	if got, want := txt.Size(), layout.Sz(4*8, 2*14); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
	if w := txt.Lines()[0].Width; w != 32 {
		t.Errorf("first line width = %d, want 32", w)
	}
}

func TestTrimWidth(t *testing.T) {
	txt := text.New("   ab")
	txt.SetTrim(true)
	if err := txt.UpdateSize(cells, layout.OptSize{}); err != nil {
		t.Fatal(err)
	}
	l := txt.Lines()[0]
	if l.Start != 3 || l.Width != 16 {
		t.Errorf("line = %+v, want start 3 and width 16", l)
	}
}

func TestGraphemeIntegrity(t *testing.T) {
	inputs := []string{
		"éééé",
		"ạ̈bc d⃝ éf",
		"não é über ǻ",
		"किरण ने",
		"x̶y̶z̶ w̶",
	}
	for _, s := range inputs {
		for w := 1; w <= 80; w++ {
			txt := text.New(s)
			if err := txt.UpdateSize(cells, width(w)); err != nil {
				t.Fatal(err)
			}
			for _, l := range txt.Lines() {
				if l.Start > 0 && l.Start < len(s) {
					if r, _ := utf8.DecodeRuneInString(s[l.Start:]); text.IsMark(r) {
						t.Fatalf("%q at width %d: line starts with mark %U", s, w, r)
					}
				}
				if l.End < len(s) {
					if r, _ := utf8.DecodeRuneInString(s[l.End:]); text.IsMark(r) {
						t.Fatalf("%q at width %d: line ends before mark %U", s, w, r)
					}
				}
			}
		}
	}
}

func TestEllipsis(t *testing.T) {
	txt := text.New("aaaa bbbb cccc")
	txt.SetEllipsize(2)
	if err := txt.UpdateSize(cells, width(40)); err != nil {
		t.Fatal(err)
	}
	if !txt.HasEllipsis() {
		t.Fatal("text was not ellipsized")
	}
	if got, want := lineStrings(txt), []string{"aaaa ", "bbbb"}; !equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if got, want := txt.Size(), layout.Sz(40, 2*14); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}

	txt.SetEllipsize(3)
	if err := txt.UpdateSize(cells, width(40)); err != nil {
		t.Fatal(err)
	}
	if txt.HasEllipsis() {
		t.Error("text fitting in the line limit was ellipsized")
	}
}

func TestEllipsisFillsLine(t *testing.T) {
	for _, tc := range []struct {
		s    string
		area int
		want string
	}{
		{"Hello wonderful world", 80, "Hello won"},
		{"ab cdefgh ij", 48, "ab cd"},
		{"ab\ncdefgh", 80, "ab"},
	} {
		txt := text.New(tc.s)
		txt.SetEllipsize(1)
		if err := txt.UpdateSize(cells, width(tc.area)); err != nil {
			t.Fatal(err)
		}
		if got := lineStrings(txt); !equal(got, []string{tc.want}) {
			t.Errorf("%q: lines = %q, want %q", tc.s, got, []string{tc.want})
		}
		if !txt.HasEllipsis() {
			t.Errorf("%q: missing ellipsis", tc.s)
		}
		want := layout.Sz((utf8.RuneCountInString(tc.want)+1)*8, 14)
		if got := txt.Size(); got != want {
			t.Errorf("%q: size = %v, want %v", tc.s, got, want)
		}
	}
}

func TestEllipsisUnbounded(t *testing.T) {
	txt := text.New("one\ntwo\nthree")
	txt.SetEllipsize(2)
	if err := txt.UpdateSize(cells, layout.OptSize{}); err != nil {
		t.Fatal(err)
	}
	if got, want := lineStrings(txt), []string{"one", "two"}; !equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if !txt.HasEllipsis() {
		t.Error("missing ellipsis")
	}
}

func TestDraw(t *testing.T) {
	cv := painttest.New()
	txt := text.New("Butto n")
	txt.SetAlign(layout.TextCenter)
	if err := txt.UpdateSize(cv, width(48)); err != nil {
		t.Fatal(err)
	}
	area := layout.Rect{X: 10, Y: 0, Width: 60, Height: 40}
	if err := txt.Draw(cv, area); err != nil {
		t.Fatal(err)
	}
	if got, want := cv.Texts(), []string{"Butto ", "n"}; !equal(got, want) {
		t.Fatalf("drawn = %q, want %q", got, want)
	}
	var moves [][]float64
	for _, op := range cv.Ops {
		if op.Name == "move_to" {
			moves = append(moves, op.Args)
		}
	}
	// Block of 28 pixels centered in 40: first baseline at 6+10.
	want := [][]float64{{10 + (60-48)/2, 16}, {10 + (60-8)/2, 30}}
	for i := range want {
		if moves[i][0] != want[i][0] || moves[i][1] != want[i][1] {
			t.Errorf("line %d drawn at %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestDrawEllipsis(t *testing.T) {
	cv := painttest.New()
	txt := text.New(strings.Repeat("x", 20))
	txt.SetEllipsize(1)
	if err := txt.UpdateSize(cv, width(40)); err != nil {
		t.Fatal(err)
	}
	if err := txt.Draw(cv, layout.Rect{Width: 40, Height: 14}); err != nil {
		t.Fatal(err)
	}
	if got, want := cv.Texts(), []string{"xxxx", text.Ellipsis}; !equal(got, want) {
		t.Errorf("drawn = %q, want %q", got, want)
	}
}

func TestMeasureError(t *testing.T) {
	cv := painttest.New()
	cv.FailOn = "text_extents"
	if err := text.New("abc").UpdateSize(cv, width(10)); err != painttest.ErrInjected {
		t.Errorf("UpdateSize error = %v, want %v", err, painttest.ErrInjected)
	}
}
