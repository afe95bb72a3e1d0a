// SPDX-License-Identifier: Unlicense OR MIT

package font

import "testing"

type namedFace string

func (n namedFace) Name() string { return string(n) }

func TestMatch(t *testing.T) {
	collection := []FontFace{
		{Font: Font{Typeface: "Go"}, Face: namedFace("regular")},
		{Font: Font{Typeface: "Go", Weight: Bold}, Face: namedFace("bold")},
		{Font: Font{Typeface: "Go", Style: Italic}, Face: namedFace("italic")},
		{Font: Font{Typeface: "Go", Variant: "Mono"}, Face: namedFace("mono")},
	}
	for _, tc := range []struct {
		font Font
		want string
	}{
		{Font{}, "regular"},
		{Font{Weight: SemiBold}, "bold"},
		{Font{Style: Italic}, "italic"},
		{Font{Variant: "Mono", Weight: Bold}, "mono"},
		{Font{Typeface: "Missing", Weight: Bold}, "bold"},
	} {
		ff, ok := Match(collection, tc.font)
		if !ok {
			t.Fatalf("Match(%+v) found nothing", tc.font)
		}
		if got := ff.Face.Name(); got != tc.want {
			t.Errorf("Match(%+v) = %s, want %s", tc.font, got, tc.want)
		}
	}
	if _, ok := Match(nil, Font{}); ok {
		t.Errorf("Match on an empty collection succeeded")
	}
}
