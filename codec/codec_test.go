package codec

import "testing"

func TestDecode_PlainASCII(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		idx  int
	}{
		{in: "A", kind: KindUpper, idx: 0},
		{in: "Z", kind: KindUpper, idx: 25},
		{in: "a", kind: KindLower, idx: 0},
		{in: "h", kind: KindLower, idx: 7},
		{in: "0", kind: KindDigit, idx: 0},
		{in: "9", kind: KindDigit, idx: 9},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := Decode(tc.in)
			if got.Kind != tc.kind || got.Index != tc.idx || got.Bold || got.Italic {
				t.Fatalf("Decode(%q): got %+v, want kind=%v idx=%d plain", tc.in, got, tc.kind, tc.idx)
			}
		})
	}
}

func TestDecode_StyledBlocks(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		kind   Kind
		idx    int
		bold   bool
		italic bool
	}{
		{name: "bold-upper-A", in: "\U0001D400", kind: KindUpper, idx: 0, bold: true},
		{name: "bold-lower-z", in: "\U0001D433", kind: KindLower, idx: 25, bold: true},
		{name: "italic-upper-H", in: "\U0001D43B", kind: KindUpper, idx: 7, italic: true},
		{name: "italic-lower-a", in: "\U0001D44E", kind: KindLower, idx: 0, italic: true},
		{name: "italic-small-h", in: "\u210E", kind: KindLower, idx: 7, italic: true},
		{name: "bold-digit-7", in: "\U0001D7D5", kind: KindDigit, idx: 7, bold: true},
		{name: "bold-italic-upper-B", in: "\U0001D469", kind: KindUpper, idx: 1, bold: true, italic: true},
		{name: "bold-italic-lower-h", in: "\U0001D489", kind: KindLower, idx: 7, bold: true, italic: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.in)
			if got.Kind != tc.kind || got.Index != tc.idx || got.Bold != tc.bold || got.Italic != tc.italic {
				t.Fatalf("Decode(%q): got %+v", tc.in, got)
			}
		})
	}
}

func TestDecode_ItalicHoleIsOther(t *testing.T) {
	hole := string(rune(0x1D455))
	got := Decode(hole)
	if got.Kind != KindOther {
		t.Fatalf("unassigned italic h position: got kind %v, want other", got.Kind)
	}
	if got.Raw != hole {
		t.Fatalf("raw: got %q, want %q", got.Raw, hole)
	}
}

func TestDecode_Other(t *testing.T) {
	for _, in := range []string{" ", "_", "é", "•", "\U0001F600", "", "ab"} {
		got := Decode(in)
		if got.Kind != KindOther {
			t.Fatalf("Decode(%q): got kind %v, want other", in, got.Kind)
		}
		if Encode(got, true, true) != in {
			t.Fatalf("Encode(Decode(%q)) must round-trip unchanged", in)
		}
	}
}

func TestEncode_SelectsBlock(t *testing.T) {
	upperA := Node{Kind: KindUpper, Index: 0}
	lowerH := Node{Kind: KindLower, Index: 7}
	digit1 := Node{Kind: KindDigit, Index: 1}

	cases := []struct {
		name   string
		node   Node
		bold   bool
		italic bool
		want   string
	}{
		{name: "upper-plain", node: upperA, want: "A"},
		{name: "upper-bold", node: upperA, bold: true, want: "\U0001D400"},
		{name: "upper-italic", node: upperA, italic: true, want: "\U0001D434"},
		{name: "upper-bold-italic", node: upperA, bold: true, italic: true, want: "\U0001D468"},
		{name: "lower-h-italic", node: lowerH, italic: true, want: "\u210E"},
		{name: "lower-h-bold", node: lowerH, bold: true, want: "\U0001D421"},
		{name: "lower-h-bold-italic", node: lowerH, bold: true, italic: true, want: "\U0001D489"},
		{name: "digit-bold", node: digit1, bold: true, want: "\U0001D7CF"},
		{name: "digit-italic-falls-back-plain", node: digit1, italic: true, want: "1"},
		{name: "digit-bold-italic-falls-back-bold", node: digit1, bold: true, italic: true, want: "\U0001D7CF"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(tc.node, tc.bold, tc.italic); got != tc.want {
				t.Fatalf("Encode: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	pairs := [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}}
	sizes := map[Kind]int{KindUpper: 26, KindLower: 26, KindDigit: 10}

	for kind, size := range sizes {
		for idx := 0; idx < size; idx++ {
			for _, p := range pairs {
				n := Node{Kind: kind, Index: idx}
				enc := Encode(n, p[0], p[1])
				got := Decode(enc)
				if got.Kind != kind || got.Index != idx {
					t.Fatalf("round trip %v/%d bold=%v italic=%v: got %+v from %q", kind, idx, p[0], p[1], got, enc)
				}
				if again := Encode(got, got.Bold, got.Italic); again != enc {
					t.Fatalf("re-encode %q: got %q", enc, again)
				}
			}
		}
	}
}

func TestRestyleAndPlain(t *testing.T) {
	if got, want := Restyle("Hi 42!", true, false), "\U0001D407\U0001D422 \U0001D7D2\U0001D7D0!"; got != want {
		t.Fatalf("Restyle bold: got %q, want %q", got, want)
	}
	if got, want := Restyle("\U0001D407\U0001D422 h", false, true), "\U0001D43B\U0001D456 \u210E"; got != want {
		t.Fatalf("Restyle italic: got %q, want %q", got, want)
	}
	if got, want := Plain("\U0001D468\U0001D41B\u210E \U0001D7D7 ok\xff"), "Abh 9 ok\xff"; got != want {
		t.Fatalf("Plain: got %q, want %q", got, want)
	}
}
