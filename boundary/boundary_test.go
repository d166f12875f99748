package boundary

import (
	"testing"

	"github.com/pkg/errors"
)

// boldA is U+1D400, encoded as the surrogate pair D835 DC00.
const boldA = "\U0001D400"

func TestExpandToWord(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		caret int
		want  Span
		ok    bool
	}{
		{name: "underscore-joins", text: "hello_world 42", caret: 2, want: Span{Start: 0, End: 11}, ok: true},
		{name: "digits", text: "hello_world 42", caret: 13, want: Span{Start: 12, End: 14}, ok: true},
		{name: "caret-at-word-end", text: "hello world", caret: 5, want: Span{Start: 0, End: 5}, ok: true},
		{name: "caret-at-word-start", text: "hello world", caret: 6, want: Span{Start: 6, End: 11}, ok: true},
		{name: "only-spaces", text: "  ", caret: 1, ok: false},
		{name: "empty", text: "", caret: 0, ok: false},
		{name: "punctuation", text: "a, b", caret: 2, ok: false},
		{name: "styled-letter-is-word", text: boldA + "bc d", caret: 0, want: Span{Start: 0, End: 4}, ok: true},
		{name: "caret-after-styled", text: "x " + boldA + boldA, caret: 6, want: Span{Start: 2, End: 6}, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExpandToWord(Units(tc.text), tc.caret)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("span: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPrevNext_NeverSplitPairs(t *testing.T) {
	text := "a" + boldA + "b" + boldA
	units := Units(text)
	if len(units) != 6 {
		t.Fatalf("units: got %d, want 6", len(units))
	}

	var starts []int
	for off := 0; ; {
		c, ok := Next(units, off)
		if !ok {
			break
		}
		if SplitsPair(units, c.Start) || SplitsPair(units, c.End) {
			t.Fatalf("Next(%d) split a pair: %+v", off, c)
		}
		starts = append(starts, c.Start)
		off = c.End
	}
	if want := []int{0, 1, 3, 4}; len(starts) != len(want) {
		t.Fatalf("forward starts: got %v, want %v", starts, want)
	}

	var ends []int
	for off := len(units); ; {
		c, ok := Prev(units, off)
		if !ok {
			break
		}
		if c.End-c.Start == 1 && (isHigh(units[c.Start]) || isLow(units[c.Start])) {
			t.Fatalf("Prev(%d) returned half a pair: %+v", off, c)
		}
		ends = append(ends, c.End)
		off = c.Start
	}
	if want := []int{6, 4, 3, 1}; len(ends) != len(want) {
		t.Fatalf("backward ends: got %v, want %v", ends, want)
	}

	c, ok := Next(units, 1)
	if !ok || c.Text != boldA || c.End != 3 {
		t.Fatalf("Next(1): got %+v ok=%v", c, ok)
	}
	c, ok = Prev(units, 3)
	if !ok || c.Text != boldA || c.Start != 1 {
		t.Fatalf("Prev(3): got %+v ok=%v", c, ok)
	}
}

func TestPrevNext_Edges(t *testing.T) {
	units := Units("ab")
	if _, ok := Prev(units, 0); ok {
		t.Fatalf("Prev at start must report not found")
	}
	if _, ok := Next(units, 2); ok {
		t.Fatalf("Next at end must report not found")
	}
}

func TestIsWordChar(t *testing.T) {
	cases := []struct {
		ch   string
		want bool
	}{
		{ch: "a", want: true},
		{ch: "Z", want: true},
		{ch: "5", want: true},
		{ch: "_", want: true},
		{ch: boldA, want: true},
		{ch: "\u210E", want: true},
		{ch: "\U0001D7CE", want: true},
		{ch: " ", want: false},
		{ch: "-", want: false},
		{ch: "é", want: false},
	}
	for _, tc := range cases {
		if got := IsWordChar(tc.ch); got != tc.want {
			t.Fatalf("IsWordChar(%q): got %v, want %v", tc.ch, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	units := Units("a" + boldA)

	cases := []struct {
		name string
		span Span
		want error
	}{
		{name: "ok", span: Span{Start: 0, End: 3}},
		{name: "empty-ok", span: Span{Start: 1, End: 1}},
		{name: "inverted", span: Span{Start: 2, End: 1}, want: ErrInvertedSpan},
		{name: "negative", span: Span{Start: -1, End: 1}, want: ErrOutOfRange},
		{name: "past-end", span: Span{Start: 0, End: 4}, want: ErrOutOfRange},
		{name: "splits-pair", span: Span{Start: 0, End: 2}, want: ErrSplitsPair},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(units, tc.span)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("error: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestByteAndUnitOffsets(t *testing.T) {
	text := "é" + boldA + "x"

	cases := []struct {
		unit    int
		byteOff int
	}{
		{unit: 0, byteOff: 0},
		{unit: 1, byteOff: 2},
		{unit: 3, byteOff: 6},
		{unit: 4, byteOff: 7},
	}
	for _, tc := range cases {
		got, err := ByteOffset(text, tc.unit)
		if err != nil {
			t.Fatalf("ByteOffset(%d): %v", tc.unit, err)
		}
		if got != tc.byteOff {
			t.Fatalf("ByteOffset(%d): got %d, want %d", tc.unit, got, tc.byteOff)
		}
		if back := UnitOffset(text, got); back != tc.unit {
			t.Fatalf("UnitOffset(%d): got %d, want %d", got, back, tc.unit)
		}
	}

	if _, err := ByteOffset(text, 2); !errors.Is(err, ErrSplitsPair) {
		t.Fatalf("ByteOffset inside pair: got %v, want ErrSplitsPair", err)
	}
	if _, err := ByteOffset(text, 5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ByteOffset past end: got %v, want ErrOutOfRange", err)
	}
	if got := Len(text); got != 4 {
		t.Fatalf("Len: got %d, want 4", got)
	}
}
