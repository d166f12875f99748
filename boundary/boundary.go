// Package boundary locates character and word boundaries in text addressed by
// UTF-16 code unit offsets.
//
// Offsets follow the convention of text widgets that report selections in
// UTF-16 code units: a supplementary-plane character occupies two units (a
// surrogate pair) and an offset must never fall between them.
package boundary

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/iw2rmb/unistyle/codec"
)

var (
	ErrOutOfRange   = errors.New("offset out of range")
	ErrInvertedSpan = errors.New("span end before start")
	ErrSplitsPair   = errors.New("offset splits a surrogate pair")
)

// Span is a half-open range [Start, End) of UTF-16 code units.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) IsEmpty() bool { return s.Start == s.End }

// Char is one character located in a unit slice.
type Char struct {
	Start int
	End   int
	Text  string
}

func isHigh(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLow(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// Units returns the UTF-16 encoding of s.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// String decodes UTF-16 units back into a Go string.
func String(units []uint16) string {
	return string(utf16.Decode(units))
}

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Prev returns the character ending at off, or false at the start of units.
func Prev(units []uint16, off int) (Char, bool) {
	if off <= 0 || off > len(units) {
		return Char{}, false
	}
	end := off
	start := end - 1
	if isLow(units[start]) && start-1 >= 0 && isHigh(units[start-1]) {
		start--
	}
	return Char{Start: start, End: end, Text: String(units[start:end])}, true
}

// Next returns the character starting at off, or false at the end of units.
func Next(units []uint16, off int) (Char, bool) {
	if off < 0 || off >= len(units) {
		return Char{}, false
	}
	start := off
	end := start + 1
	if isHigh(units[start]) && end < len(units) && isLow(units[end]) {
		end++
	}
	return Char{Start: start, End: end, Text: String(units[start:end])}, true
}

// IsWordChar reports whether ch is a letter or digit in any style, or '_'.
func IsWordChar(ch string) bool {
	if ch == "_" {
		return true
	}
	return codec.Decode(ch).IsWord()
}

// ExpandToWord grows the caret position into the maximal run of word
// characters around it. It returns false when the caret touches no word.
func ExpandToWord(units []uint16, caret int) (Span, bool) {
	start, end := caret, caret

	for c, ok := Prev(units, start); ok && IsWordChar(c.Text); c, ok = Prev(units, start) {
		start = c.Start
	}
	for c, ok := Next(units, end); ok && IsWordChar(c.Text); c, ok = Next(units, end) {
		end = c.End
	}

	if start == end {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

// SplitsPair reports whether off sits between the halves of a surrogate pair.
func SplitsPair(units []uint16, off int) bool {
	if off <= 0 || off >= len(units) {
		return false
	}
	return isHigh(units[off-1]) && isLow(units[off])
}

// Validate checks that sp is a well-formed span over units.
func Validate(units []uint16, sp Span) error {
	if sp.End < sp.Start {
		return errors.Wrapf(ErrInvertedSpan, "span [%d, %d)", sp.Start, sp.End)
	}
	if sp.Start < 0 || sp.End > len(units) {
		return errors.Wrapf(ErrOutOfRange, "span [%d, %d) over %d units", sp.Start, sp.End, len(units))
	}
	if SplitsPair(units, sp.Start) {
		return errors.Wrapf(ErrSplitsPair, "start %d", sp.Start)
	}
	if SplitsPair(units, sp.End) {
		return errors.Wrapf(ErrSplitsPair, "end %d", sp.End)
	}
	return nil
}

// ByteOffset converts a UTF-16 unit offset into a byte offset within s.
func ByteOffset(s string, unit int) (int, error) {
	if unit < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "offset %d", unit)
	}
	cur := 0
	for i, r := range s {
		if cur == unit {
			return i, nil
		}
		next := cur + utf16.RuneLen(r)
		if unit < next {
			return 0, errors.Wrapf(ErrSplitsPair, "offset %d", unit)
		}
		cur = next
	}
	if cur == unit {
		return len(s), nil
	}
	return 0, errors.Wrapf(ErrOutOfRange, "offset %d over %d units", unit, cur)
}

// UnitOffset converts a byte offset within s into a UTF-16 unit offset.
// Byte offsets inside a multi-byte sequence round down to its start.
func UnitOffset(s string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff > len(s) {
		byteOff = len(s)
	}
	n := 0
	for i := 0; i < byteOff; {
		r, size := utf8.DecodeRuneInString(s[i:])
		if i+size > byteOff {
			break
		}
		n += utf16.RuneLen(r)
		i += size
	}
	return n
}
