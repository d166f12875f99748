// Package codec maps ASCII letters and digits to and from their Unicode
// mathematical-alphanumeric bold and italic variants.
//
// Every character decodes to a Node. Characters outside the recognized blocks
// decode to KindOther and always encode back to their original text.
package codec

import (
	"strings"
	"unicode/utf8"
)

type Kind uint8

const (
	KindOther Kind = iota
	KindUpper
	KindLower
	KindDigit
)

func (k Kind) String() string {
	switch k {
	case KindUpper:
		return "upper"
	case KindLower:
		return "lower"
	case KindDigit:
		return "digit"
	default:
		return "other"
	}
}

// Node is the decoded identity of one character.
//
// Bold and Italic are meaningful only when Kind != KindOther.
// Raw holds the original character and is used verbatim for KindOther.
type Node struct {
	Kind   Kind
	Index  int
	Bold   bool
	Italic bool
	Raw    string
}

// IsWord reports whether the node is a letter or digit in any style.
func (n Node) IsWord() bool {
	return n.Kind != KindOther
}

// Block starts in the Mathematical Alphanumeric Symbols range.
const (
	boldUpper       = 0x1D400
	boldLower       = 0x1D41A
	italicUpper     = 0x1D434
	italicLower     = 0x1D44E
	boldItalicUpper = 0x1D468
	boldItalicLower = 0x1D482
	boldDigit       = 0x1D7CE

	// italicHole is unassigned; italic small h lives at planckConstant.
	italicHole     = 0x1D455
	planckConstant = 0x210E

	italicSmallH = 7
)

func inBlock(r rune, start, size int) (int, bool) {
	off := int(r) - start
	if off < 0 || off >= size {
		return 0, false
	}
	return off, true
}

// DecodeRune classifies a single code point.
func DecodeRune(r rune) Node {
	switch {
	case r >= 'A' && r <= 'Z':
		return Node{Kind: KindUpper, Index: int(r - 'A')}
	case r >= 'a' && r <= 'z':
		return Node{Kind: KindLower, Index: int(r - 'a')}
	case r >= '0' && r <= '9':
		return Node{Kind: KindDigit, Index: int(r - '0')}
	}

	if i, ok := inBlock(r, boldUpper, 26); ok {
		return Node{Kind: KindUpper, Index: i, Bold: true}
	}
	if i, ok := inBlock(r, boldLower, 26); ok {
		return Node{Kind: KindLower, Index: i, Bold: true}
	}
	if i, ok := inBlock(r, italicUpper, 26); ok {
		return Node{Kind: KindUpper, Index: i, Italic: true}
	}
	if i, ok := inBlock(r, italicLower, 26); ok && r != italicHole {
		return Node{Kind: KindLower, Index: i, Italic: true}
	}
	if r == planckConstant {
		return Node{Kind: KindLower, Index: italicSmallH, Italic: true}
	}
	if i, ok := inBlock(r, boldDigit, 10); ok {
		return Node{Kind: KindDigit, Index: i, Bold: true}
	}
	if i, ok := inBlock(r, boldItalicUpper, 26); ok {
		return Node{Kind: KindUpper, Index: i, Bold: true, Italic: true}
	}
	if i, ok := inBlock(r, boldItalicLower, 26); ok {
		return Node{Kind: KindLower, Index: i, Bold: true, Italic: true}
	}

	return Node{Kind: KindOther, Raw: string(r)}
}

// Decode classifies ch, which is expected to hold exactly one code point.
// Anything else decodes to KindOther with Raw set to ch.
func Decode(ch string) Node {
	r, size := utf8.DecodeRuneInString(ch)
	if size == 0 || size != len(ch) || (r == utf8.RuneError && size == 1) {
		return Node{Kind: KindOther, Raw: ch}
	}
	n := DecodeRune(r)
	if n.Kind != KindOther {
		n.Raw = ch
	}
	return n
}

// Encode renders n with the requested style pair.
//
// Digits only have a bold block: a bold request yields the bold digit and any
// other request yields the plain digit.
func Encode(n Node, bold, italic bool) string {
	switch n.Kind {
	case KindUpper:
		switch {
		case bold && italic:
			return string(rune(boldItalicUpper + n.Index))
		case bold:
			return string(rune(boldUpper + n.Index))
		case italic:
			return string(rune(italicUpper + n.Index))
		default:
			return string(rune('A' + n.Index))
		}
	case KindLower:
		switch {
		case bold && italic:
			return string(rune(boldItalicLower + n.Index))
		case bold:
			return string(rune(boldLower + n.Index))
		case italic:
			if n.Index == italicSmallH {
				return string(rune(planckConstant))
			}
			return string(rune(italicLower + n.Index))
		default:
			return string(rune('a' + n.Index))
		}
	case KindDigit:
		if bold {
			return string(rune(boldDigit + n.Index))
		}
		return string(rune('0' + n.Index))
	default:
		return n.Raw
	}
}

// Restyle sets every letter and digit in s to exactly the given style pair,
// regardless of its current style.
func Restyle(s string, bold, italic bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n := DecodeRune(r)
		if n.Kind == KindOther || (r == utf8.RuneError && size == 1) {
			sb.WriteString(s[:size])
		} else {
			sb.WriteString(Encode(n, bold, italic))
		}
		s = s[size:]
	}
	return sb.String()
}

// Plain strips bold and italic from every recognized character in s.
func Plain(s string) string {
	return Restyle(s, false, false)
}
