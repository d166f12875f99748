// Package style toggles bold and italic styling on text by re-encoding each
// letter and digit into its Unicode mathematical-alphanumeric variant.
package style

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/iw2rmb/unistyle/boundary"
	"github.com/iw2rmb/unistyle/codec"
)

// Axis is one independent style toggle.
type Axis uint8

const (
	Bold Axis = iota
	Italic
)

var ErrUnknownAxis = errors.New("unknown style axis")

func (a Axis) String() string {
	switch a {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "unknown"
	}
}

// ParseAxis parses "bold" or "italic".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bold", "b":
		return Bold, nil
	case "italic", "i":
		return Italic, nil
	default:
		return 0, errors.Wrapf(ErrUnknownAxis, "%q", s)
	}
}

// Toggle flips axis on every letter and digit of text, keeping the other axis.
// Applying Toggle twice with the same axis returns the original text.
func Toggle(text string, axis Axis) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		ch := text[:size]
		text = text[size:]

		n := codec.DecodeRune(r)
		if n.Kind == codec.KindOther || (r == utf8.RuneError && size == 1) {
			sb.WriteString(ch)
			continue
		}

		bold, italic := n.Bold, n.Italic
		switch axis {
		case Bold:
			bold = !bold
		case Italic:
			italic = !italic
		}
		sb.WriteString(codec.Encode(n, bold, italic))
	}
	return sb.String()
}

// Result is the outcome of Apply.
type Result struct {
	Text      string
	Selection boundary.Span
	// Changed is false when the caret touched no word.
	Changed bool
}

// Apply toggles axis on the selected span of buf, or on the word around the
// caret when the selection is empty. Offsets are UTF-16 code units.
//
// Text outside the transformed span is copied verbatim. The returned selection
// covers the transformed text, whose length may differ from the input span.
func Apply(buf string, sel boundary.Span, axis Axis) (Result, error) {
	units := boundary.Units(buf)
	if err := boundary.Validate(units, sel); err != nil {
		return Result{}, err
	}

	span := sel
	if sel.IsEmpty() {
		word, ok := boundary.ExpandToWord(units, sel.Start)
		if !ok {
			return Result{Text: buf, Selection: sel}, nil
		}
		span = word
	}

	start, err := boundary.ByteOffset(buf, span.Start)
	if err != nil {
		return Result{}, err
	}
	end, err := boundary.ByteOffset(buf, span.End)
	if err != nil {
		return Result{}, err
	}

	replaced := Toggle(buf[start:end], axis)
	return Result{
		Text:      buf[:start] + replaced + buf[end:],
		Selection: boundary.Span{Start: span.Start, End: span.Start + boundary.Len(replaced)},
		Changed:   true,
	}, nil
}
