package buffer

import (
	"unicode/utf16"

	"github.com/iw2rmb/unistyle/boundary"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func (b *Buffer) docUnitLen() int {
	total := 0
	for row, line := range b.lines {
		for _, r := range line {
			total += runeUnits(r)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

// UnitOffsetFromPos converts pos into a UTF-16 code unit offset from the
// start of the document. With OffsetError, a pos outside the document fails.
func (b *Buffer) UnitOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}

	off := 0
	for row := 0; row < clamped.Row; row++ {
		for _, r := range b.lines[row] {
			off += runeUnits(r)
		}
		off++
	}
	for _, r := range b.lines[clamped.Row][:clamped.Col] {
		off += runeUnits(r)
	}
	return off, true
}

// PosFromUnitOffset converts a UTF-16 code unit offset into a document
// position. An offset between the halves of a surrogate pair fails with
// OffsetError and rounds down to the pair start with OffsetClamp.
func (b *Buffer) PosFromUnitOffset(off int, mode OffsetClampMode) (Pos, bool) {
	total := b.docUnitLen()
	switch mode {
	case OffsetError:
		if off < 0 || off > total {
			return Pos{}, false
		}
	case OffsetClamp:
		off = clampInt(off, 0, total)
	default:
		return Pos{}, false
	}

	cur := 0
	for row, line := range b.lines {
		for col, r := range line {
			if off == cur {
				return Pos{Row: row, Col: col}, true
			}
			next := cur + runeUnits(r)
			if off < next {
				if mode == OffsetError {
					return Pos{}, false
				}
				return Pos{Row: row, Col: col}, true
			}
			cur = next
		}
		if off == cur {
			return Pos{Row: row, Col: len(line)}, true
		}
		cur++
	}
	return b.endPos(), true
}

// SelectionSpan returns the selection as a UTF-16 span, or an empty span at
// the cursor when nothing is selected.
func (b *Buffer) SelectionSpan() boundary.Span {
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	start, _ := b.UnitOffsetFromPos(r.Start, OffsetClamp)
	end, _ := b.UnitOffsetFromPos(r.End, OffsetClamp)
	return boundary.Span{Start: start, End: end}
}

// Reset replaces the document with text and selects sp, given in UTF-16 code
// units of the new text. It reports false, leaving the buffer unchanged, when
// sp does not fit text.
func (b *Buffer) Reset(text string, sp boundary.Span) bool {
	if boundary.Validate(boundary.Units(text), sp) != nil {
		return false
	}

	next := &Buffer{lines: splitLines(text)}
	start, ok := next.PosFromUnitOffset(sp.Start, OffsetError)
	if !ok {
		return false
	}
	end, ok := next.PosFromUnitOffset(sp.End, OffsetError)
	if !ok {
		return false
	}

	if text != b.Text() {
		b.lines = next.lines
		b.textVersion++
	}
	b.sel = selectionState{}
	if start != end {
		b.sel = selectionState{active: true, anchor: start, end: end}
	}
	b.cursor = end
	b.version++
	return true
}
