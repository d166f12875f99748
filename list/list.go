// Package list toggles bullet and number prefixes on lines of text and decides
// how the Enter key continues a list.
//
// Lines are delimited by '\n' only. All offsets are UTF-16 code units.
package list

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iw2rmb/unistyle/boundary"
)

// Mode is the list state of a line or of an editing session.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeBulleted
	ModeNumbered
)

func (m Mode) String() string {
	switch m {
	case ModeBulleted:
		return "bulleted"
	case ModeNumbered:
		return "numbered"
	default:
		return "none"
	}
}

// Kind is the list type requested by a toggle.
type Kind uint8

const (
	Bullets Kind = iota
	Numbers
)

var ErrUnknownKind = errors.New("unknown list kind")

func (k Kind) String() string {
	switch k {
	case Bullets:
		return "bullets"
	case Numbers:
		return "numbers"
	default:
		return "unknown"
	}
}

// ParseKind parses "bullets" or "numbers".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bullets", "bullet", "ul":
		return Bullets, nil
	case "numbers", "number", "ol":
		return Numbers, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

func (k Kind) mode() Mode {
	if k == Numbers {
		return ModeNumbered
	}
	return ModeBulleted
}

// Session is the list memory carried between calls by the editing session.
// The zero value is not ready for use; start from NewSession.
type Session struct {
	Mode       Mode
	NextNumber int
}

func NewSession() Session {
	return Session{Mode: ModeNone, NextNumber: 1}
}

const Bullet = "•"

// MaxNumber is the largest list number. Longer digit runs still mark a
// numbered line and read as MaxNumber, and counting stops there.
const MaxNumber = 999_999_999

var (
	bulletRE = regexp.MustCompile(`^([ \t]*)• `)
	numberRE = regexp.MustCompile(`^([ \t]*)([0-9]+)\. `)
)

// marker is a recognized list prefix on one line.
type marker struct {
	mode   Mode
	indent string
	number int
	// width is the byte length of indent plus marker.
	width int
}

func parseMarker(line string) (marker, bool) {
	if m := bulletRE.FindStringSubmatch(line); m != nil {
		return marker{mode: ModeBulleted, indent: m[1], width: len(m[0])}, true
	}
	if m := numberRE.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil || n > MaxNumber {
			n = MaxNumber
		}
		return marker{mode: ModeNumbered, indent: m[1], number: n, width: len(m[0])}, true
	}
	return marker{}, false
}

// LineMode classifies a single line by its prefix.
func LineMode(line string) Mode {
	if mk, ok := parseMarker(line); ok {
		return mk.mode
	}
	return ModeNone
}

// stripMarker removes any list marker, keeping leading whitespace.
func stripMarker(line string) (indent, content string) {
	if mk, ok := parseMarker(line); ok {
		return mk.indent, line[mk.width:]
	}
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)], trimmed
}

// successor returns the number after n, clamped to [1, MaxNumber].
func successor(n int) int {
	switch {
	case n < 1:
		return 1
	case n >= MaxNumber:
		return MaxNumber
	}
	return n + 1
}

func lineStart(buf string, off int) int {
	return strings.LastIndexByte(buf[:off], '\n') + 1
}

func lineEnd(buf string, off int) int {
	if i := strings.IndexByte(buf[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(buf)
}

func byteSpan(buf string, sel boundary.Span) (int, int, error) {
	if err := boundary.Validate(boundary.Units(buf), sel); err != nil {
		return 0, 0, err
	}
	start, err := boundary.ByteOffset(buf, sel.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := boundary.ByteOffset(buf, sel.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// LineRange returns the span covering every line touched by sel, from the
// start of its first line to the end of its last line (newline excluded).
func LineRange(buf string, sel boundary.Span) (boundary.Span, error) {
	start, end, err := byteSpan(buf, sel)
	if err != nil {
		return boundary.Span{}, err
	}
	ls, le := lineStart(buf, start), lineEnd(buf, end)
	return boundary.Span{
		Start: boundary.UnitOffset(buf, ls),
		End:   boundary.UnitOffset(buf, le),
	}, nil
}

// Result is the outcome of Toggle.
type Result struct {
	Text      string
	Selection boundary.Span
	Session   Session
}

// Toggle adds or removes kind markers on every line touched by sel.
//
// When any touched line already carries the kind's marker, the marker is
// stripped from all touched lines and the session leaves list mode. Otherwise
// markers are added: bullets go on every line, replacing number markers;
// numbers count from 1 over lines with content, leaving blank lines as-is.
// When no line has content, nothing is numbered and the session resets.
// The returned selection covers the rewritten block of lines.
func Toggle(buf string, sel boundary.Span, kind Kind, sess Session) (Result, error) {
	if kind != Bullets && kind != Numbers {
		return Result{}, errors.Wrapf(ErrUnknownKind, "%d", kind)
	}
	lr, err := LineRange(buf, sel)
	if err != nil {
		return Result{}, err
	}
	ls, le, err := byteSpan(buf, lr)
	if err != nil {
		return Result{}, err
	}
	lines := strings.Split(buf[ls:le], "\n")

	target := kind.mode()
	remove := false
	for _, line := range lines {
		if LineMode(line) == target {
			remove = true
			break
		}
	}

	next := sess
	switch {
	case remove:
		for i, line := range lines {
			if mk, ok := parseMarker(line); ok && mk.mode == target {
				lines[i] = mk.indent + line[mk.width:]
			}
		}
		next = NewSession()
	case kind == Bullets:
		for i, line := range lines {
			indent, content := stripMarker(line)
			lines[i] = indent + Bullet + " " + content
		}
		next.Mode = ModeBulleted
	default:
		n := 1
		for i, line := range lines {
			indent, content := stripMarker(line)
			if strings.TrimSpace(content) == "" {
				continue
			}
			lines[i] = indent + strconv.Itoa(n) + ". " + content
			n = successor(n)
		}
		if n == 1 {
			next = NewSession()
			break
		}
		next = Session{Mode: ModeNumbered, NextNumber: n}
	}

	block := strings.Join(lines, "\n")
	startUnit := boundary.UnitOffset(buf, ls)
	return Result{
		Text:      buf[:ls] + block + buf[le:],
		Selection: boundary.Span{Start: startUnit, End: startUnit + boundary.Len(block)},
		Session:   next,
	}, nil
}
