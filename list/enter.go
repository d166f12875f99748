package list

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/unistyle/boundary"
)

// EnterResult is the outcome of HandleEnter.
//
// When Consumed is false, Text, Caret and Session equal the inputs and the
// caller performs its own newline insertion.
type EnterResult struct {
	Consumed bool
	Text     string
	Caret    int
	Session  Session
}

// HandleEnter decides how an Enter keypress at caret continues a list.
//
// The current line is read from its start up to the caret:
//   - an empty bullet item loses its marker, the session leaves list mode and
//     the caret moves to the start of the following line;
//   - a bullet item with content gets a new bullet line below it;
//   - an empty numbered item loses its marker and the session leaves list mode;
//   - a numbered item with content gets the next number below it;
//   - a line without a marker continues the session's active list, if any.
func HandleEnter(buf string, caret int, sess Session) (EnterResult, error) {
	c, _, err := byteSpan(buf, boundary.Span{Start: caret, End: caret})
	if err != nil {
		return EnterResult{}, err
	}
	ls := lineStart(buf, c)
	line := buf[ls:c]

	if mk, ok := parseMarker(line); ok {
		empty := strings.TrimSpace(line[mk.width:]) == ""
		switch {
		case mk.mode == ModeBulleted && empty:
			text := buf[:ls] + "\n" + buf[c:]
			return EnterResult{
				Consumed: true,
				Text:     text,
				Caret:    boundary.UnitOffset(buf, ls) + 1,
				Session:  NewSession(),
			}, nil
		case mk.mode == ModeBulleted:
			next := sess
			next.Mode = ModeBulleted
			return insertAt(buf, c, "\n"+mk.indent+Bullet+" ", next), nil
		case empty:
			return EnterResult{
				Consumed: true,
				Text:     buf[:ls] + buf[c:],
				Caret:    boundary.UnitOffset(buf, ls),
				Session:  NewSession(),
			}, nil
		default:
			n := successor(mk.number)
			next := Session{Mode: ModeNumbered, NextNumber: successor(n)}
			return insertAt(buf, c, "\n"+mk.indent+strconv.Itoa(n)+". ", next), nil
		}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	switch sess.Mode {
	case ModeBulleted:
		return insertAt(buf, c, "\n"+indent+Bullet+" ", sess), nil
	case ModeNumbered:
		n := min(max(sess.NextNumber, 1), MaxNumber)
		next := Session{Mode: ModeNumbered, NextNumber: successor(n)}
		return insertAt(buf, c, "\n"+indent+strconv.Itoa(n)+". ", next), nil
	}

	return EnterResult{Text: buf, Caret: caret, Session: sess}, nil
}

func insertAt(buf string, at int, ins string, sess Session) EnterResult {
	return EnterResult{
		Consumed: true,
		Text:     buf[:at] + ins + buf[at:],
		Caret:    boundary.UnitOffset(buf, at) + boundary.Len(ins),
		Session:  sess,
	}
}
