package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/unistyle/buffer"
	graphemeutil "github.com/iw2rmb/unistyle/internal/grapheme"
	"github.com/iw2rmb/unistyle/list"
)

const tabWidth = 4

func (m Model) View() string {
	if !m.cfg.ShowStatus || m.height <= 0 {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	lineCount := m.buf.LineCount()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = len(strconv.Itoa(lineCount))
	}

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		sb.WriteString(renderLine(m.cfg.Style, m.buf.Line(row), row, cursor, m.focused, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func renderLine(st Style, line string, row int, cursor buffer.Pos, focused bool, sel buffer.Range, selOK bool) string {
	runes := []rune(line)

	cursorCol := -1
	if focused && row == cursor.Row {
		cursorCol = clampInt(cursor.Col, 0, len(runes))
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(runes))

	var sb strings.Builder
	for col, r := range runes {
		text := string(r)
		if r == '\t' {
			text = strings.Repeat(" ", tabWidth)
		}
		switch {
		case col == cursorCol:
			sb.WriteString(st.Cursor.Render(text))
		case hasSel && col >= selStart && col < selEnd:
			sb.WriteString(st.Selection.Render(text))
		default:
			sb.WriteString(st.Text.Render(text))
		}
	}
	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == len(runes) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, lineLen)
	}
	return start, end, start < end
}

func (m Model) renderStatus() string {
	st := m.cfg.Style
	cur := m.buf.Cursor()

	left := ""
	if m.list.Mode != list.ModeNone {
		left = st.StatusMode.Render(statusModeLabel(m.list)) + " "
	}
	right := fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.Col+1)

	avail := m.width - graphemeutil.Width(right) - graphemeutil.Width(modePrefix(m.list)) - 1
	msg := graphemeutil.Truncate(m.status, avail, "…")
	if m.statusErr {
		left += st.StatusError.Render(msg)
	} else {
		left += st.Status.Render(msg)
	}

	used := graphemeutil.Width(modePrefix(m.list)) + graphemeutil.Width(msg)
	pad := m.width - used - graphemeutil.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + st.Status.Render(right)
}

func statusModeLabel(s list.Session) string {
	if s.Mode == list.ModeNumbered {
		return fmt.Sprintf("[%s %d]", s.Mode, s.NextNumber)
	}
	return fmt.Sprintf("[%s]", s.Mode)
}

// modePrefix returns the unstyled mode prefix so widths can be measured
// without escape sequences.
func modePrefix(s list.Session) string {
	if s.Mode == list.ModeNone {
		return ""
	}
	return statusModeLabel(s) + " "
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
