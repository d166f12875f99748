package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of text.
//
// Mathematical alphanumerics are single-cell; runewidth reports them as such
// but zero-width answers fall back to uniseg.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 && text != "" {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		return 0
	}
	return w
}

// Truncate cuts text to at most width cells, appending tail when it cuts.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw >= width {
		tail, tw = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := Width(c)
		if used+cw > width-tw {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}
