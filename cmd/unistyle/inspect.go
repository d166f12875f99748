package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"

	"github.com/iw2rmb/unistyle/boundary"
	"github.com/iw2rmb/unistyle/codec"
)

type charInfo struct {
	Offset int
	Char   string
	Kind   string
	Index  int
	Bold   bool
	Italic bool
}

// inspectText decodes every code point of text. Offsets are UTF-16 units.
func inspectText(text string) []charInfo {
	var out []charInfo
	off := 0
	for len(text) > 0 {
		_, size := utf8.DecodeRuneInString(text)
		ch := text[:size]
		n := codec.Decode(ch)
		out = append(out, charInfo{
			Offset: off,
			Char:   ch,
			Kind:   n.Kind.String(),
			Index:  n.Index,
			Bold:   n.Bold,
			Italic: n.Italic,
		})
		off += boundary.Len(ch)
		text = text[size:]
	}
	return out
}

func writeInspect(w io.Writer, text string, dump bool) error {
	infos := inspectText(text)

	if dump {
		pp.ColoringEnabled = false
		if _, err := pp.Fprintln(w, infos); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "OFFSET\tCHAR\tKIND\tINDEX\tBOLD\tITALIC")
		for _, c := range infos {
			idx := "-"
			if c.Kind != codec.KindOther.String() {
				idx = fmt.Sprint(c.Index)
			}
			fmt.Fprintf(tw, "%d\t%q\t%s\t%s\t%v\t%v\n", c.Offset, c.Char, c.Kind, idx, c.Bold, c.Italic)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	styled := 0
	for _, c := range infos {
		if c.Bold || c.Italic {
			styled++
		}
	}
	_, err := fmt.Fprintf(w, "%s characters, %s styled, %s UTF-16 units, %s\n",
		humanize.Comma(int64(len(infos))),
		humanize.Comma(int64(styled)),
		humanize.Comma(int64(boundary.Len(text))),
		humanize.Bytes(uint64(len(text))),
	)
	return err
}
