package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/iw2rmb/unistyle/boundary"
	"github.com/iw2rmb/unistyle/codec"
	"github.com/iw2rmb/unistyle/list"
	"github.com/iw2rmb/unistyle/style"
)

// readInput joins args with spaces, or reads all of in when there are none.
// A single trailing newline from in is dropped.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "could not read input")
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// styleText toggles axis on every character, or sets exactly that one style
// when force is set.
func styleText(text string, axis style.Axis, force bool) string {
	if !force {
		return style.Toggle(text, axis)
	}
	return codec.Restyle(text, axis == style.Bold, axis == style.Italic)
}

// listText toggles kind markers on every line of text.
func listText(text string, kind list.Kind) (string, error) {
	all := boundary.Span{Start: 0, End: boundary.Len(text)}
	res, err := list.Toggle(text, all, kind, list.NewSession())
	if err != nil {
		return "", err
	}
	return res.Text, nil
}
