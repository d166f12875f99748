// Package buffer implements the editable document behind the unistyle
// terminal editor.
//
// Coordinates are 0-based (Row, Col) in code points, so a styled letter from
// the mathematical-alphanumeric block is one column. Ranges are half-open
// selections in document coordinates: [Start, End).
//
// The text-transformation engine addresses text by UTF-16 code unit offsets;
// convert.go bridges between the two.
package buffer
