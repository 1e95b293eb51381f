// Package position reads the SpineBase coordinate dumps written by the Kinect
// position mapper and renders them back as labelled lines.
package position

import "strings"

// Record is one line of a coordinate dump. Values are kept as the raw token
// text so that printing is an exact passthrough of the input.
type Record struct {
	// ID is empty for records loaded from a dump.
	ID      string
	X, Y, Z string
}

func NewRecord(x, y, z string) Record {
	return Record{X: x, Y: y, Z: z}
}

func (r Record) String() string {
	return "X:" + r.X + " Y:" + r.Y + " Z:" + r.Z
}

// Parse splits line on single spaces and takes the first three tokens as
// x, y and z. Extra tokens are ignored. One trailing line terminator is
// stripped first; the mapper writes CRLF when it runs on Windows.
func Parse(line string) (Record, error) {
	line = trimEOL(line)
	tokens := strings.Split(line, " ")
	if len(tokens) < 3 {
		return Record{}, &MalformedLineError{Text: line, Tokens: len(tokens)}
	}
	return NewRecord(tokens[0], tokens[1], tokens[2]), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
