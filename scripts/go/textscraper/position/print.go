package position

import (
	"bufio"
	"io"
)

// PrintAll writes one "X:<x> Y:<y> Z:<z>" line per record, in order.
func PrintAll(out io.Writer, records []Record) error {
	w := bufio.NewWriter(out)
	for _, r := range records {
		if _, err := w.WriteString(r.String()); err != nil {
			return &OutputError{Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &OutputError{Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &OutputError{Err: err}
	}
	return nil
}
