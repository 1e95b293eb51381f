package position

import (
	"bufio"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
)

// maxLineSize bounds a single line; dumps are a few dozen bytes per line.
const maxLineSize = 1024 * 1024

type Option func(*Loader)

// WithLogger sets the logger used for load summaries and skipped lines.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithSkipMalformed drops short lines with a warning instead of failing the
// whole load.
func WithSkipMalformed(skip bool) Option {
	return func(l *Loader) { l.skipMalformed = skip }
}

type Loader struct {
	log           *zap.Logger
	skipMalformed bool
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: zap.NewNop()}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads every record from the file at path, failing on the first
// malformed line.
func Load(path string) ([]Record, error) {
	return NewLoader().LoadFile(path)
}

func (l *Loader) LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	} else if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: errors.New("is a directory")}
	}

	return l.Read(path, f)
}

// Read parses r line by line. name identifies the input in errors and logs.
// On error no records are returned.
func (l *Loader) Read(name string, r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	n := 0
	skipped := 0
	for scanner.Scan() {
		n++
		rec, err := Parse(scanner.Text())
		if err != nil {
			var mle *MalformedLineError
			if errors.As(err, &mle) {
				mle.Line = n
			}
			if l.skipMalformed {
				l.log.Warn("skipping malformed line",
					zap.String("path", name),
					zap.Int("line", n),
					zap.Error(err),
				)
				skipped++
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Path: name, Err: err}
	}

	l.log.Debug("loaded positions",
		zap.String("path", name),
		zap.Int("lines", n),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return records, nil
}
