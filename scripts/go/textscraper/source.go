package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/charlieparkes/textscraper/scripts/go/textscraper/position"
)

// readCloser closes every layer stacked on the input, innermost last.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// open returns the dump at path. A gs:// url is read from google storage,
// anything else from disk. A .zst or .gz suffix is decoded on the fly.
// Failures come back as *position.FileAccessError.
func open(ctx context.Context, path string) (io.ReadCloser, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var rc *readCloser
	if bucket, object, ok := parseGSPath(path); ok {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, &position.FileAccessError{Path: path, Err: err}
		}
		r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
		if err != nil {
			client.Close()
			return nil, &position.FileAccessError{Path: path, Err: err}
		}
		rc = &readCloser{Reader: r, closers: []func() error{client.Close, r.Close}}
		log.Info().Str("bucket", bucket).Str("object", object).Msg("reading from google storage")
	} else {
		if dir, err := isDir(path); err != nil {
			return nil, &position.FileAccessError{Path: path, Err: err}
		} else if dir {
			return nil, &position.FileAccessError{Path: path, Err: errors.New("is a directory")}
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, &position.FileAccessError{Path: path, Err: err}
		}
		rc = &readCloser{Reader: f, closers: []func() error{f.Close}}
		log.Info().Str("path", path).Msg("reading from disk")
	}

	if err := decode(rc, path); err != nil {
		rc.Close()
		return nil, &position.FileAccessError{Path: path, Err: err}
	}
	return rc, nil
}

func decode(rc *readCloser, path string) error {
	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(rc.Reader)
		if err != nil {
			return fmt.Errorf("zstd: %w", err)
		}
		rc.Reader = dec
		rc.closers = append(rc.closers, func() error { dec.Close(); return nil })
		log.Debug().Str("path", path).Msg("decoding zstd")
	case strings.HasSuffix(path, ".gz"):
		dec, err := gzip.NewReader(rc.Reader)
		if err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		rc.Reader = dec
		rc.closers = append(rc.closers, dec.Close)
		log.Debug().Str("path", path).Msg("decoding gzip")
	}
	return nil
}

// parseGSPath splits gs://bucket/object. ok is false for anything else,
// including a gs url without an object.
func parseGSPath(path string) (bucket, object string, ok bool) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "gs" {
		return "", "", false
	}
	object = strings.TrimLeft(u.Path, "/")
	if u.Host == "" || object == "" {
		return "", "", false
	}
	return u.Host, object, true
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), err
}
