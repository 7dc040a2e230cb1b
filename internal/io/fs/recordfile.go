// Package fs provides access to captured record files for batch decoding.
// Challenge captures are often stored compressed next to the crawler's
// output, so .zst and .gz files are decompressed transparently.
package fs

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"
)

// recordFile stacks a decompressor on top of a file descriptor and closes
// both, decompressor first.
type recordFile struct {
	io.Reader
	closers []io.Closer
}

func (f *recordFile) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open opens a captured record file for reading. Files ending in .zst or .gz
// are decompressed on the fly; anything else is read as-is.
func Open(path string) (io.ReadCloser, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		zr := zstd.NewReader(fd)
		return &recordFile{Reader: zr, closers: []io.Closer{zr, fd}}, nil
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fd)
		if err != nil {
			fd.Close()
			return nil, err
		}
		return &recordFile{Reader: gr, closers: []io.Closer{gr, fd}}, nil
	}
	return fd, nil
}
