// Package line provides record-oriented reading over arbitrary byte streams.
// A record is one line of text. Both LF and CRLF terminators delimit records,
// so the same capture produces the same record sequence regardless of which
// line ending convention produced it.
package line

import (
	"bytes"
	"context"
	"io"

	"github.com/Cycloctane/xzspider2/internal/io/pool"
)

// DefaultChunkSize is the read buffer size used by NewReader.
const DefaultChunkSize = 64 * 1024

// Reader reads data in chunks and splits it into records. A record ends at
// '\n'; a trailing '\r' belongs to the terminator and is stripped, so a CRLF
// sequence never splits a record or produces a phantom empty one. A final
// record before EOF does not need a terminator.
type Reader struct {
	reader io.Reader
	buffer []byte
}

// NewReader creates a record reader with the default chunk size.
func NewReader(reader io.Reader) *Reader {
	return NewReaderSize(reader, DefaultChunkSize)
}

// NewReaderSize creates a record reader with the specified chunk size.
func NewReaderSize(reader io.Reader, chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Reader{
		reader: reader,
		buffer: make([]byte, chunkSize),
	}
}

// ReadRecords reads until the stream closes, calling emit once per record in
// input order. It returns nil on EOF, ctx.Err() when the context is
// cancelled, any other stream error as-is, and stops early when emit returns
// an error.
func (r *Reader) ReadRecords(ctx context.Context, emit func(record string) error) error {
	message := pool.BytesBuffer.Get().(*bytes.Buffer)
	defer pool.RecycleBytesBuffer(message)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.reader.Read(r.buffer)
		for _, b := range r.buffer[:n] {
			if b != '\n' {
				message.WriteByte(b)
				continue
			}
			if err := emit(chomp(message)); err != nil {
				return err
			}
			message.Reset()
		}
		if err != nil {
			if err == io.EOF {
				if message.Len() > 0 {
					// Unterminated final record.
					return emit(chomp(message))
				}
				return nil
			}
			return err
		}
	}
}

// chomp returns the assembled record without a trailing '\r' left over from a
// CRLF terminator. A '\r' anywhere else is record content.
func chomp(message *bytes.Buffer) string {
	b := message.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\r' {
		b = b[:len(b)-1]
	}
	return string(b)
}
