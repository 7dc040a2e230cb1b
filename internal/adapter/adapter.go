// Package adapter implements the cookiegen run loop: drain a record stream
// into a processor, one trimmed record at a time, and never let a bad record
// take the run down.
package adapter

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/Cycloctane/xzspider2/internal/io/dlog"
	"github.com/Cycloctane/xzspider2/internal/io/fs"
	"github.com/Cycloctane/xzspider2/internal/io/line"
	"github.com/Cycloctane/xzspider2/internal/version"
)

// Adapter feeds records from an input stream to a processor. Processing is
// strictly sequential: a record is fully handled, including any failure,
// before the next one is read.
type Adapter struct {
	input     io.Reader
	processor line.Processor
	files     []string
	sessionID string
}

// New creates an adapter reading from input. When files is non-empty, the
// listed record files are drained instead of the input stream.
func New(input io.Reader, processor line.Processor, files []string) *Adapter {
	return &Adapter{
		input:     input,
		processor: processor,
		files:     files,
		sessionID: uuid.NewString(),
	}
}

// Start drains the configured source and returns the process exit status.
// Stream mode always returns 0: the contract with the parent process is
// "consume whatever arrives, then exit clean", no matter how many records
// failed on the way. File mode returns 1 when a record file cannot be opened.
func (a *Adapter) Start(ctx context.Context) int {
	dlog.Client.Debug(a.sessionID, "Starting", version.String())

	if len(a.files) > 0 {
		return a.drainFiles(ctx)
	}
	a.drain(ctx, a.input)
	return 0
}

// drain reads records until the stream closes. Stream errors end the drain
// early but never fail the run.
func (a *Adapter) drain(ctx context.Context, reader io.Reader) {
	var count uint64
	err := line.NewReader(reader).ReadRecords(ctx, func(record string) error {
		count++
		// Deliberately discarded: a record that cannot be processed is
		// dropped without a trace. The stream carries scraped data and the
		// run must survive arbitrary garbage on it.
		_ = a.processor.ProcessRecord(strings.TrimSpace(record))
		return nil
	})
	if err != nil {
		dlog.Client.Debug(a.sessionID, "Stream ended early", err)
	}
	dlog.Client.Debug(a.sessionID, "Drained records", count)
}

func (a *Adapter) drainFiles(ctx context.Context) int {
	status := 0
	for _, path := range a.files {
		reader, err := fs.Open(path)
		if err != nil {
			dlog.Client.Error(a.sessionID, "Cannot open record file", path, err)
			status = 1
			continue
		}
		dlog.Client.Info(a.sessionID, "Processing record file", path)
		a.drain(ctx, reader)
		reader.Close()
	}
	return status
}
