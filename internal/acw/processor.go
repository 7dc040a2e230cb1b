package acw

import (
	"io"
)

// CookieProcessor handles cookie output. It decodes each record as an arg1
// challenge and writes the resulting cookie value plus a newline to its
// output, one line per successfully decoded record. The parent process reads
// these lines back over a pipe, so nothing else may ever be written here.
type CookieProcessor struct {
	decoder *Decoder
	out     io.Writer
}

// NewCookieProcessor creates a new cookie processor writing to out.
func NewCookieProcessor(decoder *Decoder, out io.Writer) *CookieProcessor {
	return &CookieProcessor{
		decoder: decoder,
		out:     out,
	}
}

// ProcessRecord decodes one challenge record and emits the cookie value.
// A record that fails to decode emits nothing.
func (p *CookieProcessor) ProcessRecord(record string) error {
	cookie, err := p.decoder.Decode(record)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, cookie+"\n")
	return err
}
