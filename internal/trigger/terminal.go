package trigger

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// RawInput switches f to raw mode when it is a terminal, so key presses arrive without Enter.
// The returned restore func is always safe to call.
func RawInput(f *os.File) (restore func(), raw bool, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, fmt.Errorf("enabling raw terminal mode: %w", err)
	}

	return func() { _ = term.Restore(fd, state) }, true, nil
}

type crlfWriter struct {
	w io.Writer
}

// NewCRLFWriter wraps w so newlines also return the carriage. A raw terminal does not.
func NewCRLFWriter(w io.Writer) io.Writer {
	return crlfWriter{w: w}
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}

	return len(p), nil
}
