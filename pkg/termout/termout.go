// Package termout renders short styled messages to the error stream.
// Every write is fail-safe: a closed or broken stream must never mask the
// real exit path, so write errors and writer panics are swallowed.
package termout

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	noticeStyle = color.New(color.FgYellow)
)

// Printer writes styled messages to a single stream.
type Printer struct {
	w io.Writer
}

// New creates a printer for w. A nil writer yields a printer that
// discards everything.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Error renders msg in the error style.
func (p *Printer) Error(msg string) {
	p.write(func() {
		errorStyle.Fprintln(p.w, msg)
	})
}

// Errorf renders a formatted message in the error style.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.Error(fmt.Sprintf(format, args...))
}

// Notice renders msg in the notice style.
func (p *Printer) Notice(msg string) {
	p.write(func() {
		noticeStyle.Fprintln(p.w, msg)
	})
}

// write runs fn and swallows anything a broken stream throws at us.
func (p *Printer) write(fn func()) {
	if p == nil || p.w == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn()
}
