package cli

import (
	"fmt"
	"io"
)

// IO is where a command talks to the user.
//
// Listings, prompts and confirmations go to stdout so they can be piped.
// Errors and notes go to stderr. Notes are informational and never change
// the exit code.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO returns an IO writing to out and errOut.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes a line to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Notef writes a "note:" line to stderr.
func (o *IO) Notef(format string, a ...any) {
	_, _ = fmt.Fprintf(o.errOut, "note: "+format+"\n", a...)
}
