// Package printer writes coloured, human-facing command output.
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// Printer writes to an output and an error stream.
type Printer struct {
	Out    io.Writer
	ErrOut io.Writer
}

// New returns a Printer. Nil writers fall back to stdout and stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, ErrOut: errOut}
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprintln(p.Out, msg)
}

// Info prints a plain line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, format+"\n", a...)
}

// Title prints a bold heading.
func (p *Printer) Title(format string, a ...any) {
	bold.Fprintln(p.Out, fmt.Sprintf(format, a...))
}

// Warning prints a message in yellow with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprintln(p.ErrOut, msg)
}

// Step prints a step of a multi-step operation.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintln(p.Out, "→ "+fmt.Sprintf(format, a...))
}

// Error prints title, explanation and suggestions to the error stream and
// returns an error carrying only the title, for cobra to exit with.
func (p *Printer) Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(p.ErrOut, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.ErrOut, "\n%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.ErrOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.ErrOut, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(p.ErrOut, "  %d. %s\n", i+1, s)
		}
	}
	return reportedError(title)
}

// reportedError is an error whose details were already printed.
type reportedError string

func (e reportedError) Error() string { return string(e) }

// Reported reports whether err came from Error and was already printed.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Table renders rows under header. A nil header renders rows only.
func (p *Printer) Table(header []string, rows [][]string) error {
	t := tablewriter.NewWriter(p.Out)
	if len(header) > 0 {
		hdr := make([]any, len(header))
		for i, h := range header {
			hdr[i] = h
		}
		t.Header(hdr...)
	}
	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return err
		}
	}
	return t.Render()
}
