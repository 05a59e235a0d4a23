package output

import (
	"fmt"
	"io"
)

// ansiString is text this package has already sanitized or styled; Printer
// writes it untouched.
type ansiString string

// Printer writes report lines to an io.Writer. Every string-like value that
// did not come from this package goes through SanitizeTerminal first.
type Printer struct {
	w     io.Writer
	style Style
}

func NewPrinter(w io.Writer, style Style) Printer {
	return Printer{w: w, style: style}
}

func (p Printer) Printf(format string, args ...any) {
	for i, a := range args {
		args[i] = sanitizeArg(a)
	}
	fmt.Fprintf(p.w, format, args...)
}

// Title writes a section title such as "Semaphores:".
func (p Printer) Title(text string) {
	fmt.Fprintln(p.w, p.style.title(text))
}

// Header writes the column titles of cols.
func (p Printer) Header(cols []Column) {
	fmt.Fprintln(p.w, p.style.header(Line(cols, Titles(cols))))
}

// Row writes cells left-justified under cols.
func (p Printer) Row(cols []Column, cells []string) {
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = SanitizeTerminal(c)
	}
	fmt.Fprintln(p.w, Line(cols, clean))
}

func sanitizeArg(a any) any {
	switch v := a.(type) {
	case ansiString:
		return string(v)
	case string:
		return SanitizeTerminal(v)
	case []byte:
		return SanitizeTerminal(string(v))
	case error:
		return SanitizeTerminal(v.Error())
	case fmt.Stringer:
		return SanitizeTerminal(v.String())
	}
	return a
}
