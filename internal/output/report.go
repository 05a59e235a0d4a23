package output

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pranshuparmar/ipcs/pkg/model"
)

// RenderFacility prints the report section of one facility: a title, a
// header line and one line per record. A facility without records gets a
// single "not in system" sentence instead.
func RenderFacility(w io.Writer, f model.Facility, opts model.Option, records []model.Record, style Style) {
	p := NewPrinter(w, style)

	if len(records) == 0 {
		p.Printf("%s facility not in system.\n", f.Name())
		return
	}

	p.Title(f.Name() + ":")

	cols := Columns(f, opts)
	p.Header(cols)
	for _, r := range records {
		p.Row(cols, Cells(cols, r))
	}
}

// Cells extracts the text of every column in cols from r.
func Cells(cols []Column, r model.Record) []string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.Value(r)
	}
	return cells
}

// RecordLine formats one record under cols.
func RecordLine(cols []Column, r model.Record) string {
	return Line(cols, Cells(cols, r))
}

// Line left-justifies each cell to its column width and joins them with a
// single space. Cells wider than their column are kept whole.
func Line(cols []Column, cells []string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(runewidth.FillRight(cell, c.Width))
	}
	return b.String()
}
