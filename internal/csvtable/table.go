// Package csvtable parses CSV text into a header and data rows and renders
// it as an aligned plain-text table.
package csvtable

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
)

const (
	cellSeparator      = " | "
	underlineSeparator = "-+-"
)

// Table is a CSV header plus its data rows in input order.
// It is built by Parse and not modified afterwards.
type Table struct {
	headers []string
	rows    [][]string
}

// Parse reads the whole CSV document in input. The first line is the header.
// Every field is trimmed of surrounding whitespace and rows may have any
// number of fields.
func Parse(input string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, emptyHeaderError(0)
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}
	// encoding/csv skips blank lines, so a header that does not start on the
	// first line means the first line was blank.
	if line, _ := r.FieldPos(0); line != 1 {
		return nil, emptyHeaderError(1)
	}
	trimAll(headers)
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		return nil, emptyHeaderError(1)
	}

	t := &Table{headers: headers}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		trimAll(record)
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func emptyHeaderError(line int) error {
	return &clierrors.ParseError{Message: "empty CSV headers", Line: line}
}

func wrapCSVError(err error) error {
	pe := &clierrors.ParseError{Message: "malformed CSV", Err: err}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		pe.Line = csvErr.Line
		pe.Column = csvErr.Column
		pe.Err = csvErr.Err
	}
	return pe
}

func trimAll(fields []string) {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
}

// Headers returns a copy of the header row.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// ColumnWidths returns, for each header column, the largest byte length of
// the header field and every data field at that index.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, field := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], len(field))
		}
	}
	return widths
}

// Format renders the table: the header, a dashed underline, then one line per
// data row, each terminated by a newline. Fields beyond the header width are
// rendered as empty cells after a separator, and short rows end after their
// last field.
func (t *Table) Format() string {
	widths := t.ColumnWidths()

	var b strings.Builder
	writeRow(&b, t.headers, widths)

	for i, w := range widths {
		if i > 0 {
			b.WriteString(underlineSeparator)
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteByte('\n')

	for _, row := range t.rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Format()
}

func writeRow(b *strings.Builder, fields []string, widths []int) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(cellSeparator)
		}
		// Fields past the header get a separator but no text.
		if i >= len(widths) {
			continue
		}
		b.WriteString(field)
		b.WriteString(strings.Repeat(" ", widths[i]-len(field)))
	}
	b.WriteByte('\n')
}
