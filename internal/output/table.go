package output

import "github.com/salmonumbrella/textx/internal/csvtable"

// Table is the structured form of a parsed CSV document.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// NewTable copies a parsed table into its structured form.
// Rows is never nil so that JSON encodes an empty list rather than null.
func NewTable(t *csvtable.Table) Table {
	rows := t.Rows()
	if rows == nil {
		rows = [][]string{}
	}
	return Table{Headers: t.Headers(), Rows: rows}
}

// Result is the structured form of a plain text operation.
type Result struct {
	Operation string `json:"operation" yaml:"operation"`
	Result    string `json:"result" yaml:"result"`
}
