package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/onehotsql/encode"
)

// TableFormatter outputs a matrix as an aligned terminal table. Intended
// for previewing small matrices; large ones are better served by CSV.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the matrix as an aligned table. Missing cells render as
// "NA".
func (t *TableFormatter) Format(m *encode.Matrix) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(m.Names)
	table.SetAutoFormatHeaders(false)

	record := make([]string, len(m.Names))
	for r := 0; r < m.Rows(); r++ {
		for j, col := range m.Columns {
			record[j] = formatCell(col[r], "NA")
		}
		table.Append(append([]string(nil), record...))
	}

	table.Render()
	return nil
}
