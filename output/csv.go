package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/onehotsql/encode"
)

// CSVFormatter outputs a matrix as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the matrix as CSV. Missing cells are written as empty
// fields, the usual CSV convention for NA.
func (c *CSVFormatter) Format(m *encode.Matrix) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(m.Names); err != nil {
		return err
	}

	record := make([]string, len(m.Names))
	for r := 0; r < m.Rows(); r++ {
		for j, col := range m.Columns {
			record[j] = formatCell(col[r], "")
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
