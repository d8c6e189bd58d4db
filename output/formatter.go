// Package output provides formatters for rendering an encoded matrix.
//
// Supported formats:
//   - CSV: header row plus one record per matrix row (missing cells empty)
//   - JSON Lines: one JSON object per row (missing cells null)
//   - Table: aligned terminal table for previewing small matrices
//
// Example usage:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(res.Matrix); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"
	"strconv"

	"github.com/vegasq/onehotsql/encode"
)

// Formatter defines the interface for matrix formatters.
type Formatter interface {
	// Format writes the matrix in the formatter's specific format
	Format(m *encode.Matrix) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// formatCell renders one matrix cell; NaN (missing) renders as missing.
// Indicator cells come out as "0"/"1", numeric passthrough keeps the
// shortest round-trip float form.
func formatCell(v float64, missing string) string {
	if v != v { // NaN
		return missing
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
