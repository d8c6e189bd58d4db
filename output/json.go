package output

import (
	"encoding/json"
	"io"
	"math"

	"github.com/vegasq/onehotsql/encode"
)

// JSONFormatter outputs a matrix as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the matrix as JSON Lines, one object per row. Missing
// cells become JSON null — NaN has no JSON representation.
func (j *JSONFormatter) Format(m *encode.Matrix) error {
	encoder := json.NewEncoder(j.writer)
	for r := 0; r < m.Rows(); r++ {
		row := make(map[string]interface{}, len(m.Names))
		for i, name := range m.Names {
			v := m.Columns[i][r]
			if math.IsNaN(v) {
				row[name] = nil
			} else {
				row[name] = v
			}
		}
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
