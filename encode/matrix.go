package encode

import (
	"fmt"
	"sort"
)

// Matrix is the numeric output of an encoding: named float64 columns of
// equal length. Missing cells are NaN. Columns are sorted alphabetically by
// name, so the layout is the same regardless of input column order.
type Matrix struct {
	Names   []string
	Columns [][]float64
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	if len(m.Columns) == 0 {
		return 0
	}
	return len(m.Columns[0])
}

// Column returns the named column's values, or false if it does not exist.
func (m *Matrix) Column(name string) ([]float64, bool) {
	i := sort.SearchStrings(m.Names, name)
	if i < len(m.Names) && m.Names[i] == name {
		return m.Columns[i], true
	}
	return nil, false
}

// Row returns one row as a slice in column order.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, len(m.Columns))
	for j, col := range m.Columns {
		out[j] = col[i]
	}
	return out
}

// assembleMatrix merges named columns into a matrix sorted alphabetically
// by final name. Two columns arriving under the same final name — distinct
// raw levels normalizing to the same string — would silently overwrite each
// other, so that is reported as ErrNameCollision instead.
func assembleMatrix(names []string, columns [][]float64) (*Matrix, error) {
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })

	m := &Matrix{
		Names:   make([]string, len(names)),
		Columns: make([][]float64, len(columns)),
	}
	for i, idx := range order {
		if i > 0 && names[idx] == m.Names[i-1] {
			return nil, fmt.Errorf("%w: %q", ErrNameCollision, names[idx])
		}
		m.Names[i] = names[idx]
		m.Columns[i] = columns[idx]
	}
	return m, nil
}
