// Package frame provides an in-memory column-oriented dataset model.
//
// A Frame is an ordered sequence of named, typed columns. Every cell may be
// missing (NA) regardless of the column's kind; numeric columns keep their
// values as float64, everything else keeps a canonical string form. Frames
// are the input shape for the encode package and can be built directly or
// inferred from generic row maps via FromRows.
package frame

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Kind identifies the declared value kind of a column.
type Kind int

const (
	// Numeric columns hold float64 values and pass through encoding verbatim.
	Numeric Kind = iota
	// String columns hold free-form text.
	String
	// Bool columns hold true/false, kept in string form ("true"/"false").
	Bool
	// Time columns hold timestamps, kept in RFC 3339 string form.
	Time
	// Factor columns hold values from a known level set, kept in string form.
	Factor
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Time:
		return "time"
	case Factor:
		return "factor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsCategorical reports whether columns of this kind are treated as
// categorical by the encoder. Everything that is not Numeric is categorical.
func (k Kind) IsCategorical() bool {
	return k != Numeric
}

// ErrDuplicateColumn is returned when a frame would contain two columns
// with the same name.
var ErrDuplicateColumn = errors.New("frame: duplicate column name")

// Column is a single named column of a Frame.
//
// Numeric columns store their cells in Floats; all other kinds store the
// canonical string form of each cell in Raw. Missing marks NA cells for
// every kind, and a missing cell's entry in Floats/Raw is ignored.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Raw     []string
	Missing []bool
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Raw)
}

// IsMissing reports whether the cell at row i is NA.
func (c *Column) IsMissing(i int) bool {
	return i < len(c.Missing) && c.Missing[i]
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Floats != nil {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Raw != nil {
		out.Raw = append([]string(nil), c.Raw...)
	}
	if c.Missing != nil {
		out.Missing = append([]bool(nil), c.Missing...)
	}
	return out
}

// NumericColumn builds a numeric column. NaN values are recorded as missing.
func NumericColumn(name string, values []float64) *Column {
	c := &Column{
		Name:    name,
		Kind:    Numeric,
		Floats:  append([]float64(nil), values...),
		Missing: make([]bool, len(values)),
	}
	for i, v := range values {
		if math.IsNaN(v) {
			c.Missing[i] = true
		}
	}
	return c
}

// StringColumn builds a string column. A nil entry in missing means no cell
// is NA.
func StringColumn(name string, values []string, missing []bool) *Column {
	c := &Column{
		Name:    name,
		Kind:    String,
		Raw:     append([]string(nil), values...),
		Missing: make([]bool, len(values)),
	}
	copy(c.Missing, missing)
	return c
}

// MissingColumn builds an all-NA column of n rows with the given kind.
func MissingColumn(name string, kind Kind, n int) *Column {
	c := &Column{Name: name, Kind: kind, Missing: make([]bool, n)}
	for i := range c.Missing {
		c.Missing[i] = true
	}
	if kind == Numeric {
		c.Floats = make([]float64, n)
		for i := range c.Floats {
			c.Floats[i] = math.NaN()
		}
	} else {
		c.Raw = make([]string, n)
	}
	return c
}

// Frame is an ordered collection of equally-sized columns with unique names.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// New creates a frame from the given columns.
//
// Returns an error if two columns share a name or if the columns disagree
// on row count.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	rows := -1
	for _, c := range cols {
		if _, exists := f.index[c.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if rows >= 0 && c.Len() != rows {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d", c.Name, c.Len(), rows)
		}
		rows = c.Len()
		f.index[c.Name] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// Len returns the number of rows. An empty frame has zero rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in frame order. The slice is shared; callers
// must not mutate it.
func (f *Frame) Columns() []*Column {
	return f.cols
}

// Column returns the named column, or nil if it does not exist.
func (f *Frame) Column(name string) *Column {
	if i, ok := f.index[name]; ok {
		return f.cols[i]
	}
	return nil
}

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Append adds a column to the frame.
//
// Returns an error on a duplicate name or a row-count mismatch against the
// existing columns.
func (f *Frame) Append(c *Column) error {
	if _, exists := f.index[c.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
	}
	if len(f.cols) > 0 && c.Len() != f.Len() {
		return fmt.Errorf("frame: column %q has %d rows, want %d", c.Name, c.Len(), f.Len())
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// Drop removes the named column if present. Removal is a no-op for unknown
// names, matching the reconciler's "extra columns are discarded" policy.
func (f *Frame) Drop(name string) {
	i, ok := f.index[name]
	if !ok {
		return
	}
	f.cols = append(f.cols[:i], f.cols[i+1:]...)
	delete(f.index, name)
	for j := i; j < len(f.cols); j++ {
		f.index[f.cols[j].Name] = j
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{index: make(map[string]int, len(f.cols))}
	for _, c := range f.cols {
		out.index[c.Name] = len(out.cols)
		out.cols = append(out.cols, c.Clone())
	}
	return out
}

// FromRows infers a frame from generic row maps, the shape produced by the
// reader package.
//
// Column names are the union of all row keys, ordered alphabetically so the
// result does not depend on map iteration order. A key absent from a row,
// or present with a nil value, is a missing cell. The column kind is decided
// by the first non-nil value observed: Go numeric types map to Numeric,
// bool to Bool, time.Time to Time, everything else to String. Later values
// of a different type are coerced to the column's string form; a value that
// cannot be represented in a numeric column becomes missing there.
func FromRows(rows []map[string]interface{}) (*Frame, error) {
	keySet := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			keySet[k] = true
		}
	}
	names := make([]string, 0, len(keySet))
	for k := range keySet {
		names = append(names, k)
	}
	sort.Strings(names)

	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		cols = append(cols, inferColumn(name, rows))
	}
	return New(cols...)
}

// inferColumn builds one column from the rows for a single key.
func inferColumn(name string, rows []map[string]interface{}) *Column {
	kind := String
	for _, row := range rows {
		v, ok := row[name]
		if !ok || v == nil {
			continue
		}
		kind = kindOf(v)
		break
	}

	c := &Column{Name: name, Kind: kind, Missing: make([]bool, len(rows))}
	if kind == Numeric {
		c.Floats = make([]float64, len(rows))
	} else {
		c.Raw = make([]string, len(rows))
	}

	for i, row := range rows {
		v, ok := row[name]
		if !ok || v == nil {
			c.Missing[i] = true
			if kind == Numeric {
				c.Floats[i] = math.NaN()
			}
			continue
		}
		if kind == Numeric {
			fv, ok := toFloat(v)
			if !ok {
				c.Missing[i] = true
				c.Floats[i] = math.NaN()
				continue
			}
			c.Floats[i] = fv
		} else {
			c.Raw[i] = rawString(v)
		}
	}
	return c
}

// kindOf maps a Go value to a column kind.
func kindOf(v interface{}) Kind {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return Numeric
	case bool:
		return Bool
	case time.Time:
		return Time
	default:
		return String
	}
}

// toFloat converts supported numeric Go types to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// rawString renders a value in the canonical string form used for
// categorical matching.
func rawString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
