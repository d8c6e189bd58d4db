package encode

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vegasq/onehotsql/frame"
	"github.com/vegasq/onehotsql/sqlgen"
)

// Result is everything one Encode call produces.
type Result struct {
	// Catalog is the captured metadata — freshly built on a reference call,
	// or the supplied one handed back unchanged.
	Catalog *Catalog

	// Matrix is the numeric output, columns sorted alphabetically.
	Matrix *Matrix

	// SQL is the SELECT statement reproducing the same encoding against a
	// database table.
	SQL string

	// MissingColumns lists catalog columns the input frame lacked; they
	// were added as all-missing before encoding.
	MissingColumns []string

	// Unseen maps categorical columns to the sorted distinct values that
	// were not in the catalog's level list. Those rows encoded as all-zero
	// indicators.
	Unseen map[string][]string

	// Notes carries non-fatal informational messages, such as default
	// identifiers being used when a SQL sink was requested.
	Notes []string
}

// Encode one-hot encodes a frame and synthesizes the matching SQL.
//
// Without WithCatalog this is a reference ("training") call: the frame's
// columns are classified, level lists are captured, and the new catalog is
// returned for reuse. With WithCatalog the frame is first reconciled
// against the catalog's column set and then encoded strictly under its
// level lists, so the output structure is identical to the reference
// encoding no matter what the new data contains.
//
// The matrix and the SQL are derived from the same catalog, level order,
// and naming policy, so they cannot drift apart. When a SQL sink was
// supplied and writing to it fails, the returned Result is still fully
// populated alongside the error.
func Encode(f *frame.Frame, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if f == nil || len(f.Columns()) == 0 {
		return nil, ErrEmptyFrame
	}

	res := &Result{}
	work := f
	cat := o.catalog
	if cat != nil {
		if err := cat.Validate(); err != nil {
			return nil, err
		}
		work, res.MissingColumns = Reconcile(f, cat)
	} else {
		var err error
		if cat, err = BuildCatalog(f); err != nil {
			return nil, err
		}
	}
	res.Catalog = cat

	// Numeric passthrough first, then indicators, both in catalog order.
	// The assembler re-sorts everything by name afterwards.
	var names []string
	var columns [][]float64
	for _, name := range cat.Numeric {
		names = append(names, name)
		columns = append(columns, numericValues(work.Column(name)))
	}
	for _, name := range cat.Categorical {
		set := encodeColumn(work.Column(name), cat.Levels[name], &o)
		names = append(names, set.names...)
		columns = append(columns, set.columns...)
		if len(set.unseen) > 0 {
			if res.Unseen == nil {
				res.Unseen = make(map[string][]string)
			}
			res.Unseen[name] = set.unseen
		}
	}

	m, err := assembleMatrix(names, columns)
	if err != nil {
		return nil, err
	}
	res.Matrix = m
	res.SQL = buildStatement(cat, &o).Render()

	if o.sink != nil {
		if !o.rowKeySet {
			res.Notes = append(res.Notes, fmt.Sprintf("using default unique id %q", o.rowKey))
		}
		if !o.tableSet {
			res.Notes = append(res.Notes, fmt.Sprintf("using default table name %q", o.table))
		}
		if err := sqlgen.Write(o.sink, res.SQL); err != nil {
			// The computed results are not withheld on a sink failure.
			return res, err
		}
	}
	return res, nil
}

// buildStatement lays out the clause records in catalog iteration order.
// Aliases go through the same IndicatorName as the matrix columns.
func buildStatement(cat *Catalog, o *options) *sqlgen.Statement {
	stmt := &sqlgen.Statement{
		RowKey:  o.rowKey,
		Table:   o.table,
		Numeric: append([]string(nil), cat.Numeric...),
	}
	for _, col := range cat.Categorical {
		for _, lvl := range cat.Levels[col] {
			stmt.Cases = append(stmt.Cases, sqlgen.Case{
				Column: col,
				Level:  lvl,
				Alias:  o.indicatorName(col, lvl),
			})
		}
	}
	return stmt
}

// numericValues extracts a passthrough column as float64 with NaN for NA.
// A drifted frame may hand a catalog-numeric column over in string kind;
// parseable cells are taken, the rest become missing.
func numericValues(c *frame.Column) []float64 {
	out := make([]float64, c.Len())
	for i := range out {
		switch {
		case c.IsMissing(i):
			out[i] = math.NaN()
		case c.Kind == frame.Numeric:
			out[i] = c.Floats[i]
		default:
			v, err := strconv.ParseFloat(c.Raw[i], 64)
			if err != nil {
				v = math.NaN()
			}
			out[i] = v
		}
	}
	return out
}
