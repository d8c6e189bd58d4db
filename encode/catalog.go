package encode

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vegasq/onehotsql/frame"
)

// Catalog is the captured encoding metadata: the column classification and
// the canonical ordered level list of every categorical column.
//
// A Catalog is created exactly once — either captured from a reference frame
// by BuildCatalog, or loaded from an earlier capture — and is treated as
// read-only afterwards. Level lists never grow on re-encoding; values
// outside them are reported as unseen instead. The Categorical slice order
// is the canonical catalog iteration order used by the SQL synthesizer.
type Catalog struct {
	// ID identifies the capture. It is stamped once by BuildCatalog and
	// survives serialization, so results produced against the same capture
	// can be traced back to it.
	ID string `yaml:"id"`

	// Numeric lists the passthrough column names.
	Numeric []string `yaml:"numeric"`

	// Categorical lists the categorical column names in catalog order.
	Categorical []string `yaml:"categorical"`

	// Levels maps each categorical column to its ordered level list.
	Levels map[string][]string `yaml:"levels"`
}

// BuildCatalog captures a catalog from a reference frame.
//
// Columns of numeric kind become passthrough; every other kind (string,
// bool, time, factor) becomes categorical. Levels are the sorted distinct
// non-missing string forms of the column's values. A categorical column
// with no observed values is an error: it would produce a silently empty
// indicator set.
func BuildCatalog(f *frame.Frame) (*Catalog, error) {
	if f == nil || len(f.Columns()) == 0 {
		return nil, ErrEmptyFrame
	}

	cat := &Catalog{
		ID:     uuid.NewString(),
		Levels: make(map[string][]string),
	}
	for _, c := range f.Columns() {
		if !c.Kind.IsCategorical() {
			cat.Numeric = append(cat.Numeric, c.Name)
			continue
		}
		levels := distinctLevels(c)
		if len(levels) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoLevels, c.Name)
		}
		cat.Categorical = append(cat.Categorical, c.Name)
		cat.Levels[c.Name] = levels
	}
	return cat, nil
}

// distinctLevels returns the sorted distinct non-missing values of a
// categorical column.
func distinctLevels(c *frame.Column) []string {
	seen := make(map[string]bool)
	for i, v := range c.Raw {
		if c.IsMissing(i) {
			continue
		}
		seen[v] = true
	}
	levels := make([]string, 0, len(seen))
	for v := range seen {
		levels = append(levels, v)
	}
	sort.Strings(levels)
	return levels
}

// Expected returns the full expected column set, numeric first, then
// categorical, both in catalog order.
func (c *Catalog) Expected() []string {
	out := make([]string, 0, len(c.Numeric)+len(c.Categorical))
	out = append(out, c.Numeric...)
	out = append(out, c.Categorical...)
	return out
}

// IsNumeric reports whether the named column is a numeric passthrough.
func (c *Catalog) IsNumeric(name string) bool {
	for _, n := range c.Numeric {
		if n == name {
			return true
		}
	}
	return false
}

// Validate checks the catalog's structural invariants: the numeric and
// categorical sets are disjoint, and every categorical column has a
// non-empty level list.
func (c *Catalog) Validate() error {
	numeric := make(map[string]bool, len(c.Numeric))
	for _, n := range c.Numeric {
		if numeric[n] {
			return fmt.Errorf("%w: %q", frame.ErrDuplicateColumn, n)
		}
		numeric[n] = true
	}
	seen := make(map[string]bool, len(c.Categorical))
	for _, n := range c.Categorical {
		if numeric[n] || seen[n] {
			return fmt.Errorf("%w: %q", frame.ErrDuplicateColumn, n)
		}
		seen[n] = true
		if len(c.Levels[n]) == 0 {
			return fmt.Errorf("%w: %q", ErrNoLevels, n)
		}
	}
	return nil
}
