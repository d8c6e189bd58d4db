package encode

import (
	"math"
	"sort"
	"strconv"

	"github.com/vegasq/onehotsql/frame"
)

// indicatorSet is the encoding of one categorical column: k named 0/1/NaN
// columns plus the distinct unseen values observed along the way.
type indicatorSet struct {
	names   []string
	columns [][]float64
	unseen  []string
}

// encodeColumn builds the indicator columns for one categorical column
// under a fixed level list.
//
// Cell policy, per row:
//   - source missing  → NaN in every indicator (matches the SQL's
//     "when col IS NULL then NULL" branch)
//   - value == level  → 1 in that level's indicator, 0 in the others
//   - value not among the levels (unseen) → 0 in every indicator, value
//     recorded; the level list never grows
func encodeColumn(c *frame.Column, levels []string, o *options) indicatorSet {
	rows := c.Len()
	set := indicatorSet{
		names:   make([]string, len(levels)),
		columns: make([][]float64, len(levels)),
	}
	index := make(map[string]int, len(levels))
	for i, lvl := range levels {
		set.names[i] = o.indicatorName(c.Name, lvl)
		set.columns[i] = make([]float64, rows)
		index[lvl] = i
	}

	unseen := make(map[string]bool)
	for r := 0; r < rows; r++ {
		if c.IsMissing(r) {
			for i := range set.columns {
				set.columns[i][r] = math.NaN()
			}
			continue
		}
		v := rawValue(c, r)
		hit, known := index[v]
		if !known {
			// Unseen level: all indicators stay 0 for this row.
			unseen[v] = true
			continue
		}
		set.columns[hit][r] = 1
	}

	if len(unseen) > 0 {
		set.unseen = make([]string, 0, len(unseen))
		for v := range unseen {
			set.unseen = append(set.unseen, v)
		}
		sort.Strings(set.unseen)
	}
	return set
}

// rawValue returns the string form a cell is matched under. A column the
// catalog considers categorical may still arrive with numeric kind in a
// drifted frame; its values then match by their canonical numeric string.
func rawValue(c *frame.Column, r int) string {
	if c.Kind == frame.Numeric {
		return strconv.FormatFloat(c.Floats[r], 'g', -1, 64)
	}
	return c.Raw[r]
}
