package encode

import "github.com/vegasq/onehotsql/frame"

// Reconcile aligns a frame's column set against a catalog's expectations.
//
// Columns the catalog does not know about are dropped silently; columns the
// catalog expects but the frame lacks are added as all-missing and their
// names are returned so the caller can warn about them. The result's column
// order is the catalog's expected order (numeric first, then categorical),
// regardless of the input order. The input frame is not modified.
func Reconcile(f *frame.Frame, cat *Catalog) (*frame.Frame, []string) {
	rows := f.Len()
	var missing []string

	cols := make([]*frame.Column, 0, len(cat.Numeric)+len(cat.Categorical))
	for _, name := range cat.Expected() {
		if c := f.Column(name); c != nil {
			cols = append(cols, c.Clone())
			continue
		}
		missing = append(missing, name)
		kind := frame.Factor
		if cat.IsNumeric(name) {
			kind = frame.Numeric
		}
		cols = append(cols, frame.MissingColumn(name, kind, rows))
	}

	// Names are unique by catalog invariant, lengths all equal rows.
	out, _ := frame.New(cols...)
	return out, missing
}
