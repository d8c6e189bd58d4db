// Package encode converts a frame's categorical columns into binary
// indicator (one-hot) columns and keeps that transformation synchronized
// with a generated SQL statement.
//
// The package is built around a Catalog: a captured record of which columns
// are numeric, which are categorical, and the canonical ordered level list
// of each categorical column. A Catalog is captured once from a reference
// frame and then reused, read-only, so that every later encoding — and the
// SQL emitted for it — has exactly the same structure as the reference
// encoding.
//
// # Basic Usage
//
// First (reference) encoding, capturing a catalog:
//
//	res, err := encode.Encode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Catalog, res.Matrix, res.SQL
//
// Encoding new data against a frozen catalog:
//
//	res, err := encode.Encode(newFrame, encode.WithCatalog(cat))
//
// Columns the catalog expects but the frame lacks come back in
// res.MissingColumns; values absent from the catalog's level lists come
// back in res.Unseen and encode as all-zero indicators.
//
// # Semantics
//
// For a categorical column c with levels [l1..lk], k indicator columns are
// produced, named c<sep><normalized li>. The cell value is 1 when the raw
// value equals li, 0 when it is non-missing and different (including unseen
// values), and NaN when the source cell is missing. Missing propagation
// matches the generated SQL's "when c IS NULL then NULL" branch exactly.
//
// All output columns — numeric passthrough plus indicators — are sorted
// alphabetically by final name, so the matrix layout does not depend on
// input column order.
package encode
