package encode

import "errors"

var (
	// ErrEmptyFrame is returned when the input frame has no columns.
	ErrEmptyFrame = errors.New("encode: frame has no columns")

	// ErrNoLevels is returned when a categorical column has zero observed
	// non-missing values at catalog capture time.
	ErrNoLevels = errors.New("encode: categorical column has no observed levels")

	// ErrNameCollision is returned when two distinct (column, level) pairs
	// normalize to the same output column name. The data is not silently
	// overwritten; fix the separator or substitute configuration instead.
	ErrNameCollision = errors.New("encode: output column name collision")
)
