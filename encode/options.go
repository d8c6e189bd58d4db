package encode

import "io"

// Defaults used when the corresponding option is not supplied.
const (
	// DefaultSeparator joins a column name and a normalized level in an
	// indicator column name.
	DefaultSeparator = "_"

	// DefaultSubstitute replaces whitespace and punctuation in level names;
	// the empty string deletes them.
	DefaultSubstitute = ""

	// DefaultRowKey is the unique-id identifier used in generated SQL when
	// none is supplied.
	DefaultRowKey = "ROW_KEY"

	// DefaultTable is the source table name used in generated SQL when none
	// is supplied.
	DefaultTable = "INPUT_TABLE"
)

// Option configures a single Encode call.
type Option func(*options)

type options struct {
	catalog    *Catalog
	sep        string
	normalize  bool
	substitute string
	rowKey     string
	table      string
	sink       io.Writer

	// track explicit identifiers so the default-identifier notice is only
	// raised for the ones actually defaulted
	rowKeySet bool
	tableSet  bool
}

// WithCatalog supplies a previously captured catalog. The frame is
// reconciled against it and encoded under its level lists; values outside
// those lists are reported as unseen. The catalog is read-only for the
// duration of the call.
func WithCatalog(c *Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithSeparator sets the string between a column name and a level in
// indicator column names. Default "_".
func WithSeparator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// WithoutNormalize disables whitespace/punctuation replacement in level
// names; indicator names then contain the raw level string.
func WithoutNormalize() Option {
	return func(o *options) { o.normalize = false }
}

// WithSubstitute sets the replacement for whitespace and punctuation in
// level names. Default is the empty string (deletion). Only the output
// column name is affected; matching against raw values is not.
func WithSubstitute(sub string) Option {
	return func(o *options) {
		o.normalize = true
		o.substitute = sub
	}
}

// WithRowKey sets the unique-id identifier selected first in the generated
// SQL.
func WithRowKey(id string) Option {
	return func(o *options) {
		o.rowKey = id
		o.rowKeySet = true
	}
}

// WithTable sets the source table name in the generated SQL's FROM clause.
func WithTable(name string) Option {
	return func(o *options) {
		o.table = name
		o.tableSet = true
	}
}

// WithSQLWriter supplies a destination the generated SQL is written to in
// full. The SQL string is returned in the Result either way; a write
// failure is returned as the call's error without withholding the computed
// matrix and catalog.
func WithSQLWriter(w io.Writer) Option {
	return func(o *options) { o.sink = w }
}

// gatherOptions resolves option setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		sep:        DefaultSeparator,
		normalize:  true,
		substitute: DefaultSubstitute,
		rowKey:     DefaultRowKey,
		table:      DefaultTable,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
