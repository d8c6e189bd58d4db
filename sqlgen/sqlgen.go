// Package sqlgen renders the SELECT statement that reproduces a one-hot
// encoding inside a database engine.
//
// The statement is assembled as a structured list of per-column clause
// records and rendered exactly once, which keeps generation a pure function
// of its inputs: the same clause list always renders to byte-identical SQL.
// The package never inspects actual data values — unseen levels need no
// special handling in SQL because the equality comparison is simply false
// for them, and NULL source cells propagate through the leading
// "IS NULL" branch.
//
// Example output:
//
//	SELECT [ROW_KEY],
//		[carat],
//		(case when [cut] IS NULL then NULL when [cut] = 'Ideal' then 1 else 0 end) AS [cut_Ideal]
//	FROM INPUT_TABLE
package sqlgen

import (
	"fmt"
	"io"
	"strings"
)

// Case is one indicator clause: a CASE expression over Column testing
// equality against Level, selected under Alias.
type Case struct {
	Column string
	Level  string
	Alias  string
}

// Statement is the structured form of one generated SELECT.
//
// Numeric columns are selected verbatim, then one Case per (column, level)
// pair in the order given — catalog iteration order, which intentionally
// differs from the matrix's alphabetical column order; parity between the
// two is by name set, not position.
type Statement struct {
	RowKey  string
	Table   string
	Numeric []string
	Cases   []Case
}

// Render produces the SQL text. The output is byte-for-byte deterministic
// for a given statement.
//
// Identifiers are bracket-delimited and emitted verbatim inside the
// brackets; the table name is emitted as given. Single quotes inside level
// literals are doubled, the one escape applied.
func (s *Statement) Render() string {
	var b strings.Builder

	items := make([]string, 0, 1+len(s.Numeric)+len(s.Cases))
	items = append(items, quoteIdent(s.RowKey))
	for _, col := range s.Numeric {
		items = append(items, quoteIdent(col))
	}
	for _, c := range s.Cases {
		items = append(items, renderCase(c))
	}

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(items, ",\n\t"))
	b.WriteString("\nFROM ")
	b.WriteString(s.Table)
	return b.String()
}

// renderCase renders one indicator clause.
func renderCase(c Case) string {
	return fmt.Sprintf("(case when %s IS NULL then NULL when %s = %s then 1 else 0 end) AS %s",
		quoteIdent(c.Column), quoteIdent(c.Column), quoteLiteral(c.Level), quoteIdent(c.Alias))
}

// quoteIdent wraps an identifier in brackets. Brackets inside the
// identifier itself are not escaped; that is out of scope here.
func quoteIdent(name string) string {
	return "[" + name + "]"
}

// quoteLiteral renders a string literal with embedded single quotes doubled.
func quoteLiteral(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// Write writes the SQL text to w in full. A short or failed write is
// surfaced to the caller; the text itself is always still available.
func Write(w io.Writer, sql string) error {
	if _, err := io.WriteString(w, sql); err != nil {
		return fmt.Errorf("sqlgen: writing statement: %w", err)
	}
	return nil
}
