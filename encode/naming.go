package encode

import (
	"strings"
	"unicode"
)

// NormalizeLevel replaces every whitespace or punctuation rune in a level
// string with the substitute. It is applied to level names when forming
// output column names; the matching condition against raw values always
// uses the unmodified level.
func NormalizeLevel(level, substitute string) string {
	var b strings.Builder
	b.Grow(len(level))
	for _, r := range level {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			b.WriteString(substitute)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IndicatorName derives the output column name for a (column, level) pair.
// Both the matrix assembler and the SQL synthesizer go through this
// function, which is what keeps their naming schemes identical.
func IndicatorName(column, level, sep string, normalize bool, substitute string) string {
	if normalize {
		level = NormalizeLevel(level, substitute)
	}
	return column + sep + level
}

// indicatorName is the options-aware form used internally.
func (o *options) indicatorName(column, level string) string {
	return IndicatorName(column, level, o.sep, o.normalize, o.substitute)
}
