package airtable

import (
	"fmt"
	"strings"
)

var formulaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
)

// EscapeString makes s safe to embed inside a quoted formula string literal.
func EscapeString(s string) string {
	return formulaEscaper.Replace(s)
}

// UnescapeString reverses EscapeString.
func UnescapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

// fieldRef renders {Field Name}. Closing braces cannot appear in a field
// reference, so they are stripped.
func fieldRef(field string) string {
	return "{" + strings.ReplaceAll(field, "}", "") + "}"
}

// Eq builds {field} = 'value'.
func Eq(field, value string) string {
	return fmt.Sprintf("%s = '%s'", fieldRef(field), EscapeString(value))
}

// Contains builds a substring match of value against the comma-joined
// contents of a (possibly multi-valued) field.
func Contains(field, value string) string {
	return fmt.Sprintf("FIND('%s', ARRAYJOIN(%s, ',')) > 0", EscapeString(value), fieldRef(field))
}
