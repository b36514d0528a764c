package airtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeString_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain-token",
		"it's",
		`say "hi"`,
		`back\slash`,
		`\'`,
		`') OR TRUE() OR ('`,
		`trailing\`,
		`mixed '\" all`,
	}
	for _, in := range inputs {
		escaped := EscapeString(in)
		assert.Equal(t, in, UnescapeString(escaped), "round trip for %q", in)
	}
}

func TestEscapeString_NoUnescapedQuotes(t *testing.T) {
	escaped := EscapeString(`a'b\'c`)
	// every quote must be preceded by an odd run of backslashes
	for i, r := range escaped {
		if r != '\'' {
			continue
		}
		run := 0
		for j := i - 1; j >= 0 && escaped[j] == '\\'; j-- {
			run++
		}
		require.Equal(t, 1, run%2, "quote at %d is not escaped in %q", i, escaped)
	}
}

func TestEq(t *testing.T) {
	assert.Equal(t, `{token} = 'abc'`, Eq("token", "abc"))
	assert.Equal(t, `{token} = 'a\'b'`, Eq("token", "a'b"))
	assert.Equal(t, `{Spent By} = 'rec1'`, Eq("Spent By", "rec1"))
	assert.Equal(t, `{weird} = 'x'`, Eq("weird}", "x"))
}

func TestContains(t *testing.T) {
	f := Contains("Spent By", "recUSER")
	assert.Equal(t, `FIND('recUSER', ARRAYJOIN({Spent By}, ',')) > 0`, f)
	assert.True(t, strings.Contains(Contains("x", "it's"), `'it\'s'`))
}
