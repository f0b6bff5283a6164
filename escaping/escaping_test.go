package escaping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_IdentityWhenNoReservedChars(t *testing.T) {
	in := "DebugConfiguration123"
	assert.Equal(t, in, Escape(in))
}

func TestEscape_EncodesReservedSet(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{"%", "%25"},
		{"*", "%2a"},
		{"?", "%3f"},
		{"@", "%40"},
		{"$", "%24"},
		{"(", "%28"},
		{")", "%29"},
		{";", "%3b"},
		{"'", "%27"},
		{"a;b", "a%3bb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Expected, Escape(tt.Input), "input %q", tt.Input)
	}
}

func TestEscape_PercentFirstIsIdempotent(t *testing.T) {
	once := Escape("%")
	twice := Escape(once)
	assert.Equal(t, once, twice)
}

func TestUnescapeAll_RoundTrips(t *testing.T) {
	inputs := []string{
		"a;b",
		"$(Foo)",
		"no-reserved-chars",
		"100% done",
		"'quoted'",
	}
	for _, s := range inputs {
		assert.Equal(t, s, UnescapeAll(Escape(s), false), "input %q", s)
	}
}

func TestUnescapeAll_PassesThroughMalformedEscapes(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{"100%", "100%"},
		{"100%z", "100%z"},
		{"%2", "%2"},
		{"%", "%"},
		{"%2a", "*"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Expected, UnescapeAll(tt.Input, false), "input %q", tt.Input)
	}
}

func TestUnescapeAll_Trim(t *testing.T) {
	assert.Equal(t, "x", UnescapeAll("  x  ", true))
	assert.Equal(t, "a%b", UnescapeAll("  a%25b  ", true))
}

func TestContainsReservedCharacters(t *testing.T) {
	assert.True(t, ContainsReservedCharacters("$(Foo)"))
	assert.False(t, ContainsReservedCharacters("Foo"))
}
