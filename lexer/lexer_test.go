/*
File    : condeval/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tryLexCase struct {
	Input    string
	Text     string
	Length   int
	Expected bool
}

func TestTryLexDecimalNumber(t *testing.T) {
	tests := []tryLexCase{
		{"123", "123", 3, true},
		{"12.5 rest", "12.5", 4, true},
		{"-12", "-12", 3, true},
		{"+0.5", "+0.5", 4, true},
		{".5", ".5", 2, true},
		{"1..2", "1", 1, true},
		{"abc", "", 0, false},
		{"+", "", 0, false},
		{".", "", 0, false},
	}
	for _, tt := range tests {
		text, length, ok := TryLexDecimalNumber(tt.Input)
		assert.Equal(t, tt.Expected, ok, "input %q", tt.Input)
		if ok {
			assert.Equal(t, tt.Text, text, "input %q", tt.Input)
			assert.Equal(t, tt.Length, length, "input %q", tt.Input)
		}
	}
}

func TestTryLexHexNumber(t *testing.T) {
	tests := []tryLexCase{
		{"0x10", "0x10", 4, true},
		{"0XFF rest", "0XFF", 4, true},
		{"0x", "", 0, false},
		{"0xg", "", 0, false},
		{"10", "", 0, false},
	}
	for _, tt := range tests {
		text, length, ok := TryLexHexNumber(tt.Input)
		assert.Equal(t, tt.Expected, ok, "input %q", tt.Input)
		if ok {
			assert.Equal(t, tt.Text, text, "input %q", tt.Input)
			assert.Equal(t, tt.Length, length, "input %q", tt.Input)
		}
	}
}

func TestTryLexIdentifier(t *testing.T) {
	tests := []tryLexCase{
		{"Configuration == 'Debug'", "Configuration", 13, true},
		{"_foo1", "_foo1", 5, true},
		{"1abc", "", 0, false},
	}
	for _, tt := range tests {
		text, length, ok := TryLexIdentifier(tt.Input)
		assert.Equal(t, tt.Expected, ok, "input %q", tt.Input)
		if ok {
			assert.Equal(t, tt.Text, text, "input %q", tt.Input)
			assert.Equal(t, tt.Length, length, "input %q", tt.Input)
		}
	}
}

func TestTryLexName(t *testing.T) {
	tests := []tryLexCase{
		{"FullPath)", "FullPath", 8, true},
		{"foo->'bar'", "foo", 3, true},
		{"Recursive-Dir)", "Recursive-Dir", 13, true},
		{"1nope", "", 0, false},
	}
	for _, tt := range tests {
		text, length, ok := TryLexName(tt.Input)
		assert.Equal(t, tt.Expected, ok, "input %q", tt.Input)
		if ok {
			assert.Equal(t, tt.Text, text, "input %q", tt.Input)
			assert.Equal(t, tt.Length, length, "input %q", tt.Input)
		}
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		assert.True(t, IsHexDigit(c), "char %q", c)
	}
	assert.False(t, IsHexDigit('g'))
}
