/*
File    : condeval/ast/coercion.go
*/
package ast

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
)

// ParseDecimalOrHex implements the evaluator's
// TryConvertDecimalOrHexToDouble coercion (spec.md §4.5): accept a
// decimal literal (optional sign, optional fraction) or a "0x"/"0X"
// hexadecimal literal, and return it as a float64.
func ParseDecimalOrHex(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}
	if len(s) > 3 && (s[0] == '+' || s[0] == '-') && s[1] == '0' && (s[2] == 'x' || s[2] == 'X') {
		v, err := strconv.ParseUint(s[3:], 16, 64)
		if err != nil {
			return 0, false
		}
		f := float64(v)
		if s[0] == '-' {
			f = -f
		}
		return f, true
	}

	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		case i == 0 && (c == '+' || c == '-'):
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseVersion parses s as a dotted version (an arbitrary number of
// numeric segments, e.g. "15.0" or "4.7.2.1"), the representation
// spec.md's relational ladder compares MSBuildToolsVersion-style values
// with.
func ParseVersion(s string) (*version.Version, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	v, err := version.NewVersion(s)
	if err != nil {
		return nil, false
	}
	return v, true
}
