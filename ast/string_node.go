/*
File    : condeval/ast/string_node.go
*/
package ast

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// StringNode is a literal string or a reference the evaluator must
// expand. Expandable is true iff Text contains "$(", "@(", "%(", or a
// bare '%' escape sequence — set once by the parser and never
// recomputed.
type StringNode struct {
	Text       string
	Expandable bool

	cached    string
	cachedOK  bool
	cacheUsed bool
}

func NewStringNode(text string, expandable bool) *StringNode {
	return &StringNode{Text: text, Expandable: expandable}
}

func (n *StringNode) Kind() Kind { return KindString }

// TryBool succeeds when the node's expanded value is one of the boolean
// keywords (true|false|on|off|yes|no), case-insensitive.
func (n *StringNode) TryBool(ctx ExpansionContext) (bool, bool) {
	expanded, err := n.GetExpandedValue(ctx)
	if err != nil {
		return false, false
	}
	return ParseBoolKeyword(expanded)
}

func (n *StringNode) TryNumeric(ctx ExpansionContext) (float64, bool) {
	expanded, err := n.GetExpandedValue(ctx)
	if err != nil {
		return 0, false
	}
	return ParseDecimalOrHex(expanded)
}

func (n *StringNode) TryVersion(ctx ExpansionContext) (*version.Version, bool) {
	expanded, err := n.GetExpandedValue(ctx)
	if err != nil {
		return nil, false
	}
	return ParseVersion(expanded)
}

// GetExpandedValue resolves the node's text through ctx, caching the
// result for the lifetime of the current evaluation. Non-expandable text
// is returned as-is without consulting ctx.
func (n *StringNode) GetExpandedValue(ctx ExpansionContext) (string, error) {
	if !n.Expandable {
		return n.Text, nil
	}
	if n.cacheUsed {
		if n.cachedOK {
			return n.cached, nil
		}
		return "", errExpansionFailed
	}
	expanded, err := ctx.ExpandIntoString(n.Text)
	n.cacheUsed = true
	if err != nil {
		n.cachedOK = false
		return "", err
	}
	n.cached = expanded
	n.cachedOK = true
	return expanded, nil
}

func (n *StringNode) GetUnexpandedValue() string { return n.Text }

func (n *StringNode) ResetState() {
	n.cached = ""
	n.cachedOK = false
	n.cacheUsed = false
}

// errExpansionFailed is a sentinel for the "expansion already failed and
// was cached" path; the real error is only surfaced on first expansion.
var errExpansionFailed = &expansionError{}

type expansionError struct{}

func (*expansionError) Error() string { return "expansion failed" }

// ParseBoolKeyword parses one of the MSBuild boolean keywords
// (true|on|yes|false|off|no), case-insensitively. A leading '!' is not
// handled here — that is a parse-time transform on quoted-string bodies
// (spec.md §4.3.3), applied before a BooleanNode is constructed.
func ParseBoolKeyword(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes":
		return true, true
	case "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}
