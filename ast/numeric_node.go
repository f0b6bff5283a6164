/*
File    : condeval/ast/numeric_node.go
*/
package ast

import "github.com/hashicorp/go-version"

// NumericNode carries the textual form of a decimal or hex literal.
// Parsing to float64 or Version happens on demand, not at parse time,
// since most numeric literals are only ever compared once.
type NumericNode struct {
	Text string
}

func NewNumericNode(text string) *NumericNode {
	return &NumericNode{Text: text}
}

func (n *NumericNode) Kind() Kind { return KindNumeric }

func (n *NumericNode) TryBool(ExpansionContext) (bool, bool) { return false, false }

func (n *NumericNode) TryNumeric(ExpansionContext) (float64, bool) {
	return ParseDecimalOrHex(n.Text)
}

func (n *NumericNode) TryVersion(ExpansionContext) (*version.Version, bool) {
	return ParseVersion(n.Text)
}

func (n *NumericNode) GetExpandedValue(ExpansionContext) (string, error) { return n.Text, nil }
func (n *NumericNode) GetUnexpandedValue() string                        { return n.Text }
func (n *NumericNode) ResetState()                                       {}
