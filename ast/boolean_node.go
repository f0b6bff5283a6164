/*
File    : condeval/ast/boolean_node.go
*/
package ast

import (
	"github.com/hashicorp/go-version"
)

// BooleanNode is a precomputed boolean parsed at construction time from
// one of the keyword lexemes (true|false|on|off|yes|no), case
// insensitive. Text retains the original lexeme for diagnostics.
type BooleanNode struct {
	Value bool
	Text  string
}

func NewBooleanNode(value bool, text string) *BooleanNode {
	return &BooleanNode{Value: value, Text: text}
}

func (n *BooleanNode) Kind() Kind { return KindBoolean }

func (n *BooleanNode) TryBool(ExpansionContext) (bool, bool) { return n.Value, true }

func (n *BooleanNode) TryNumeric(ExpansionContext) (float64, bool) { return 0, false }

func (n *BooleanNode) TryVersion(ExpansionContext) (*version.Version, bool) { return nil, false }

func (n *BooleanNode) GetExpandedValue(ExpansionContext) (string, error) { return n.Text, nil }
func (n *BooleanNode) GetUnexpandedValue() string                        { return n.Text }
func (n *BooleanNode) ResetState()                                       {}
