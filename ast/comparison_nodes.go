/*
File    : condeval/ast/comparison_nodes.go
*/
package ast

import "github.com/hashicorp/go-version"

// comparisonKind is shared plumbing for the six binary comparison node
// types; each has exactly two children by construction and is coerced
// structurally by the evaluator, same as the logical nodes.
type comparisonKind struct {
	Left, Right Node
	op          string
}

func (c *comparisonKind) TryBool(ExpansionContext) (bool, bool)             { return false, false }
func (c *comparisonKind) TryNumeric(ExpansionContext) (float64, bool)       { return 0, false }
func (c *comparisonKind) TryVersion(ExpansionContext) (*version.Version, bool) {
	return nil, false
}

func (c *comparisonKind) GetExpandedValue(ctx ExpansionContext) (string, error) {
	return renderBinary(ctx, c.Left, c.op, c.Right)
}

func (c *comparisonKind) GetUnexpandedValue() string {
	return renderBinaryUnexpanded(c.Left, c.op, c.Right)
}

func (c *comparisonKind) ResetState() {
	c.Left.ResetState()
	c.Right.ResetState()
}

type EqNode struct{ comparisonKind }

func NewEqNode(left, right Node) *EqNode {
	return &EqNode{comparisonKind{Left: left, Right: right, op: "=="}}
}
func (n *EqNode) Kind() Kind { return KindEq }

type NeNode struct{ comparisonKind }

func NewNeNode(left, right Node) *NeNode {
	return &NeNode{comparisonKind{Left: left, Right: right, op: "!="}}
}
func (n *NeNode) Kind() Kind { return KindNe }

type LtNode struct{ comparisonKind }

func NewLtNode(left, right Node) *LtNode {
	return &LtNode{comparisonKind{Left: left, Right: right, op: "<"}}
}
func (n *LtNode) Kind() Kind { return KindLt }

type LeNode struct{ comparisonKind }

func NewLeNode(left, right Node) *LeNode {
	return &LeNode{comparisonKind{Left: left, Right: right, op: "<="}}
}
func (n *LeNode) Kind() Kind { return KindLe }

type GtNode struct{ comparisonKind }

func NewGtNode(left, right Node) *GtNode {
	return &GtNode{comparisonKind{Left: left, Right: right, op: ">"}}
}
func (n *GtNode) Kind() Kind { return KindGt }

type GeNode struct{ comparisonKind }

func NewGeNode(left, right Node) *GeNode {
	return &GeNode{comparisonKind{Left: left, Right: right, op: ">="}}
}
func (n *GeNode) Kind() Kind { return KindGe }
