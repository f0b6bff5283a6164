/*
File    : condeval/ast/logical_nodes.go
*/
package ast

import "github.com/hashicorp/go-version"

// NotNode is unary logical negation; it has exactly one child by
// construction.
type NotNode struct {
	Child Node
}

func NewNotNode(child Node) *NotNode { return &NotNode{Child: child} }

func (n *NotNode) Kind() Kind { return KindNot }

// composite nodes are coerced structurally by the evaluator, which
// recurses over their concrete child fields directly rather than
// through these methods — see node.go's package doc.
func (n *NotNode) TryBool(ExpansionContext) (bool, bool)             { return false, false }
func (n *NotNode) TryNumeric(ExpansionContext) (float64, bool)       { return 0, false }
func (n *NotNode) TryVersion(ExpansionContext) (*version.Version, bool) { return nil, false }

func (n *NotNode) GetExpandedValue(ctx ExpansionContext) (string, error) {
	inner, err := n.Child.GetExpandedValue(ctx)
	if err != nil {
		return "", err
	}
	return "!" + inner, nil
}

func (n *NotNode) GetUnexpandedValue() string {
	return "!" + n.Child.GetUnexpandedValue()
}

func (n *NotNode) ResetState() { n.Child.ResetState() }

// AndNode and OrNode are binary, short-circuiting logical operators;
// each has exactly two children by construction.
type AndNode struct {
	Left, Right Node
}

func NewAndNode(left, right Node) *AndNode { return &AndNode{Left: left, Right: right} }

func (n *AndNode) Kind() Kind { return KindAnd }

func (n *AndNode) TryBool(ExpansionContext) (bool, bool)             { return false, false }
func (n *AndNode) TryNumeric(ExpansionContext) (float64, bool)       { return 0, false }
func (n *AndNode) TryVersion(ExpansionContext) (*version.Version, bool) { return nil, false }

func (n *AndNode) GetExpandedValue(ctx ExpansionContext) (string, error) {
	return renderBinary(ctx, n.Left, "and", n.Right)
}
func (n *AndNode) GetUnexpandedValue() string {
	return renderBinaryUnexpanded(n.Left, "and", n.Right)
}
func (n *AndNode) ResetState() { n.Left.ResetState(); n.Right.ResetState() }

type OrNode struct {
	Left, Right Node
}

func NewOrNode(left, right Node) *OrNode { return &OrNode{Left: left, Right: right} }

func (n *OrNode) Kind() Kind { return KindOr }

func (n *OrNode) TryBool(ExpansionContext) (bool, bool)             { return false, false }
func (n *OrNode) TryNumeric(ExpansionContext) (float64, bool)       { return 0, false }
func (n *OrNode) TryVersion(ExpansionContext) (*version.Version, bool) { return nil, false }

func (n *OrNode) GetExpandedValue(ctx ExpansionContext) (string, error) {
	return renderBinary(ctx, n.Left, "or", n.Right)
}
func (n *OrNode) GetUnexpandedValue() string {
	return renderBinaryUnexpanded(n.Left, "or", n.Right)
}
func (n *OrNode) ResetState() { n.Left.ResetState(); n.Right.ResetState() }

func renderBinary(ctx ExpansionContext, left Node, op string, right Node) (string, error) {
	l, err := left.GetExpandedValue(ctx)
	if err != nil {
		return "", err
	}
	r, err := right.GetExpandedValue(ctx)
	if err != nil {
		return "", err
	}
	return l + " " + op + " " + r, nil
}

func renderBinaryUnexpanded(left Node, op string, right Node) string {
	return left.GetUnexpandedValue() + " " + op + " " + right.GetUnexpandedValue()
}
