/*
File    : condeval/ast/function_node.go
*/
package ast

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// Known function names and their declared arities (spec.md §3). These
// are the only two functions the evaluator understands natively; any
// other name only reaches a FunctionCallNode when the parser's
// AllowUndefinedFunctions option is set, in which case Known is false
// and evaluation, not parsing, reports UndefinedFunctionCall.
const (
	FuncExists           = "Exists"
	FuncHasTrailingSlash = "HasTrailingSlash"
)

// KnownFunctionArity returns the declared arity of a known function name
// (case-insensitive) and whether the name is known at all.
func KnownFunctionArity(name string) (arity int, known bool) {
	switch strings.ToLower(name) {
	case strings.ToLower(FuncExists):
		return 1, true
	case strings.ToLower(FuncHasTrailingSlash):
		return 1, true
	default:
		return 0, false
	}
}

// FunctionCallNode is a call to one of the known functions, or — when
// the parser allowed it — a deferred call to an unknown name that the
// evaluator will reject.
type FunctionCallNode struct {
	Name  string
	Args  []Node
	Known bool
}

func NewFunctionCallNode(name string, args []Node, known bool) *FunctionCallNode {
	return &FunctionCallNode{Name: name, Args: args, Known: known}
}

func (n *FunctionCallNode) Kind() Kind { return KindFunctionCall }

func (n *FunctionCallNode) TryBool(ExpansionContext) (bool, bool)       { return false, false }
func (n *FunctionCallNode) TryNumeric(ExpansionContext) (float64, bool) { return 0, false }
func (n *FunctionCallNode) TryVersion(ExpansionContext) (*version.Version, bool) {
	return nil, false
}

func (n *FunctionCallNode) GetExpandedValue(ctx ExpansionContext) (string, error) {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		v, err := a.GetExpandedValue(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func (n *FunctionCallNode) GetUnexpandedValue() string {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.GetUnexpandedValue())
	}
	b.WriteByte(')')
	return b.String()
}

func (n *FunctionCallNode) ResetState() {
	for _, a := range n.Args {
		a.ResetState()
	}
}
