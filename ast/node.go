/*
File    : condeval/ast/node.go
*/

// Package ast defines the condition expression tree: a small, closed set
// of immutable node kinds produced by the parser and consumed by the
// evaluator. The set is deliberately closed (spec'd functions and
// operators only) so node kinds are represented as a tagged sum rather
// than an open class hierarchy — evaluation dispatch over the tree lives
// in the eval package as a type switch, not as virtual methods on Node,
// so the hot recursive-evaluation path never pays for interface dispatch
// per composite node. The handful of leaf-coercion methods Node does
// expose (TryBool, TryNumeric, TryVersion, ...) are terminal operations
// on a single node's own text, not recursive tree walks.
package ast

import "github.com/hashicorp/go-version"

// Kind identifies which variant of the expression tree sum a Node is.
type Kind int

const (
	KindString Kind = iota
	KindNumeric
	KindBoolean
	KindNot
	KindAnd
	KindOr
	KindEq
	KindNe
	KindLt
	KindLe
	KindGt
	KindGe
	KindFunctionCall
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumeric:
		return "Numeric"
	case KindBoolean:
		return "Boolean"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindEq:
		return "Eq"
	case KindNe:
		return "Ne"
	case KindLt:
		return "Lt"
	case KindLe:
		return "Le"
	case KindGt:
		return "Gt"
	case KindGe:
		return "Ge"
	case KindFunctionCall:
		return "FunctionCall"
	default:
		return "Unknown"
	}
}

// ExpansionContext is the narrow capability a Node needs to resolve its
// own expandable text. It is satisfied by the evaluation state the eval
// package defines; ast never imports eval, so this interface — not a
// concrete struct — is how the two packages share the expansion
// capability without a cyclic dependency.
type ExpansionContext interface {
	// ExpandIntoString resolves $(...)/@(...)/%(...) references and
	// %-escapes in text, returning the fully expanded string.
	ExpandIntoString(text string) (string, error)
}

// Node is implemented by every expression tree variant. Composite kinds
// (Not, And, Or, the comparisons, FunctionCall) answer false/!ok from the
// Try* coercions: coercing a composite expression to a scalar value is a
// structural evaluation, not a terminal lookup, and is the evaluator's
// job — it recurses over the concrete child nodes itself.
type Node interface {
	Kind() Kind

	// TryBool attempts to read this single node as a boolean without
	// evaluating any children. Only BooleanNode and a StringNode whose
	// (expanded, if expandable) value is a boolean keyword succeed.
	TryBool(ctx ExpansionContext) (value bool, ok bool)

	// TryNumeric attempts to read this node as a float64: NumericNode
	// parses its own text; StringNode expands then parses.
	TryNumeric(ctx ExpansionContext) (value float64, ok bool)

	// TryVersion attempts to read this node as a dotted version.
	TryVersion(ctx ExpansionContext) (value *version.Version, ok bool)

	// GetExpandedValue resolves this node's own text against ctx. For
	// composite nodes it renders a reconstruction of the source text
	// for diagnostics; it does not evaluate the subexpression.
	GetExpandedValue(ctx ExpansionContext) (string, error)

	// GetUnexpandedValue returns the original lexeme (leaf nodes) or a
	// reconstructed source rendering (composite nodes), without
	// expansion.
	GetUnexpandedValue() string

	// ResetState clears any cached expansion result so the node can be
	// evaluated again from scratch against a new state.
	ResetState()
}
