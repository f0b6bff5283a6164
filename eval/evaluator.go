/*
File    : condeval/eval/evaluator.go
*/
package eval

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/gomsbuild/condeval/ast"
	"github.com/gomsbuild/condeval/lexer"
)

// toolsVersionProperty is the unexpanded lexeme of the one property
// reference the ToolsVersion compatibility kludge applies to; it never
// fires for a literal 'Current' or for any other property that happens
// to expand to that text.
const toolsVersionProperty = "$(MSBuildToolsVersion)"

// toolsVersionSentinel is the literal modern MSBuild engines return for
// $(MSBuildToolsVersion): a non-numeric, non-dotted string that would
// otherwise fail every numeric and version comparison a condition might
// write against it (e.g. '$(MSBuildToolsVersion) >= 4.0'). Relational
// numeric and version coercion special-case this one node to a sentinel
// that compares greater than any real tools version, so such conditions
// keep evaluating the way they did before the literal changed. Equality
// comparisons are unaffected by this kludge.
const toolsVersionSentinel = "Current"

// Evaluate walks node and reduces it to a boolean, recursing with a Go
// type switch rather than virtual dispatch (see ast.Node's package doc).
func Evaluate(node ast.Node, st State) (bool, error) {
	return evalNode(node, st)
}

// ResetState clears any cached expansion results held by node's leaves
// so the same tree can be evaluated again against a different State.
func ResetState(node ast.Node) {
	node.ResetState()
}

func evalNode(node ast.Node, st State) (bool, error) {
	switch n := node.(type) {
	case *ast.BooleanNode:
		return n.Value, nil

	case *ast.NotNode:
		v, err := evalNode(n.Child, st)
		if err != nil {
			return false, err
		}
		return !v, nil

	case *ast.AndNode:
		l, err := evalNode(n.Left, st)
		if err != nil {
			return false, err
		}
		if !l {
			return false, nil
		}
		return evalNode(n.Right, st)

	case *ast.OrNode:
		l, err := evalNode(n.Left, st)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return evalNode(n.Right, st)

	case *ast.EqNode:
		return evalEquality(n.Left, n.Right, st)

	case *ast.NeNode:
		eq, err := evalEquality(n.Left, n.Right, st)
		if err != nil {
			return false, err
		}
		return !eq, nil

	case *ast.LtNode:
		return evalRelational(n.Left, n.Right, st, func(c int) bool { return c < 0 })
	case *ast.LeNode:
		return evalRelational(n.Left, n.Right, st, func(c int) bool { return c <= 0 })
	case *ast.GtNode:
		return evalRelational(n.Left, n.Right, st, func(c int) bool { return c > 0 })
	case *ast.GeNode:
		return evalRelational(n.Left, n.Right, st, func(c int) bool { return c >= 0 })

	case *ast.FunctionCallNode:
		return evalFunction(n, st)

	case *ast.StringNode:
		v, ok := n.TryBool(st)
		if !ok {
			return false, newError(ExpressionDoesNotEvaluateToBoolean, n.GetUnexpandedValue())
		}
		return v, nil

	case *ast.NumericNode:
		return false, newError(ExpressionDoesNotEvaluateToBoolean, n.GetUnexpandedValue())

	default:
		return false, newError(ExpressionDoesNotEvaluateToBoolean, node.GetUnexpandedValue())
	}
}

// evalEquality implements the coercion ladder of spec.md §4.5: numeric,
// then boolean, then case-insensitive string — the first rung where both
// sides coerce wins. Equality additionally triggers the
// conditioned-properties side effect, whichever rung decides.
func evalEquality(left, right ast.Node, st State) (bool, error) {
	if rv, err := right.GetExpandedValue(st); err == nil {
		recordConditionedProperty(left, rv, st)
	}

	if lv, lok := left.TryNumeric(st); lok {
		if rv, rok := right.TryNumeric(st); rok {
			return lv == rv, nil
		}
	}

	if lv, lok := left.TryBool(st); lok {
		if rv, rok := right.TryBool(st); rok {
			return lv == rv, nil
		}
	}

	lv, err := left.GetExpandedValue(st)
	if err != nil {
		return false, err
	}
	rv, err := right.GetExpandedValue(st)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(lv, rv), nil
}

// evalRelational implements the numeric / numeric-vs-version / version /
// version-vs-numeric ladder: the first rung where both sides coerce
// decides the comparison, with cmp translating a three-way compare
// result (negative/zero/positive) into the specific operator's meaning.
func evalRelational(left, right ast.Node, st State, cmp func(int) bool) (bool, error) {
	lnum, lnumOK := coerceNumeric(left, st)
	rnum, rnumOK := coerceNumeric(right, st)
	if lnumOK && rnumOK {
		return cmp(compareFloat(lnum, rnum)), nil
	}

	lver, lverOK := coerceVersion(left, st)
	rver, rverOK := coerceVersion(right, st)

	if lnumOK && rverOK {
		if lv, err := version.NewVersion(formatFloat(lnum)); err == nil {
			return cmp(lv.Compare(rver)), nil
		}
	}
	if lverOK && rverOK {
		return cmp(lver.Compare(rver)), nil
	}
	if lverOK && rnumOK {
		if rv, err := version.NewVersion(formatFloat(rnum)); err == nil {
			return cmp(lver.Compare(rv)), nil
		}
	}

	return false, newError(ComparisonOnNonNumericExpression, left.GetUnexpandedValue(), right.GetUnexpandedValue())
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// formatFloat renders f as a plain decimal (never scientific notation)
// suitable for re-parsing as a version segment.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// coerceNumeric is the relational ladder's numeric rung: it tries the
// node's own TryNumeric first, then falls back to the ToolsVersion
// compatibility sentinel when node's unexpanded text is exactly
// "$(MSBuildToolsVersion)" and it expanded to "Current".
func coerceNumeric(node ast.Node, st State) (float64, bool) {
	if v, ok := node.TryNumeric(st); ok {
		return v, true
	}
	if !isToolsVersionCurrent(node, st) {
		return 0, false
	}
	return math.MaxFloat64, true
}

func coerceVersion(node ast.Node, st State) (*version.Version, bool) {
	if v, ok := node.TryVersion(st); ok {
		return v, true
	}
	if !isToolsVersionCurrent(node, st) {
		return nil, false
	}
	v, err := version.NewVersion("999999.999999")
	if err != nil {
		return nil, false
	}
	return v, true
}

func isToolsVersionCurrent(node ast.Node, st State) bool {
	if node.GetUnexpandedValue() != toolsVersionProperty {
		return false
	}
	expanded, err := node.GetExpandedValue(st)
	return err == nil && expanded == toolsVersionSentinel
}

// recordConditionedProperty implements the conditioned-properties side
// effect: if left is exactly a bare "$(Name)" reference and expanding it
// produced something other than that literal text, remember rightLiteral
// as one of the values Name was conditioned against.
func recordConditionedProperty(left ast.Node, rightLiteral string, st State) {
	unexpanded := left.GetUnexpandedValue()
	name, ok := barePropertyName(unexpanded)
	if !ok {
		return
	}
	expanded, err := left.GetExpandedValue(st)
	if err != nil || expanded == unexpanded {
		return
	}
	st.RecordConditionedProperty(name, rightLiteral)
}

func barePropertyName(text string) (string, bool) {
	if len(text) < 4 || !strings.HasPrefix(text, "$(") || !strings.HasSuffix(text, ")") {
		return "", false
	}
	inner := text[2 : len(text)-1]
	if inner == "" || !lexer.IsIdentifierStart(inner[0]) {
		return "", false
	}
	for i := 1; i < len(inner); i++ {
		if !lexer.IsIdentifierChar(inner[i]) {
			return "", false
		}
	}
	return inner, true
}

func evalFunction(n *ast.FunctionCallNode, st State) (bool, error) {
	if !n.Known {
		return false, newError(UndefinedFunctionCall, n.Name)
	}

	switch strings.ToLower(n.Name) {
	case strings.ToLower(ast.FuncExists):
		return evalExists(n.Args[0], st)

	case strings.ToLower(ast.FuncHasTrailingSlash):
		val, err := scalarArg(n.Args[0], st)
		if err != nil {
			return false, err
		}
		return strings.HasSuffix(val, "/") || strings.HasSuffix(val, "\\"), nil

	default:
		return false, newError(UndefinedFunctionCall, n.Name)
	}
}

// scalarArg expands arg and rejects it if it resolves to more than one
// semicolon-separated item, the way an item-list reference does once
// expanded against multiple items — HasTrailingSlash only accepts a
// single scalar value.
func scalarArg(arg ast.Node, st State) (string, error) {
	val, err := arg.GetExpandedValue(st)
	if err != nil {
		return "", err
	}
	if sn, ok := arg.(*ast.StringNode); ok && strings.HasPrefix(sn.Text, "@(") {
		if strings.Contains(val, ";") {
			return "", newError(CannotPassMultipleItemsIntoScalarFunction, sn.Text)
		}
	}
	return val, nil
}

// evalExists implements Exists(): its argument expands to a
// semicolon-separated list of paths (the same separator an item-list
// reference joins on), each normalized to the host's path separator, and
// the function is true only if every listed path exists or is already
// one of the loaded projects st knows about. An empty list (the argument
// expanded to nothing) is false.
func evalExists(arg ast.Node, st State) (bool, error) {
	val, err := arg.GetExpandedValue(st)
	if err != nil {
		return false, err
	}

	any := false
	for _, raw := range strings.Split(val, ";") {
		path := strings.TrimSpace(raw)
		if path == "" {
			continue
		}
		any = true
		path = normalizePathSeparators(path)
		if st.IsLoaded(path) {
			continue
		}
		if !st.Exists(path) {
			return false, nil
		}
	}
	return any, nil
}

func normalizePathSeparators(path string) string {
	if filepath.Separator == '/' {
		return strings.ReplaceAll(path, "\\", "/")
	}
	return strings.ReplaceAll(path, "/", string(filepath.Separator))
}
