/*
File    : condeval/eval/errors.go
*/
package eval

import "fmt"

// Error keys the evaluator reports once a condition has parsed
// successfully but fails to reduce to a boolean (spec.md §4.5). Like
// parser.Error these are resource keys, not rendered messages.
const (
	ExpressionDoesNotEvaluateToBoolean        = "ExpressionDoesNotEvaluateToBoolean"
	ComparisonOnNonNumericExpression          = "ComparisonOnNonNumericExpression"
	CannotPassMultipleItemsIntoScalarFunction = "CannotPassMultipleItemsIntoScalarFunction"
	UndefinedFunctionCall                     = "UndefinedFunctionCall"
)

// Error is a semantic evaluation failure. Unlike parser.Error it carries
// no source position: the tree no longer remembers character offsets
// once parsing has succeeded, only the text each leaf was built from.
type Error struct {
	Key  string
	Args []interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Args)
}

func newError(key string, args ...interface{}) *Error {
	return &Error{Key: key, Args: args}
}
