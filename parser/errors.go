/*
File    : condeval/parser/errors.go
*/
package parser

import "fmt"

// Error keys the parser reports (spec.md §4.4). Each is a resource key,
// not a localized message: the core never generates human-readable
// text, only the key and the substitution arguments a caller's own
// resource table would need.
const (
	IllFormedEquals                       = "IllFormedEquals"
	IllFormedPropertyOpenParenthesis      = "IllFormedPropertyOpenParenthesis"
	IllFormedPropertyCloseParenthesis     = "IllFormedPropertyCloseParenthesis"
	IllFormedSpace                        = "IllFormedSpace"
	IllFormedItemListOpenParenthesis      = "IllFormedItemListOpenParenthesis"
	IllFormedItemListCloseParenthesis     = "IllFormedItemListCloseParenthesis"
	IllFormedItemListQuote                = "IllFormedItemListQuote"
	IllFormedItemMetadataOpenParenthesis  = "IllFormedItemMetadataOpenParenthesis"
	IllFormedItemMetadataCloseParenthesis = "IllFormedItemMetadataCloseParenthesis"
	IllFormedQuotedString                 = "IllFormedQuotedString"
	ItemListNotAllowed                    = "ItemListNotAllowed"
	ItemMetadataNotAllowed                = "ItemMetadataNotAllowed"
	BuiltInMetadataNotAllowed             = "BuiltInMetadataNotAllowed"
	CustomMetadataNotAllowed              = "CustomMetadataNotAllowed"
	UndefinedFunctionCall                 = "UndefinedFunctionCall"
	IncorrectNumberOfFunctionArguments    = "IncorrectNumberOfFunctionArguments"
	UnexpectedToken                       = "UnexpectedToken"
)

// ConditionMaybeEvaluatedIncorrectly is not an error key: it is the
// resource key of the one-shot precedence-conflict diagnostic (spec.md
// §4.3.5), delivered to the warning sink rather than returned as a
// failure.
const ConditionMaybeEvaluatedIncorrectly = "ConditionMaybeEvaluatedIncorrectly"

// Error is a structured parse failure: a resource key, a 1-based
// character position into the source text, and the format arguments a
// caller's resource string would need. The parser stops at the first
// Error it detects; throwing and try-mode entry points both derive from
// the same internal pass, so they always agree on Key and Position for
// the same input.
type Error struct {
	Key      string
	Position int
	Args     []interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d: %v", e.Key, e.Position, e.Args)
}

// WarnFunc receives the (at most one) precedence-conflict diagnostic a
// parse can produce. A nil WarnFunc silently drops it.
type WarnFunc func(key string, args ...interface{})
