/*
File    : condeval/parser/parser.go
*/

// Package parser implements the single-pass recursive-descent parser for
// MSBuild-style condition expressions (spec.md §4.3). It consumes
// expression text directly into ast.Node trees; there is no separate
// tokenizer pass — the grammar mixes too many locally-scoped
// sub-languages ($(...), @(...), %(...), quoted strings with their own
// nested sub-parses) for a flat token stream to drive, so the parser
// walks a single character cursor itself, calling into the lexer
// package's pure classification and greedy-extraction helpers one
// syntactic position at a time.
//
// Grammar (non-associative comparisons, 'or' lowest precedence):
//
//	Expr      := AndExpr ( 'or' AndExpr )*
//	AndExpr   := CmpExpr ( 'and' CmpExpr )*
//	CmpExpr   := Unary ( RelOp Unary )?
//	Unary     := '!' Unary | '(' Expr ')' | Argument
//	Argument  := Property | Metadata | ItemList | Quoted | Number | Ident
package parser

import (
	"strings"

	"github.com/gomsbuild/condeval/ast"
	"github.com/gomsbuild/condeval/lexer"
)

// Parser holds the state for one parse: the cursor position, the option
// bitmask, and the first Error encountered (if any). A Parser is single
// use — construct a fresh one per call to Parse/TryParse.
type Parser struct {
	src     string
	pos     int // 0-based byte offset into src
	options Options
	warn    WarnFunc

	err *Error

	parenDepth int
	sawAnd     bool
	sawOr      bool
	warned     bool
}

// Parse parses text under options and returns the resulting expression
// tree, or an error describing the first problem found. Parse always
// requires AllowProperties; it is OR'd into options regardless of what
// the caller passed.
func Parse(text string, options Options, warn WarnFunc) (ast.Node, error) {
	node, perr := parseInternal(text, options, warn)
	if perr != nil {
		return nil, perr
	}
	return node, nil
}

// TryParse is the non-throwing counterpart to Parse: it returns the same
// Error (identical Key and Position) without wrapping it as a Go error,
// for callers that want to branch on the structured value directly.
func TryParse(text string, options Options, warn WarnFunc) (ast.Node, *Error) {
	return parseInternal(text, options, warn)
}

func parseInternal(text string, options Options, warn WarnFunc) (ast.Node, *Error) {
	p := &Parser{src: text, options: options | AllowProperties, warn: warn}

	node := p.parseExpr()

	if p.err == nil {
		p.skipWS()
		if !p.atEnd() {
			p.fail(UnexpectedToken, p.pos1(), p.src[p.pos:])
		}
	}

	if p.err != nil {
		return nil, p.err
	}

	if p.sawAnd && p.sawOr && !p.warned && p.warn != nil {
		p.warned = true
		p.warn(ConditionMaybeEvaluatedIncorrectly)
	}

	return node, nil
}

// --- cursor primitives ---

func (p *Parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *Parser) cur() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) rest() string { return p.src[p.pos:] }

// pos1 is the 1-based character position of the cursor, the convention
// every Error.Position uses.
func (p *Parser) pos1() int { return p.pos + 1 }

func (p *Parser) advance(n int) { p.pos += n }

func (p *Parser) skipWS() {
	for !p.atEnd() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

// fail records the first Error seen during this parse; subsequent calls
// are no-ops, matching spec.md §4.4's "report the first error and
// cease." It always returns nil so call sites can `return p.fail(...)`.
func (p *Parser) fail(key string, position int, args ...interface{}) ast.Node {
	if p.err == nil {
		p.err = &Error{Key: key, Position: position, Args: args}
	}
	return nil
}

func (p *Parser) failErr(e *Error) ast.Node {
	if p.err == nil {
		p.err = e
	}
	return nil
}

func (p *Parser) newError(key string, position int, args ...interface{}) *Error {
	return &Error{Key: key, Position: position, Args: args}
}

// matchKeyword reports whether kw (case-insensitive) matches at the
// current position with a word boundary following it (so "android" does
// not match keyword "and"). It first skips leading whitespace; on match
// it consumes kw (not the whitespace after it) and returns true. On
// mismatch the skipped whitespace stays consumed, so callers restore the
// cursor themselves.
func (p *Parser) matchKeyword(kw string) bool {
	p.skipWS()
	rest := p.rest()
	if len(rest) < len(kw) || !strings.EqualFold(rest[:len(kw)], kw) {
		return false
	}
	if len(rest) > len(kw) && lexer.IsIdentifierChar(rest[len(kw)]) {
		return false
	}
	p.advance(len(kw))
	return true
}

// matchOp reports whether the literal operator op matches at the current
// position (no word-boundary check — operators are punctuation, not
// identifiers). On match it consumes op.
func (p *Parser) matchOp(op string) bool {
	rest := p.rest()
	if len(rest) < len(op) || rest[:len(op)] != op {
		return false
	}
	p.advance(len(op))
	return true
}

// --- grammar: Expr / AndExpr / CmpExpr ---

func (p *Parser) parseExpr() ast.Node {
	left := p.parseAnd()
	if p.err != nil {
		return nil
	}
	for {
		save := p.pos
		if !p.matchKeyword("or") {
			p.pos = save
			break
		}
		right := p.parseAnd()
		if p.err != nil {
			return nil
		}
		if p.parenDepth == 0 {
			p.sawOr = true
		}
		left = ast.NewOrNode(left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseCmp()
	if p.err != nil {
		return nil
	}
	for {
		save := p.pos
		if !p.matchKeyword("and") {
			p.pos = save
			break
		}
		right := p.parseCmp()
		if p.err != nil {
			return nil
		}
		if p.parenDepth == 0 {
			p.sawAnd = true
		}
		left = ast.NewAndNode(left, right)
	}
	return left
}

func (p *Parser) parseCmp() ast.Node {
	left := p.parseUnary()
	if p.err != nil {
		return nil
	}
	p.skipWS()

	switch {
	case p.matchOp("=="):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewEqNode(l, r) })
	case p.matchOp("!="):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewNeNode(l, r) })
	case p.matchOp("<="):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewLeNode(l, r) })
	case p.matchOp(">="):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewGeNode(l, r) })
	case p.matchOp("<"):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewLtNode(l, r) })
	case p.matchOp(">"):
		return p.finishCmp(left, func(l, r ast.Node) ast.Node { return ast.NewGtNode(l, r) })
	case p.cur() == '=':
		p.advance(1)
		return p.fail(IllFormedEquals, p.pos1())
	default:
		return left
	}
}

func (p *Parser) finishCmp(left ast.Node, build func(ast.Node, ast.Node) ast.Node) ast.Node {
	p.skipWS()
	right := p.parseUnary()
	if p.err != nil {
		return nil
	}
	return build(left, right)
}

// --- grammar: Unary / Argument ---

func (p *Parser) parseUnary() ast.Node {
	if p.err != nil {
		return nil
	}
	p.skipWS()

	switch p.cur() {
	case '!':
		p.advance(1)
		child := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return ast.NewNotNode(child)
	case '(':
		p.parenDepth++
		p.advance(1)
		inner := p.parseExpr()
		if p.err != nil {
			return nil
		}
		p.skipWS()
		if p.cur() != ')' {
			return p.fail(UnexpectedToken, p.pos1(), p.rest())
		}
		p.advance(1)
		p.parenDepth--
		return inner
	default:
		return p.parseArgument()
	}
}

func (p *Parser) parseArgument() ast.Node {
	if p.err != nil {
		return nil
	}
	p.skipWS()
	c := p.cur()

	switch {
	case c == '$':
		return p.parseProperty()
	case c == '%':
		return p.parseMetadataArgument()
	case c == '@':
		return p.parseItemListArgument()
	case c == '\'':
		return p.parseQuoted()
	case c == '0' && (p.peekAt(1) == 'x' || p.peekAt(1) == 'X'):
		if text, length, ok := lexer.TryLexHexNumber(p.rest()); ok {
			p.advance(length)
			return ast.NewNumericNode(text)
		}
		return p.fail(UnexpectedToken, p.pos1(), p.rest())
	case lexer.IsDecimalNumberStart(c):
		if text, length, ok := lexer.TryLexDecimalNumber(p.rest()); ok {
			p.advance(length)
			return ast.NewNumericNode(text)
		}
		return p.fail(UnexpectedToken, p.pos1(), p.rest())
	case lexer.IsIdentifierStart(c):
		return p.parseIdentOrFunctionCall()
	default:
		return p.fail(UnexpectedToken, p.pos1(), p.rest())
	}
}

func (p *Parser) peekAt(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

// parseIdentOrFunctionCall consumes a bare identifier. It becomes a
// Boolean node if it is one of the boolean keywords, a FunctionCall node
// if the next non-whitespace character is '(', and otherwise a non-expandable String
// node (spec.md §8: a bare identifier parses the same as a quoted
// literal of the same text, minus boolean-keyword recognition inside
// quotes — which bare identifiers get too, since the keyword set is
// identical either way).
func (p *Parser) parseIdentOrFunctionCall() ast.Node {
	text, length, ok := lexer.TryLexIdentifier(p.rest())
	if !ok {
		return p.fail(UnexpectedToken, p.pos1(), p.rest())
	}
	startPos := p.pos
	p.advance(length)

	if val, isBool := ast.ParseBoolKeyword(text); isBool {
		return ast.NewBooleanNode(val, text)
	}

	save := p.pos
	p.skipWS()
	if p.cur() != '(' {
		p.pos = save
		return ast.NewStringNode(text, false)
	}
	p.advance(1)

	var args []ast.Node
	p.skipWS()
	if p.cur() != ')' {
		for {
			arg := p.parseArgument()
			if p.err != nil {
				return nil
			}
			args = append(args, arg)
			p.skipWS()
			if p.cur() == ',' {
				p.advance(1)
				p.skipWS()
				continue
			}
			break
		}
	}
	p.skipWS()
	if p.cur() != ')' {
		return p.fail(UnexpectedToken, p.pos1(), p.rest())
	}
	p.advance(1)

	if arity, known := ast.KnownFunctionArity(text); known {
		if len(args) != arity {
			return p.fail(IncorrectNumberOfFunctionArguments, startPos+1, text, arity, len(args))
		}
		return ast.NewFunctionCallNode(text, args, true)
	}

	if p.options.has(AllowUndefinedFunctions) {
		return ast.NewFunctionCallNode(text, args, false)
	}
	return p.fail(UndefinedFunctionCall, startPos+1, text)
}
