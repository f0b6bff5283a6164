/*
File    : condeval/parser/parser_args.go
*/
package parser

import (
	"strings"

	"github.com/gomsbuild/condeval/ast"
)

// referenceShape parameterizes the shared span-scanning routine used by
// Property, Metadata, and ItemList arguments: the three productions
// differ only in which error keys they report for a missing open/close
// parenthesis, an unterminated embedded quote, and illegal whitespace.
type referenceShape struct {
	openParenErr  string
	closeParenErr string
	quoteErr      string
	spaceErr      string
}

// scanReferenceSpan is positioned on the prefix character ('$', '%', or
// '@') and consumes PREFIX '(' BODY ')'. BODY may itself contain balanced
// parentheses (item-transform function calls) and single-quoted
// sub-strings; a quote suspends paren counting entirely, so a ')'
// inside a quoted sub-string never closes the reference early (spec.md
// §4.3.2). Whitespace directly in the body, outside any nested parens or
// quotes, is illegal for a bare name reference — once something other
// than an identifier/name character has been seen anywhere at the top
// level (a '.', a nested call, a quote), whitespace becomes legal for
// the whole body, since it is then a compound expression rather than a
// bare name; this is a property of the body as a whole, so the
// whitespace check is deferred until the span has been fully scanned
// rather than decided at the point the whitespace is seen.
//
// On success it returns true with the cursor positioned just past the
// consumed ')'; on failure it records an Error and returns false.
func (p *Parser) scanReferenceSpan(shape referenceShape) bool {
	p.advance(1) // consume '$' / '%' / '@'
	if p.cur() != '(' {
		p.fail(shape.openParenErr, p.pos1())
		return false
	}
	p.advance(1)

	depth := 0
	inQuote := false
	nonIdentSeen := false
	wsSeen := false
	wsPos := 0

	for {
		if p.atEnd() {
			if inQuote && shape.quoteErr != "" {
				p.fail(shape.quoteErr, p.pos1())
			} else {
				p.fail(shape.closeParenErr, p.pos1())
			}
			return false
		}

		c := p.cur()

		if inQuote {
			if c == '\'' {
				inQuote = false
			}
			p.advance(1)
			continue
		}

		switch {
		case c == '\'':
			inQuote = true
			nonIdentSeen = true
			p.advance(1)
		case c == '(':
			depth++
			nonIdentSeen = true
			p.advance(1)
		case c == ')':
			if depth == 0 {
				if wsSeen && !nonIdentSeen {
					p.fail(shape.spaceErr, wsPos)
					return false
				}
				p.advance(1)
				return true
			}
			depth--
			p.advance(1)
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			if depth == 0 && !wsSeen {
				wsSeen = true
				wsPos = p.pos1()
			}
			p.advance(1)
		case c == '.':
			if depth == 0 {
				nonIdentSeen = true
			}
			p.advance(1)
		default:
			if depth == 0 && c != '_' && c != '-' && c != ':' && !isASCIIAlnum(c) {
				nonIdentSeen = true
			}
			p.advance(1)
		}
	}
}

func isASCIIAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// consumePropertyRef scans a $(...) span at the current cursor, reporting
// the Property-flavored error keys on failure.
func (p *Parser) consumePropertyRef() bool {
	return p.scanReferenceSpan(referenceShape{
		openParenErr:  IllFormedPropertyOpenParenthesis,
		closeParenErr: IllFormedPropertyCloseParenthesis,
		spaceErr:      IllFormedSpace,
	})
}

// consumeMetadataRef scans a %(...) span at the current cursor and checks
// whether the referenced name (the part after an optional "ItemType.") is
// one of the fixed built-in names or a custom one, reporting
// ItemMetadataNotAllowed when the current options allow neither kind,
// and BuiltInMetadataNotAllowed/CustomMetadataNotAllowed when they
// forbid only that kind.
func (p *Parser) consumeMetadataRef() bool {
	startPos := p.pos
	bodyStart := p.pos + 2 // past "%("
	if !p.scanReferenceSpan(referenceShape{
		openParenErr:  IllFormedItemMetadataOpenParenthesis,
		closeParenErr: IllFormedItemMetadataCloseParenthesis,
		spaceErr:      IllFormedSpace,
	}) {
		return false
	}
	raw := strings.TrimSpace(p.src[bodyStart : p.pos-1])

	name := raw
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		name = raw[dot+1:]
	}

	if !p.options.has(AllowItemMetadata) {
		p.fail(ItemMetadataNotAllowed, startPos+1)
		return false
	}
	if isBuiltInMetadataName(name) {
		if !p.options.has(AllowBuiltInMetadata) {
			p.fail(BuiltInMetadataNotAllowed, startPos+1)
			return false
		}
	} else if !p.options.has(AllowCustomMetadata) {
		p.fail(CustomMetadataNotAllowed, startPos+1)
		return false
	}
	return true
}

// consumeItemListRef scans an @(...) span at the current cursor, gated on
// AllowItemLists.
func (p *Parser) consumeItemListRef() bool {
	startPos := p.pos
	if !p.options.has(AllowItemLists) {
		p.fail(ItemListNotAllowed, startPos+1)
		return false
	}
	return p.scanReferenceSpan(referenceShape{
		openParenErr:  IllFormedItemListOpenParenthesis,
		closeParenErr: IllFormedItemListCloseParenthesis,
		quoteErr:      IllFormedItemListQuote,
		spaceErr:      IllFormedSpace,
	})
}

// parseProperty parses a $(...) reference into an expandable StringNode
// spanning the raw source text, including the "$(" and ")" delimiters;
// expansion itself is the evaluator's job via its ExpansionContext.
func (p *Parser) parseProperty() ast.Node {
	startPos := p.pos
	if !p.consumePropertyRef() {
		return nil
	}
	return ast.NewStringNode(p.src[startPos:p.pos], true)
}

// parseMetadataArgument parses a %(...) reference.
func (p *Parser) parseMetadataArgument() ast.Node {
	startPos := p.pos
	if !p.consumeMetadataRef() {
		return nil
	}
	return ast.NewStringNode(p.src[startPos:p.pos], true)
}

// parseItemListArgument parses an @(...) reference.
func (p *Parser) parseItemListArgument() ast.Node {
	startPos := p.pos
	if !p.consumeItemListRef() {
		return nil
	}
	return ast.NewStringNode(p.src[startPos:p.pos], true)
}

// parseQuoted parses a single-quoted literal. The body is scanned
// character by character at this parser's own cursor; whenever it meets
// a "$(", "%(", or "@(" it delegates to the same consumeXRef routine a
// bare top-level argument would use, so a custom metadata reference or
// an item list inside a quoted string is validated against AllowItemLists
// and AllowBuiltInMetadata/AllowCustomMetadata exactly like it would be
// outside one, and reports the same error keys at the right position.
// The outer loop only ever advances past a reference as a whole (the
// consume routines move the cursor themselves, including past any
// embedded quotes an item-list transform suspends paren-counting for),
// so it always resumes looking for the closing quote from the right
// place.
//
// A body that, after trimming whitespace and an optional leading '!',
// matches one of the boolean keywords becomes a BooleanNode instead of a
// StringNode, provided the body has no reference to expand — spec.md's
// GLOSSARY example 'TrUe' negated to '!TrUe' evaluates to Boolean(false)
// this way.
func (p *Parser) parseQuoted() ast.Node {
	startPos := p.pos
	p.advance(1) // consume opening quote

	bodyStart := p.pos
	sawReference := false

scan:
	for {
		if p.atEnd() {
			return p.fail(IllFormedQuotedString, startPos+1)
		}
		switch c := p.cur(); {
		case c == '\'':
			break scan
		case c == '$' && p.peekAt(1) == '(':
			sawReference = true
			if !p.consumePropertyRef() {
				return nil
			}
		case c == '%' && p.peekAt(1) == '(':
			sawReference = true
			if !p.consumeMetadataRef() {
				return nil
			}
		case c == '@' && p.peekAt(1) == '(':
			sawReference = true
			if !p.consumeItemListRef() {
				return nil
			}
		default:
			p.advance(1)
		}
	}

	body := p.src[bodyStart:p.pos]
	p.advance(1) // consume closing quote

	expandable := sawReference || strings.Contains(body, "%")
	if !expandable {
		check := strings.TrimSpace(body)
		negate := strings.HasPrefix(check, "!")
		if negate {
			check = check[1:]
		}
		if val, isBool := ast.ParseBoolKeyword(check); isBool {
			if negate {
				val = !val
			}
			return ast.NewBooleanNode(val, body)
		}
	}

	return ast.NewStringNode(body, expandable)
}
