package syntax

import (
	"strings"

	"github.com/fireproofsocks/unicode-set/seterr"
)

// maxDepth bounds nested '[' recursion (§4.C, §7 DepthExceeded).
const maxDepth = 64

// Parser turns a tokenized pattern into an AST. Grounded on the recursive
// descent shape of quasilyte/regex/syntax's Parser, replacing its
// precedence-climbing expression grammar with the bracketed set grammar
// from §4.C: brackets nest via parseSet, and & / - fold left-associatively
// at equal precedence inside a single Set's Children.
type Parser struct {
	lexer lexer
	depth int
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a complete Unicode Set pattern. The outermost '[' must be the
// pattern's first byte and nothing (not even whitespace) may follow the
// matching outermost ']' (§6).
func (p *Parser) Parse(pattern string) (*AST, *seterr.Error) {
	if len(pattern) == 0 || pattern[0] != '[' {
		return nil, seterr.New(seterr.UnbalancedBracket, 0, "pattern must begin with '['")
	}

	p.lexer = lexer{}
	p.depth = 0
	if err := p.lexer.Init(pattern); err != nil {
		return nil, err
	}

	root, err := p.parseSet()
	if err != nil {
		return nil, err
	}
	if root.Pos.End != len(pattern) {
		return nil, seterr.New(seterr.UnbalancedBracket, root.Pos.End, "unexpected input after closing ']'")
	}

	return &AST{Source: pattern, Root: root}, nil
}

// parseSet parses one bracketed set, starting at the pending '[' token
// (§4.C: set := '[' negation? body ']').
func (p *Parser) parseSet() (Node, *seterr.Error) {
	open := p.lexer.NextToken()
	if open.kind != tokLBracket {
		return Node{}, seterr.New(seterr.UnbalancedBracket, open.pos.Begin, "expected '['")
	}

	p.depth++
	if p.depth > maxDepth {
		return Node{}, seterr.New(seterr.DepthExceeded, open.pos.Begin, "bracket nesting exceeds limit of %d", maxDepth)
	}
	defer func() { p.depth-- }()

	negated := false
	if p.lexer.Peek().kind == tokCaretInitial {
		p.lexer.NextToken()
		negated = true
	}

	if p.lexer.Peek().kind == tokRBracket {
		close := p.lexer.NextToken()
		return Node{Op: OpSet, Pos: combinePos(open.pos, close.pos), Negated: negated}, nil
	}

	var children []Node
	first, err := p.parseElement()
	if err != nil {
		return Node{}, err
	}
	children = append(children, first)

	for {
		next := p.lexer.Peek()
		if next.kind == tokRBracket {
			break
		}
		if next.kind == tokEOF {
			return Node{}, seterr.New(seterr.UnbalancedBracket, open.pos.Begin, "unterminated '['")
		}

		kind := UnionImplicit
		explicit := false
		switch next.kind {
		case tokAmp:
			kind, explicit = Intersect, true
			p.lexer.NextToken()
		case tokDash:
			kind, explicit = Difference, true
			p.lexer.NextToken()
		}

		if explicit && !isSetNode(children[len(children)-1]) {
			return Node{}, seterr.New(seterr.OperatorNeedsSet, children[len(children)-1].Pos.Begin, "operator %q requires its left operand to be a bracketed set or property expression", kind)
		}

		opPos := next.pos
		if !explicit {
			opPos = Position{Begin: next.pos.Begin, End: next.pos.Begin}
		}
		children = append(children, Node{Op: OpOperator, Pos: opPos, Kind: kind})

		right, err := p.parseElement()
		if err != nil {
			return Node{}, err
		}
		if explicit && !isSetNode(right) {
			return Node{}, seterr.New(seterr.OperatorNeedsSet, right.Pos.Begin, "operator %q requires its right operand to be a bracketed set or property expression", kind)
		}
		children = append(children, right)
	}

	close := p.lexer.NextToken()
	return Node{Op: OpSet, Pos: combinePos(open.pos, close.pos), Negated: negated, Children: children}, nil
}

func isSetNode(n Node) bool {
	return n.Op == OpSet || n.Op == OpPropertyRef
}

// parseElement parses one set member: a nested set, a POSIX or \p{}
// property reference, a string literal, or a plain char/range.
func (p *Parser) parseElement() (Node, *seterr.Error) {
	tok := p.lexer.Peek()
	switch tok.kind {
	case tokLBracket:
		return p.parseSet()
	case tokPosixOpen:
		return p.parsePosixProperty()
	case tokBackslashP:
		p.lexer.NextToken()
		return p.buildPropertyRef(tok)
	case tokLBrace:
		return p.parseStringLiteral()
	case tokChar:
		return p.parseCharOrRange()
	case tokDash, tokAmp:
		return Node{}, seterr.New(seterr.OperatorNeedsSet, tok.pos.Begin, "operator %q requires set operands on both sides", tok.kind)
	default:
		return Node{}, seterr.New(seterr.UnbalancedBracket, tok.pos.Begin, "expected a set element, found %s", tok.kind)
	}
}

// parseCharOrRange parses a single CHAR token, folding a following
// DASH+CHAR pair into a Range (§4.C). A DASH that isn't followed by a
// plain CHAR is left for the caller to treat as the difference operator.
func (p *Parser) parseCharOrRange() (Node, *seterr.Error) {
	first := p.lexer.NextToken()

	if p.lexer.Peek().kind == tokDash && p.lexer.PeekAt(1).kind == tokChar {
		dash := p.lexer.NextToken()
		second := p.lexer.NextToken()
		if second.codepoint < first.codepoint {
			return Node{}, seterr.New(seterr.EmptyRange, dash.pos.Begin, "range lower bound U+%04X exceeds upper bound U+%04X", first.codepoint, second.codepoint)
		}
		return Node{
			Op:      OpRange,
			Pos:     combinePos(first.pos, second.pos),
			Lo:      first.codepoint,
			Hi:      second.codepoint,
			Literal: first.literal || second.literal,
		}, nil
	}

	return Node{Op: OpLiteral, Pos: first.pos, Codepoint: first.codepoint, Literal: first.literal}, nil
}

// parsePosixProperty parses '[:' negation? name ':]' (§4.C).
func (p *Parser) parsePosixProperty() (Node, *seterr.Error) {
	open := p.lexer.NextToken()

	var nameRunes []rune
	for {
		next := p.lexer.Peek()
		if next.kind == tokPosixClose {
			break
		}
		if next.kind == tokEOF || next.kind == tokRBracket {
			return Node{}, seterr.New(seterr.UnbalancedBracket, open.pos.Begin, "unterminated '[:'")
		}
		if next.kind != tokChar {
			return Node{}, seterr.New(seterr.UnbalancedBracket, next.pos.Begin, "unexpected %s inside '[:...:]'", next.kind)
		}
		nameRunes = append(nameRunes, p.lexer.NextToken().codepoint)
	}
	close := p.lexer.NextToken()

	name := string(nameRunes)
	if strings.TrimSpace(name) == "" {
		return Node{}, seterr.New(seterr.EmptyPropertyName, open.pos.Begin, "empty property name in '[::]'")
	}
	typ, value := splitPropertyBody(name)

	return Node{
		Op:        OpPropertyRef,
		Pos:       combinePos(open.pos, close.pos),
		PropType:  typ,
		PropValue: value,
		Negated:   open.negated,
	}, nil
}

// buildPropertyRef resolves the already-lexed raw body of a \p{...}/\P{...}
// token (§4.B: body parsing is the parser's job, not the lexer's).
func (p *Parser) buildPropertyRef(tok token) (Node, *seterr.Error) {
	if strings.TrimSpace(tok.text) == "" {
		return Node{}, seterr.New(seterr.EmptyPropertyName, tok.pos.Begin, `empty property name in '\p{}'`)
	}
	typ, value := splitPropertyBody(tok.text)
	return Node{
		Op:        OpPropertyRef,
		Pos:       tok.pos,
		PropType:  typ,
		PropValue: value,
		Negated:   tok.negated,
	}, nil
}

// splitPropertyBody splits "type=value" property text on its first '=',
// falling back to the CategoryOrScript sentinel ("") when absent.
func splitPropertyBody(raw string) (typ, value string) {
	if idx := strings.IndexByte(raw, '='); idx >= 0 {
		return raw[:idx], raw[idx+1:]
	}
	return "", raw
}

// parseStringLiteral parses '{' codepoint+ '}'. A single-codepoint body
// collapses to a Literal (§3: "a one-codepoint string is just a literal").
func (p *Parser) parseStringLiteral() (Node, *seterr.Error) {
	open := p.lexer.NextToken()

	var runes []rune
	for {
		next := p.lexer.Peek()
		if next.kind == tokRBrace {
			break
		}
		if next.kind == tokEOF || next.kind == tokRBracket {
			return Node{}, seterr.New(seterr.UnbalancedBrace, open.pos.Begin, "unterminated '{'")
		}
		if next.kind != tokChar {
			return Node{}, seterr.New(seterr.UnbalancedBrace, next.pos.Begin, "unexpected %s inside '{...}'", next.kind)
		}
		runes = append(runes, p.lexer.NextToken().codepoint)
	}
	close := p.lexer.NextToken()

	if len(runes) == 0 {
		return Node{}, seterr.New(seterr.UnbalancedBrace, open.pos.Begin, "empty string literal '{}'")
	}
	if len(runes) == 1 {
		return Node{Op: OpLiteral, Pos: combinePos(open.pos, close.pos), Codepoint: runes[0]}, nil
	}
	return Node{Op: OpStringLiteral, Pos: combinePos(open.pos, close.pos), Runes: runes}, nil
}
