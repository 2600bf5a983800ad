package query

import "fmt"

// Parse parses a query string into an expression AST.
//
// Grammar:
//
//	expr   := and ( OR and )*
//	and    := not ( [AND] not )*
//	not    := NOT not | primary
//	primary:= '(' expr ')' | clause
//	clause := field ':' value [ '..' value ] | value
func Parse(input string) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, pos: 0}
	if p.match(TokEOF) {
		return nil, fmt.Errorf("empty query")
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.match(TokEOF) {
		return nil, fmt.Errorf("unexpected %v after expression", p.current().Kind)
	}
	return expr, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.match(TokOr) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(TokAnd) {
			p.advance()
		} else if !p.startsPrimary() {
			break
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.match(TokNot) {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not{Inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	if p.match(TokLParen) {
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.match(TokRParen) {
			return nil, fmt.Errorf("expected ')', got %v", p.current().Kind)
		}
		p.advance()
		return expr, nil
	}
	return p.parseClause()
}

func (p *parser) parseClause() (Expr, error) {
	first, ok := p.value()
	if !ok {
		return nil, fmt.Errorf("expected term, got %v", p.current().Kind)
	}
	if p.current().Kind != TokIdent || !p.peekIs(1, TokColon) {
		p.advance()
		return Clause{Value: first}, nil
	}
	p.advance() // field
	p.advance() // colon

	lower, ok := p.value()
	if !ok {
		return nil, fmt.Errorf("expected value after %s:, got %v", first, p.current().Kind)
	}
	p.advance()
	if !p.match(TokDotDot) {
		return Clause{Field: first, Value: lower}, nil
	}
	p.advance()
	upper, ok := p.value()
	if !ok {
		return nil, fmt.Errorf("expected upper bound after %s:%s.., got %v", first, lower, p.current().Kind)
	}
	p.advance()
	return Range{Field: first, Lower: lower, Upper: upper}, nil
}

// value returns the text of the current token when it can stand for a value.
func (p *parser) value() (string, bool) {
	switch tok := p.current(); tok.Kind {
	case TokIdent, TokString, TokNumber:
		return tok.Value, true
	default:
		return "", false
	}
}

func (p *parser) startsPrimary() bool {
	switch p.current().Kind {
	case TokIdent, TokString, TokNumber, TokLParen, TokNot:
		return true
	default:
		return false
	}
}

func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Kind: TokEOF}
}

func (p *parser) peekIs(offset int, kind TokenKind) bool {
	pos := p.pos + offset
	return pos < len(p.tokens) && p.tokens[pos].Kind == kind
}

func (p *parser) match(kind TokenKind) bool {
	return p.current().Kind == kind
}

func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}
