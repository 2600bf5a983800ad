package query

import (
	"fmt"
	"strings"
	"unicode"
)

// Token is one lexeme of a query. Pos is its rune offset in the input.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

type TokenKind int

const (
	TokIdent TokenKind = iota
	TokString
	TokNumber
	TokColon
	TokAnd
	TokOr
	TokNot
	TokLParen
	TokRParen
	TokDotDot
	TokEOF
)

var tokenNames = [...]string{
	TokIdent:  "Ident",
	TokString: "String",
	TokNumber: "Number",
	TokColon:  "Colon",
	TokAnd:    "And",
	TokOr:     "Or",
	TokNot:    "Not",
	TokLParen: "LParen",
	TokRParen: "RParen",
	TokDotDot: "DotDot",
	TokEOF:    "EOF",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "Unknown"
}

// punctuation maps single-rune operators to their kind. & | ! are accepted
// as shorthands for AND OR NOT.
var punctuation = map[rune]TokenKind{
	':': TokColon,
	'(': TokLParen,
	')': TokRParen,
	'&': TokAnd,
	'|': TokOr,
	'!': TokNot,
}

var keywords = map[string]TokenKind{
	"AND": TokAnd,
	"OR":  TokOr,
	"NOT": TokNot,
}

type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Lex tokenizes the entire input. The last token is always TokEOF.
func Lex(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	start := l.pos
	if start >= len(l.input) {
		return Token{Kind: TokEOF, Pos: start}, nil
	}

	ch := l.input[start]
	switch {
	case punctuation[ch] != 0:
		l.pos++
		return Token{Kind: punctuation[ch], Pos: start}, nil
	case ch == '"':
		return l.scanString()
	case ch == '.' && l.at(start+1) == '.':
		l.pos += 2
		return Token{Kind: TokDotDot, Pos: start}, nil
	case isWordChar(ch):
		return l.scanWord(), nil
	}
	return Token{}, fmt.Errorf("unexpected character %q at %d", ch, start)
}

func (l *Lexer) at(pos int) rune {
	if pos < len(l.input) {
		return l.input[pos]
	}
	return 0
}

// scanString reads a double quoted string. A backslash escapes the next
// rune; \n and \t stand for newline and tab.
func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	var sb strings.Builder
	for l.pos++; l.pos < len(l.input); l.pos++ {
		ch := l.input[l.pos]
		switch {
		case ch == '"':
			l.pos++
			return Token{Kind: TokString, Value: sb.String(), Pos: start}, nil
		case ch == '\\' && l.pos+1 < len(l.input):
			l.pos++
			switch esc := l.input[l.pos]; esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return Token{}, fmt.Errorf("unterminated string starting at %d", start)
}

// scanWord reads an identifier, a keyword or an unsigned integer. A ".."
// ends the word so that 1..10 lexes as a range.
func (l *Lexer) scanWord() Token {
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		if l.input[l.pos] == '.' && l.at(l.pos+1) == '.' {
			break
		}
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if kind, ok := keywords[strings.ToUpper(value)]; ok {
		return Token{Kind: kind, Pos: start}
	}
	if isDigits(value) {
		return Token{Kind: TokNumber, Value: value, Pos: start}
	}
	return Token{Kind: TokIdent, Value: value, Pos: start}
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '-' || ch == '.' || ch == '/'
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return s != ""
}
