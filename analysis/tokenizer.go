package analysis

import (
	"strings"
	"unicode"
)

// Token is one lower-cased word of a text value and its position within it.
type Token struct {
	Text     string
	Position int
}

// Tokenize splits text on every rune that is neither a letter nor a digit
// and lower-cases the pieces. The indexer and the query compiler both call
// it, so a query word produces the same term as the indexed word.
func Tokenize(text string) []Token {
	var tokens []Token
	sb := &strings.Builder{}
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, Token{Text: sb.String(), Position: len(tokens)})
			sb.Reset()
		}
	}
	for _, ch := range text {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			sb.WriteRune(unicode.ToLower(ch))
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// Frequencies groups tokens by text. Positions are kept in ascending order.
func Frequencies(tokens []Token) map[string][]int {
	out := make(map[string][]int, len(tokens))
	for _, tok := range tokens {
		out[tok.Text] = append(out[tok.Text], tok.Position)
	}
	return out
}
