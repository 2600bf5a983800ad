package query

import (
	"testing"
)

func TestLexSimple(t *testing.T) {
	tokens, err := Lex("title:test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Tokens: Ident("title"), Colon, Ident("test"), EOF
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens (including EOF), got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokIdent || tokens[0].Value != "title" {
		t.Errorf("expected Ident(title), got %v", tokens[0])
	}
	if tokens[1].Kind != TokColon {
		t.Errorf("expected Colon, got %v", tokens[1])
	}
	if tokens[2].Kind != TokIdent || tokens[2].Value != "test" {
		t.Errorf("expected Ident(test), got %v", tokens[2])
	}
	if tokens[3].Kind != TokEOF {
		t.Errorf("expected EOF, got %v", tokens[3])
	}
}

func TestLexKeywords(t *testing.T) {
	tokens, err := Lex("a and b OR not c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenKind{TokIdent, TokAnd, TokIdent, TokOr, TokNot, TokIdent, TokEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tokens[i].Kind)
		}
	}
}

func TestLexString(t *testing.T) {
	tokens, err := Lex(`title:"hello \"world\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[2].Kind != TokString || tokens[2].Value != `hello "world"` {
		t.Errorf("expected String, got %v", tokens[2])
	}
	if _, err := Lex(`title:"open`); err == nil {
		t.Error("expected unterminated string error")
	}
}

func TestLexNumbersAndRange(t *testing.T) {
	tokens, err := Lex("year:1990..2000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[2].Kind != TokNumber || tokens[2].Value != "1990" {
		t.Errorf("expected Number(1990), got %v", tokens[2])
	}
	if tokens[3].Kind != TokDotDot {
		t.Errorf("expected DotDot, got %v", tokens[3])
	}
	if tokens[4].Kind != TokNumber || tokens[4].Value != "2000" {
		t.Errorf("expected Number(2000), got %v", tokens[4])
	}

	tokens, err = Lex("9lives v1.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != TokIdent || tokens[1].Kind != TokIdent || tokens[1].Value != "v1.2" {
		t.Errorf("expected identifiers, got %v", tokens)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	if _, err := Lex("title:#"); err == nil {
		t.Fatal("expected error")
	}
}
