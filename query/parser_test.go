package query

import (
	"testing"
)

func TestParseClause(t *testing.T) {
	expr, err := Parse("title:hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := expr.(Clause)
	if !ok {
		t.Fatalf("expected Clause, got %T", expr)
	}
	if c.Field != "title" || c.Value != "hello" {
		t.Errorf("expected title:hello, got %s:%s", c.Field, c.Value)
	}
}

func TestParseBareValue(t *testing.T) {
	expr, err := Parse(`"hello world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c, ok := expr.(Clause); !ok || c.Field != "" || c.Value != "hello world" {
		t.Fatalf("expected bare clause, got %#v", expr)
	}
}

func TestParseImplicitAnd(t *testing.T) {
	expr, err := Parse("a:1 b:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(And); !ok {
		t.Fatalf("expected And, got %T", expr)
	}
}

func TestParsePrecedence(t *testing.T) {
	expr, err := Parse("a:1 OR b:2 AND c:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	or, ok := expr.(Or)
	if !ok {
		t.Fatalf("expected Or at the root, got %T", expr)
	}
	if _, ok := or.Right.(And); !ok {
		t.Fatalf("expected And on the right, got %T", or.Right)
	}

	expr, err = Parse("(a:1 OR b:2) AND NOT c:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, ok := expr.(And)
	if !ok {
		t.Fatalf("expected And at the root, got %T", expr)
	}
	if _, ok := and.Left.(Or); !ok {
		t.Fatalf("expected Or on the left, got %T", and.Left)
	}
	if _, ok := and.Right.(Not); !ok {
		t.Fatalf("expected Not on the right, got %T", and.Right)
	}
}

func TestParseRange(t *testing.T) {
	expr, err := Parse("year:1990..2000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := expr.(Range)
	if !ok || r.Field != "year" || r.Lower != "1990" || r.Upper != "2000" {
		t.Fatalf("unexpected range %#v", expr)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "title:", "(a:1", "a:1 )", "year:1..", "AND"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}
