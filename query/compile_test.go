package query

import (
	"testing"

	"github.com/ministore/fieldstore/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch := schema.NewSchema()
	for _, add := range []func() (schema.Field, error){
		func() (schema.Field, error) { return sch.AddTextField("title", schema.TEXT.Or(schema.STORED)) },
		func() (schema.Field, error) { return sch.AddTextField("url", schema.STRING) },
		func() (schema.Field, error) { return sch.AddU32Field("year", schema.NewU32Options().SetIndexed()) },
		func() (schema.Field, error) { return sch.AddU32Field("rank", schema.FAST) },
		func() (schema.Field, error) { return sch.AddTextField("body", schema.TEXT) },
	} {
		if _, err := add(); err != nil {
			t.Fatal(err)
		}
	}
	return sch
}

func TestCompileTokenizedText(t *testing.T) {
	sch := testSchema(t)
	q, err := ParseAndCompile(sch, "title:Hello")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	tq, ok := q.(TermQuery)
	if !ok {
		t.Fatalf("expected TermQuery, got %T", q)
	}
	if !tq.Term.Equal(schema.TermFromText(0, "hello")) {
		t.Fatalf("term = %v", tq.Term)
	}

	q, err = ParseAndCompile(sch, `title:"Hello World"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, ok := q.(AndQuery); !ok {
		t.Fatalf("multi-token value should compile to AndQuery, got %T", q)
	}

	q, err = ParseAndCompile(sch, `title:"..."`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, ok := q.(EmptyQuery); !ok {
		t.Fatalf("value without tokens should match nothing, got %T", q)
	}
}

func TestCompileUntokenizedKeepsValue(t *testing.T) {
	sch := testSchema(t)
	q, err := ParseAndCompile(sch, `url:"HTTP://Example.com/A B"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !q.(TermQuery).Term.Equal(schema.TermFromText(1, "HTTP://Example.com/A B")) {
		t.Fatalf("untokenized value was altered: %v", q)
	}
}

func TestCompileU32(t *testing.T) {
	sch := testSchema(t)
	q, err := ParseAndCompile(sch, "year:1999")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !q.(TermQuery).Term.Equal(schema.TermFromU32(2, 1999)) {
		t.Fatalf("term = %v", q)
	}
	if _, err := ParseAndCompile(sch, "year:abc"); !schema.IsKind(err, schema.ErrFieldTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	if _, err := ParseAndCompile(sch, "year:4294967296"); !schema.IsKind(err, schema.ErrFieldTypeMismatch) {
		t.Fatalf("expected type mismatch for overflow, got %v", err)
	}
}

func TestCompileRange(t *testing.T) {
	sch := testSchema(t)
	q, err := ParseAndCompile(sch, "year:1990..2000")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	r := q.(RangeQuery)
	if !r.Lower.Equal(schema.TermFromU32(2, 1990)) || !r.Upper.Equal(schema.TermFromU32(2, 2001)) {
		t.Fatalf("range = %v .. %v", r.Lower, r.Upper)
	}

	q, err = ParseAndCompile(sch, "year:5..4294967295")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	r = q.(RangeQuery)
	if schema.TermFromU32(2, 4294967295).Compare(r.Upper) >= 0 {
		t.Fatal("upper bound must exclude nothing of the field")
	}
	if schema.TermFromU32(3, 0).Compare(r.Upper) < 0 {
		t.Fatal("upper bound must exclude the next field")
	}

	if q, _ := ParseAndCompile(sch, "year:10..1"); q != (EmptyQuery{}) {
		t.Fatalf("inverted range = %#v", q)
	}
	if _, err := ParseAndCompile(sch, "title:a..b"); !schema.IsKind(err, schema.ErrFieldTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestCompileDefaultFields(t *testing.T) {
	sch := testSchema(t)
	q, err := ParseAndCompile(sch, "hello")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	or, ok := q.(OrQuery)
	if !ok {
		t.Fatalf("expected OrQuery over title and body, got %T", q)
	}
	if !or.Left.(TermQuery).Term.Equal(schema.TermFromText(0, "hello")) ||
		!or.Right.(TermQuery).Term.Equal(schema.TermFromText(4, "hello")) {
		t.Fatalf("unexpected default field expansion %#v", or)
	}
}

func TestCompileRejects(t *testing.T) {
	sch := testSchema(t)
	if _, err := ParseAndCompile(sch, "missing:1"); !schema.IsKind(err, schema.ErrUnknownField) {
		t.Fatalf("expected unknown field, got %v", err)
	}
	if _, err := ParseAndCompile(sch, "rank:1"); !schema.IsKind(err, schema.ErrQueryParse) {
		t.Fatalf("expected not-indexed rejection, got %v", err)
	}
	if _, err := ParseAndCompile(sch, "title:("); !schema.IsKind(err, schema.ErrQueryParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	empty := schema.NewSchema()
	if _, err := ParseAndCompile(empty, "hello"); !schema.IsKind(err, schema.ErrQueryParse) {
		t.Fatalf("expected no default field error, got %v", err)
	}
}
