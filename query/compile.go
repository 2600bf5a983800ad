package query

import (
	"fmt"
	"strconv"

	"github.com/ministore/fieldstore/analysis"
	"github.com/ministore/fieldstore/schema"
)

// Query is a compiled expression: every leaf is a term or a term range
// encoded exactly like the indexer encodes documents.
type Query interface {
	isQuery()
}

type TermQuery struct {
	Term schema.Term
}

// RangeQuery matches every term t with Lower <= t < Upper.
type RangeQuery struct {
	Lower schema.Term
	Upper schema.Term
}

type AndQuery struct {
	Left, Right Query
}

type OrQuery struct {
	Left, Right Query
}

type NotQuery struct {
	Inner Query
}

// EmptyQuery matches nothing.
type EmptyQuery struct{}

func (TermQuery) isQuery()  {}
func (RangeQuery) isQuery() {}
func (AndQuery) isQuery()   {}
func (OrQuery) isQuery()    {}
func (NotQuery) isQuery()   {}
func (EmptyQuery) isQuery() {}

// ParseAndCompile is Parse followed by Compile.
func ParseAndCompile(sch *schema.Schema, input string) (Query, error) {
	expr, err := Parse(input)
	if err != nil {
		return nil, schema.Wrap(schema.ErrQueryParse, "parse query", err)
	}
	return Compile(sch, expr)
}

// Compile resolves field names against sch and encodes values into terms.
func Compile(sch *schema.Schema, expr Expr) (Query, error) {
	switch e := expr.(type) {
	case And:
		l, r, err := compilePair(sch, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return AndQuery{Left: l, Right: r}, nil
	case Or:
		l, r, err := compilePair(sch, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return OrQuery{Left: l, Right: r}, nil
	case Not:
		inner, err := Compile(sch, e.Inner)
		if err != nil {
			return nil, err
		}
		return NotQuery{Inner: inner}, nil
	case Clause:
		if e.Field == "" {
			return compileDefaultFields(sch, e.Value)
		}
		field, entry, err := lookup(sch, e.Field)
		if err != nil {
			return nil, err
		}
		return compileValue(field, entry, e.Value)
	case Range:
		return compileRange(sch, e)
	default:
		return nil, schema.New(schema.ErrQueryParse, fmt.Sprintf("unsupported expression %T", expr))
	}
}

func compilePair(sch *schema.Schema, left, right Expr) (Query, Query, error) {
	l, err := Compile(sch, left)
	if err != nil {
		return nil, nil, err
	}
	r, err := Compile(sch, right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func lookup(sch *schema.Schema, name string) (schema.Field, schema.FieldEntry, error) {
	field, ok := sch.GetField(name)
	if !ok {
		return 0, schema.FieldEntry{}, schema.UnknownFieldError(name)
	}
	entry := sch.GetFieldEntry(field)
	if !entry.IsIndexed() {
		return 0, schema.FieldEntry{}, &schema.Error{Kind: schema.ErrQueryParse, Message: "field is not indexed", Field: name}
	}
	return field, entry, nil
}

func compileValue(field schema.Field, entry schema.FieldEntry, value string) (Query, error) {
	switch ft := entry.FieldType().(type) {
	case schema.TextOptions:
		if !ft.IndexingOptions().IsTokenized() {
			return TermQuery{Term: schema.TermFromText(field, value)}, nil
		}
		tokens := analysis.Tokenize(value)
		if len(tokens) == 0 {
			return EmptyQuery{}, nil
		}
		var q Query = TermQuery{Term: schema.TermFromText(field, tokens[0].Text)}
		for _, tok := range tokens[1:] {
			q = AndQuery{Left: q, Right: TermQuery{Term: schema.TermFromText(field, tok.Text)}}
		}
		return q, nil
	case schema.U32Options:
		v, err := parseU32(entry.Name(), value)
		if err != nil {
			return nil, err
		}
		return TermQuery{Term: schema.TermFromU32(field, v)}, nil
	default:
		panic(fmt.Sprintf("query: unknown field type %T", ft))
	}
}

// compileDefaultFields searches a bare value in every tokenized text field.
func compileDefaultFields(sch *schema.Schema, value string) (Query, error) {
	var q Query
	for i, entry := range sch.Fields() {
		opts, ok := entry.TextOptions()
		if !ok || !opts.IndexingOptions().IsTokenized() {
			continue
		}
		fq, err := compileValue(schema.Field(i), entry, value)
		if err != nil {
			return nil, err
		}
		if q == nil {
			q = fq
		} else {
			q = OrQuery{Left: q, Right: fq}
		}
	}
	if q == nil {
		return nil, schema.New(schema.ErrQueryParse, "no tokenized text field to search "+strconv.Quote(value))
	}
	return q, nil
}

func compileRange(sch *schema.Schema, r Range) (Query, error) {
	field, entry, err := lookup(sch, r.Field)
	if err != nil {
		return nil, err
	}
	if _, ok := entry.U32Options(); !ok {
		return nil, schema.TypeMismatch(r.Field, "range queries need a u32 field")
	}
	lo, err := parseU32(r.Field, r.Lower)
	if err != nil {
		return nil, err
	}
	hi, err := parseU32(r.Field, r.Upper)
	if err != nil {
		return nil, err
	}
	if lo > hi {
		return EmptyQuery{}, nil
	}
	var upper schema.Term
	// Upper is exclusive: the first term of the next field bounds u32 max.
	if hi == ^uint32(0) {
		upper = schema.TermFromText(field+1, "")
	} else {
		upper = schema.TermFromU32(field, hi+1)
	}
	return RangeQuery{Lower: schema.TermFromU32(field, lo), Upper: upper}, nil
}

func parseU32(field, value string) (uint32, error) {
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &schema.Error{Kind: schema.ErrFieldTypeMismatch, Message: "expected u32, got " + strconv.Quote(value), Field: field}
	}
	return uint32(v), nil
}
