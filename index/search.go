package index

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-kit/log/level"

	"github.com/ministore/fieldstore/query"
	"github.com/ministore/fieldstore/schema"
)

// docSet is a sorted, duplicate free list of doc ids.
type docSet []DocID

// Search parses q, compiles it against the index schema and returns the
// matching doc ids in ascending order.
func (ix *Index) Search(ctx context.Context, q string) ([]DocID, error) {
	compiled, err := query.ParseAndCompile(ix.schema, q)
	if err != nil {
		return nil, err
	}
	return ix.SearchQuery(ctx, compiled)
}

// SearchQuery evaluates an already compiled query.
func (ix *Index) SearchQuery(ctx context.Context, q query.Query) ([]DocID, error) {
	set, err := ix.eval(ctx, q)
	if err != nil {
		return nil, err
	}
	level.Debug(ix.logger).Log("msg", "search", "hits", len(set))
	return []DocID(set), nil
}

func (ix *Index) eval(ctx context.Context, q query.Query) (docSet, error) {
	switch q := q.(type) {
	case query.TermQuery:
		postings, err := ix.Postings(ctx, q.Term)
		if err != nil {
			return nil, err
		}
		set := make(docSet, len(postings))
		for i, p := range postings {
			set[i] = p.DocID
		}
		return set, nil
	case query.RangeQuery:
		return ix.queryIDs(ctx, ix.adapter.SQL().RangeDocIDs, q.Lower.Bytes(), q.Upper.Bytes())
	case query.AndQuery:
		l, err := ix.eval(ctx, q.Left)
		if err != nil || len(l) == 0 {
			return nil, err
		}
		r, err := ix.eval(ctx, q.Right)
		if err != nil {
			return nil, err
		}
		return intersect(l, r), nil
	case query.OrQuery:
		l, err := ix.eval(ctx, q.Left)
		if err != nil {
			return nil, err
		}
		r, err := ix.eval(ctx, q.Right)
		if err != nil {
			return nil, err
		}
		return union(l, r), nil
	case query.NotQuery:
		inner, err := ix.eval(ctx, q.Inner)
		if err != nil {
			return nil, err
		}
		all, err := ix.queryIDs(ctx, ix.adapter.SQL().AllDocIDs)
		if err != nil {
			return nil, err
		}
		return difference(all, inner), nil
	case query.EmptyQuery:
		return nil, nil
	default:
		return nil, schema.New(ErrQueryParse, fmt.Sprintf("unsupported query %T", q))
	}
}

func (ix *Index) queryIDs(ctx context.Context, stmt string, args ...any) (docSet, error) {
	rows, err := ix.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, Wrap(ErrSQL, "query doc ids", err)
	}
	defer rows.Close()

	var set docSet
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, Wrap(ErrSQL, "scan doc id", err)
		}
		set = append(set, DocID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(ErrSQL, "iterate doc ids", err)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set, nil
}

func intersect(a, b docSet) docSet {
	var out docSet
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func union(a, b docSet) docSet {
	out := make(docSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func difference(a, b docSet) docSet {
	var out docSet
	j := 0
	for _, id := range a {
		for j < len(b) && b[j] < id {
			j++
		}
		if j < len(b) && b[j] == id {
			continue
		}
		out = append(out, id)
	}
	return out
}
