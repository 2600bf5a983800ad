package index

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ministore/fieldstore/analysis"
	"github.com/ministore/fieldstore/schema"
)

// writeStats counts what one or more documents wrote, for metrics.
type writeStats struct {
	docs  int
	terms map[string]int
}

func (s *writeStats) merge(o writeStats) {
	s.docs += o.docs
	if s.terms == nil {
		s.terms = make(map[string]int)
	}
	for k, v := range o.terms {
		s.terms[k] += v
	}
}

func (ix *Index) recordWrite(stats writeStats) {
	for i := 0; i < stats.docs; i++ {
		ix.opts.Metrics.documentIndexed()
	}
	for field, n := range stats.terms {
		ix.opts.Metrics.termsWritten(field, n)
	}
}

// posting is one row of the postings table before it is written.
type posting struct {
	term      schema.Term
	freq      uint32
	positions []uint32
}

// writeDocument stores doc under the next free id. The caller holds writeMu
// and owns tx.
func (ix *Index) writeDocument(ctx context.Context, tx *sql.Tx, doc *schema.Document) (DocID, writeStats, error) {
	sqlt := ix.adapter.SQL()
	stats := writeStats{docs: 1, terms: make(map[string]int)}

	var next int64
	if err := tx.QueryRowContext(ctx, sqlt.NextDocID).Scan(&next); err != nil {
		return 0, stats, Wrap(ErrSQL, "next doc id", err)
	}
	if next > int64(^uint32(0)) {
		return 0, stats, schema.New(ErrIO, "doc id space exhausted")
	}
	id := DocID(next)

	storedJSON, err := ix.storedJSON(doc)
	if err != nil {
		return 0, stats, err
	}
	if _, err := tx.ExecContext(ctx, sqlt.InsertDoc, next, string(storedJSON)); err != nil {
		return 0, stats, Wrap(ErrSQL, "insert document", err)
	}

	for _, p := range ix.buildPostings(doc) {
		if _, err := tx.ExecContext(ctx, sqlt.InsertPosting, p.term.Bytes(), next, int64(p.freq), encodePositions(p.positions)); err != nil {
			return 0, stats, Wrap(ErrSQL, "insert posting", err)
		}
		stats.terms[ix.schema.GetFieldEntry(p.term.Field()).Name()]++
	}

	for _, fv := range doc.SortedFieldValues() {
		entry := ix.schema.GetFieldEntry(fv.Field)
		if !entry.IsFast() {
			continue
		}
		v, ok := fv.Value.(schema.U32)
		if !ok {
			return 0, stats, schema.TypeMismatch(entry.Name(), fmt.Sprintf("expected u32, got %s", fv.Value.Kind()))
		}
		// Only the first value of a multi-valued fast field lands in the column.
		if _, err := tx.ExecContext(ctx, sqlt.InsertFast, int64(fv.Field), next, int64(v)); err != nil {
			return 0, stats, Wrap(ErrSQL, "insert fast value", err)
		}
	}

	return id, stats, nil
}

// storedJSON keeps the values of stored fields only.
func (ix *Index) storedJSON(doc *schema.Document) ([]byte, error) {
	stored := schema.NewDocument()
	for _, fv := range doc.FieldValues() {
		if ix.schema.GetFieldEntry(fv.Field).IsStored() {
			stored.Add(fv)
		}
	}
	b, err := json.Marshal(ix.schema.ToNamedDocument(stored))
	if err != nil {
		return nil, Wrap(ErrSchema, "marshal stored fields", err)
	}
	return b, nil
}

// buildPostings turns the indexed values of doc into one posting per
// distinct term, sorted by term. Positions of a multi-valued text field
// continue across its values.
func (ix *Index) buildPostings(doc *schema.Document) []posting {
	byTerm := make(map[string]*posting)
	nextPos := make(map[schema.Field]int)

	add := func(term schema.Term, count int, positions []uint32) {
		key := string(term.Bytes())
		p, ok := byTerm[key]
		if !ok {
			p = &posting{term: term}
			byTerm[key] = p
		}
		p.freq += uint32(count)
		p.positions = append(p.positions, positions...)
	}

	for _, fv := range doc.SortedFieldValues() {
		entry := ix.schema.GetFieldEntry(fv.Field)
		if !entry.IsIndexed() {
			continue
		}
		switch ft := entry.FieldType().(type) {
		case schema.TextOptions:
			text := string(fv.Value.(schema.Str))
			indexing := ft.IndexingOptions()
			if !indexing.IsTokenized() {
				add(schema.TermFromText(fv.Field, text), 1, nil)
				continue
			}
			base := nextPos[fv.Field]
			tokens := analysis.Tokenize(text)
			for word, positions := range analysis.Frequencies(tokens) {
				var abs []uint32
				if indexing.IsPositionEnabled() {
					abs = make([]uint32, len(positions))
					for i, pos := range positions {
						abs[i] = uint32(base + pos)
					}
				}
				add(schema.TermFromText(fv.Field, word), len(positions), abs)
			}
			nextPos[fv.Field] = base + len(tokens)
		case schema.U32Options:
			add(schema.TermFromU32(fv.Field, uint32(fv.Value.(schema.U32))), 1, nil)
		default:
			panic(fmt.Sprintf("index: unknown field type %T", ft))
		}
	}

	out := make([]posting, 0, len(byTerm))
	for _, p := range byTerm {
		opts, isText := ix.schema.GetFieldEntry(p.term.Field()).TextOptions()
		if !isText || !opts.IndexingOptions().IsTermFreqEnabled() {
			p.freq = 1
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].term.Bytes(), out[j].term.Bytes()) < 0
	})
	return out
}
