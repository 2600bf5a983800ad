package index

import (
	"context"

	"github.com/go-kit/log/level"

	"github.com/ministore/fieldstore/schema"
)

// Batch collects documents that are added in one transaction.
type Batch struct {
	docs []*schema.Document
}

func NewBatch() Batch {
	return Batch{docs: make([]*schema.Document, 0)}
}

func (b *Batch) Add(doc *schema.Document) error {
	if doc == nil {
		return schema.New(ErrSchema, "document cannot be nil")
	}
	b.docs = append(b.docs, doc)
	return nil
}

func (b *Batch) Len() int {
	return len(b.docs)
}

func (b *Batch) Empty() bool {
	return len(b.docs) == 0
}

// Execute is implemented on Index to keep storage access internal
func (b *Batch) Execute(ctx context.Context, ix *Index) ([]DocID, error) {
	return ix.Batch(ctx, *b)
}

// Batch adds every document of b or none of them. Every document is
// validated before anything is written.
func (ix *Index) Batch(ctx context.Context, b Batch) ([]DocID, error) {
	if b.Empty() {
		return nil, nil
	}
	for _, doc := range b.docs {
		if err := ix.schema.ValidateDocument(doc); err != nil {
			return nil, err
		}
	}

	ix.writeMu.Lock()
	defer ix.writeMu.Unlock()

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	ids := make([]DocID, 0, len(b.docs))
	var stats writeStats
	for _, doc := range b.docs {
		id, s, err := ix.writeDocument(ctx, tx, doc)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		stats.merge(s)
	}

	if err := tx.Commit(); err != nil {
		return nil, Wrap(ErrSQL, "commit", err)
	}
	ix.recordWrite(stats)
	level.Debug(ix.logger).Log("msg", "batch added", "docs", len(ids))
	return ids, nil
}
