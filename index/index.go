package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/ministore/fieldstore/schema"
	"github.com/ministore/fieldstore/storage"
	"github.com/ministore/fieldstore/storage/sqlbuilder"
)

// Index represents an open fieldstore index
type Index struct {
	adapter storage.Adapter
	db      *sql.DB
	schema  *schema.Schema
	opts    IndexOptions
	logger  log.Logger
	id      string

	// writeMu serializes writers so doc ids stay dense.
	writeMu  sync.Mutex
	docCache *lru.Cache
}

// Create creates a new index with the given schema
func Create(ctx context.Context, adapter storage.Adapter, sch *schema.Schema, opts IndexOptions) (*Index, error) {
	if sch == nil || sch.NumFields() == 0 {
		return nil, schema.New(ErrSchema, "schema has no fields")
	}

	schemaJSON, err := sch.ToJSON()
	if err != nil {
		return nil, err
	}

	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}

	meta := storage.Meta{
		IndexID:    uuid.NewString(),
		Version:    FormatVersion,
		SchemaJSON: schemaJSON,
	}
	if err := adapter.CreateIndex(ctx, db, meta); err != nil {
		db.Close()
		if errors.Is(err, storage.ErrIndexExists) {
			return nil, Wrap(ErrSchema, "create index", err)
		}
		return nil, Wrap(ErrSQL, "create index", err)
	}

	ix, err := newIndex(adapter, db, sch, meta.IndexID, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	level.Info(ix.logger).Log("msg", "created index", "fields", sch.NumFields())
	return ix, nil
}

// Open opens an existing index
func Open(ctx context.Context, adapter storage.Adapter, opts IndexOptions) (*Index, error) {
	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}

	meta, err := adapter.OpenIndex(ctx, db)
	if err != nil {
		db.Close()
		if errors.Is(err, storage.ErrNotAnIndex) {
			return nil, Wrap(ErrSchema, "open index", err)
		}
		return nil, Wrap(ErrSQL, "open index", err)
	}
	if meta.Version != FormatVersion {
		db.Close()
		return nil, schema.New(ErrSchema, fmt.Sprintf("unsupported index version %q", meta.Version))
	}

	sch, err := schema.FromJSON(meta.SchemaJSON)
	if err != nil {
		db.Close()
		return nil, err
	}

	ix, err := newIndex(adapter, db, sch, meta.IndexID, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	level.Debug(ix.logger).Log("msg", "opened index", "fields", sch.NumFields())
	return ix, nil
}

func newIndex(adapter storage.Adapter, db *sql.DB, sch *schema.Schema, id string, opts IndexOptions) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	ix := &Index{
		adapter: adapter,
		db:      db,
		schema:  sch,
		opts:    opts,
		logger:  log.With(logger, "index", id),
		id:      id,
	}
	if opts.DocCacheSize > 0 {
		cache, err := lru.New(opts.DocCacheSize)
		if err != nil {
			return nil, Wrap(ErrSchema, "doc cache", err)
		}
		ix.docCache = cache
	}
	return ix, nil
}

// Close closes the index
func (ix *Index) Close() error {
	if ix.db != nil {
		if err := ix.db.Close(); err != nil {
			return Wrap(ErrIO, "close database", err)
		}
	}
	return ix.adapter.Close()
}

// Schema returns the index schema. Callers must not modify it.
func (ix *Index) Schema() *schema.Schema {
	return ix.schema
}

// ID returns the identity generated when the index was created.
func (ix *Index) ID() string {
	return ix.id
}

// AddDocument validates doc against the schema and indexes it. The returned
// id is one more than the previous document's.
func (ix *Index) AddDocument(ctx context.Context, doc *schema.Document) (DocID, error) {
	if err := ix.schema.ValidateDocument(doc); err != nil {
		return 0, err
	}

	ix.writeMu.Lock()
	defer ix.writeMu.Unlock()

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	id, stats, err := ix.writeDocument(ctx, tx, doc)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, Wrap(ErrSQL, "commit", err)
	}
	ix.recordWrite(stats)
	level.Debug(ix.logger).Log("msg", "added document", "doc", id, "values", doc.Len())
	return id, nil
}

// Doc returns the stored fields of a document. Values of fields that are
// not stored are never returned.
func (ix *Index) Doc(ctx context.Context, id DocID) (*schema.Document, error) {
	if doc, ok := ix.cachedDoc(id); ok {
		return doc, nil
	}

	var storedJSON string
	err := ix.db.QueryRowContext(ctx, ix.adapter.SQL().GetDoc, int64(id)).Scan(&storedJSON)
	if err == sql.ErrNoRows {
		return nil, schema.NotFoundError(fmt.Sprintf("document %d", id))
	}
	if err != nil {
		return nil, Wrap(ErrSQL, "get document", err)
	}

	doc, err := ix.schema.ParseDocument([]byte(storedJSON))
	if err != nil {
		return nil, err
	}
	ix.cacheDoc(id, doc)
	return cloneDocument(doc), nil
}

// Docs returns the stored fields of several documents, in the order of ids.
func (ix *Index) Docs(ctx context.Context, ids []DocID) ([]*schema.Document, error) {
	out := make([]*schema.Document, len(ids))
	var missing []any
	missingIdx := make(map[DocID][]int)
	for i, id := range ids {
		if doc, ok := ix.cachedDoc(id); ok {
			out[i] = doc
			continue
		}
		if _, seen := missingIdx[id]; !seen {
			missing = append(missing, int64(id))
		}
		missingIdx[id] = append(missingIdx[id], i)
	}
	for len(missing) > 0 {
		n := min(len(missing), docsChunkSize)
		if err := ix.loadDocs(ctx, missing[:n], missingIdx, out); err != nil {
			return nil, err
		}
		missing = missing[n:]
	}
	for id := range missingIdx {
		return nil, schema.NotFoundError(fmt.Sprintf("document %d", id))
	}
	return out, nil
}

// loadDocs fetches one chunk of ids and fills every slot of out waiting
// for them. Found ids are removed from missingIdx.
func (ix *Index) loadDocs(ctx context.Context, ids []any, missingIdx map[DocID][]int, out []*schema.Document) error {
	b := sqlbuilder.New(ix.adapter.PlaceholderStyle())
	q := ix.adapter.SQL().SelectDocsIn + b.In(ids)
	rows, err := ix.db.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return Wrap(ErrSQL, "get documents", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var storedJSON string
		if err := rows.Scan(&id, &storedJSON); err != nil {
			return Wrap(ErrSQL, "scan document", err)
		}
		doc, err := ix.schema.ParseDocument([]byte(storedJSON))
		if err != nil {
			return err
		}
		ix.cacheDoc(DocID(id), doc)
		for _, i := range missingIdx[DocID(id)] {
			out[i] = cloneDocument(doc)
		}
		delete(missingIdx, DocID(id))
	}
	if err := rows.Err(); err != nil {
		return Wrap(ErrSQL, "iterate documents", err)
	}
	return nil
}

// FastU32 returns the column value of a fast u32 field. ok is false when the
// document has no value for the field.
func (ix *Index) FastU32(ctx context.Context, field schema.Field, id DocID) (value uint32, ok bool, err error) {
	if !ix.schema.HasField(field) {
		return 0, false, schema.UnknownFieldError(field.String())
	}
	entry := ix.schema.GetFieldEntry(field)
	if !entry.IsFast() {
		return 0, false, schema.TypeMismatch(entry.Name(), "not a fast u32 field")
	}

	var v int64
	err = ix.db.QueryRowContext(ctx, ix.adapter.SQL().GetFast, int64(field), int64(id)).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, Wrap(ErrSQL, "get fast value", err)
	}
	return uint32(v), true, nil
}

// Postings returns the postings list of term in doc id order.
func (ix *Index) Postings(ctx context.Context, term schema.Term) ([]Posting, error) {
	rows, err := ix.db.QueryContext(ctx, ix.adapter.SQL().GetPostings, term.Bytes())
	if err != nil {
		return nil, Wrap(ErrSQL, "get postings", err)
	}
	defer rows.Close()

	var out []Posting
	for rows.Next() {
		var docID, freq int64
		var positions []byte
		if err := rows.Scan(&docID, &freq, &positions); err != nil {
			return nil, Wrap(ErrSQL, "scan posting", err)
		}
		pos, err := decodePositions(positions)
		if err != nil {
			return nil, Wrap(ErrIO, "decode positions", err)
		}
		out = append(out, Posting{DocID: DocID(docID), TermFreq: uint32(freq), Positions: pos})
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(ErrSQL, "iterate postings", err)
	}
	return out, nil
}

// DocFreq returns the number of documents containing term.
func (ix *Index) DocFreq(ctx context.Context, term schema.Term) (uint64, error) {
	var n int64
	if err := ix.db.QueryRowContext(ctx, ix.adapter.SQL().DocFreq, term.Bytes()).Scan(&n); err != nil {
		return 0, Wrap(ErrSQL, "doc freq", err)
	}
	return uint64(n), nil
}

// TermRange lists the distinct terms t with lo <= t < hi in term order.
func (ix *Index) TermRange(ctx context.Context, lo, hi schema.Term) ([]TermInfo, error) {
	rows, err := ix.db.QueryContext(ctx, ix.adapter.SQL().TermRange, lo.Bytes(), hi.Bytes())
	if err != nil {
		return nil, Wrap(ErrSQL, "term range", err)
	}
	defer rows.Close()

	var out []TermInfo
	for rows.Next() {
		var raw []byte
		var n int64
		if err := rows.Scan(&raw, &n); err != nil {
			return nil, Wrap(ErrSQL, "scan term", err)
		}
		term, err := schema.TermFromBytes(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, TermInfo{Term: term, DocFreq: uint64(n)})
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(ErrSQL, "iterate terms", err)
	}
	return out, nil
}

// NumDocs returns the number of documents in the index.
func (ix *Index) NumDocs(ctx context.Context) (uint64, error) {
	var n int64
	if err := ix.db.QueryRowContext(ctx, ix.adapter.SQL().CountDocs).Scan(&n); err != nil {
		return 0, Wrap(ErrSQL, "count documents", err)
	}
	return uint64(n), nil
}

// Optimize runs backend maintenance.
func (ix *Index) Optimize(ctx context.Context) error {
	ix.writeMu.Lock()
	defer ix.writeMu.Unlock()
	if err := ix.adapter.Optimize(ctx, ix.db); err != nil {
		return Wrap(ErrSQL, "optimize", err)
	}
	return nil
}

func (ix *Index) cachedDoc(id DocID) (*schema.Document, bool) {
	if ix.docCache == nil {
		return nil, false
	}
	v, ok := ix.docCache.Get(id)
	ix.opts.Metrics.cacheLookup(ok)
	if !ok {
		return nil, false
	}
	return cloneDocument(v.(*schema.Document)), true
}

func (ix *Index) cacheDoc(id DocID, doc *schema.Document) {
	if ix.docCache != nil {
		ix.docCache.Add(id, doc)
	}
}

func cloneDocument(doc *schema.Document) *schema.Document {
	out := schema.NewDocument()
	for _, fv := range doc.FieldValues() {
		out.Add(fv)
	}
	return out
}
