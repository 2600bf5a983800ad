package storage

import (
	"context"
	"database/sql"

	"github.com/ministore/fieldstore/storage/sqlbuilder"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

const (
	MetaMagicKey   = "fieldstore_magic"
	MetaMagic      = "fieldstore"
	MetaVersionKey = "fieldstore_version"
	MetaIndexIDKey = "index_id"
	MetaSchemaKey  = "schema_json"
)

// Meta is what an index persists about itself. SchemaJSON is the encoded
// schema; field handles are derived from its field order.
type Meta struct {
	IndexID    string
	Version    string
	SchemaJSON []byte
}

// Adapter abstracts database-specific operations
type Adapter interface {
	Backend() Backend
	PlaceholderStyle() sqlbuilder.PlaceholderStyle
	IndexID() string

	Connect(ctx context.Context) (*sql.DB, error)
	Close() error

	CreateIndex(ctx context.Context, db *sql.DB, meta Meta) error
	OpenIndex(ctx context.Context, db *sql.DB) (Meta, error)
	Optimize(ctx context.Context, db *sql.DB) error

	SQL() SQL
}

// SQL holds the statement templates of a backend.
type SQL struct {
	GetMeta string
	SetMeta string

	NextDocID string
	InsertDoc string
	GetDoc    string
	CountDocs string
	// SelectDocsIn is completed with a placeholder list, see sqlbuilder.In.
	SelectDocsIn string
	AllDocIDs    string

	InsertPosting string
	GetPostings   string
	DocFreq       string
	TermRange     string
	RangeDocIDs   string

	InsertFast string
	GetFast    string
}

// CreateIndex runs ddl and writes meta with the given SQL templates. Both
// backends share it.
func CreateIndex(ctx context.Context, db *sql.DB, sqlt SQL, ddl string, meta Meta) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return err
	}
	var existing string
	err := db.QueryRowContext(ctx, sqlt.GetMeta, MetaMagicKey).Scan(&existing)
	if err == nil {
		return ErrIndexExists
	}
	if err != sql.ErrNoRows {
		return err
	}
	kv := [][2]string{
		{MetaMagicKey, MetaMagic},
		{MetaVersionKey, meta.Version},
		{MetaIndexIDKey, meta.IndexID},
		{MetaSchemaKey, string(meta.SchemaJSON)},
	}
	for _, p := range kv {
		if _, err := db.ExecContext(ctx, sqlt.SetMeta, p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// OpenIndex reads back what CreateIndex wrote.
func OpenIndex(ctx context.Context, db *sql.DB, sqlt SQL) (Meta, error) {
	var magic string
	if err := db.QueryRowContext(ctx, sqlt.GetMeta, MetaMagicKey).Scan(&magic); err != nil {
		if err == sql.ErrNoRows {
			return Meta{}, ErrNotAnIndex
		}
		return Meta{}, err
	}
	if magic != MetaMagic {
		return Meta{}, ErrNotAnIndex
	}
	var meta Meta
	var schemaStr string
	if err := db.QueryRowContext(ctx, sqlt.GetMeta, MetaVersionKey).Scan(&meta.Version); err != nil {
		return Meta{}, err
	}
	if err := db.QueryRowContext(ctx, sqlt.GetMeta, MetaIndexIDKey).Scan(&meta.IndexID); err != nil {
		return Meta{}, err
	}
	if err := db.QueryRowContext(ctx, sqlt.GetMeta, MetaSchemaKey).Scan(&schemaStr); err != nil {
		return Meta{}, err
	}
	meta.SchemaJSON = []byte(schemaStr)
	return meta, nil
}
