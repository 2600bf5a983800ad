package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ministore/fieldstore/storage"
	"github.com/ministore/fieldstore/storage/sqlbuilder"
)

const (
	// DriverModernc is the pure Go driver registered by modernc.org/sqlite.
	DriverModernc = "sqlite"
	// DriverCGO is the driver registered by github.com/mattn/go-sqlite3.
	DriverCGO = "sqlite3"
)

type Adapter struct {
	Path       string
	DriverName string
}

func New(path string) *Adapter {
	return &Adapter{Path: path, DriverName: DriverModernc}
}

func NewWithDriver(path, driver string) *Adapter {
	return &Adapter{Path: path, DriverName: driver}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendSQLite
}

func (a *Adapter) PlaceholderStyle() sqlbuilder.PlaceholderStyle {
	return sqlbuilder.PlaceholderQuestion
}

func (a *Adapter) IndexID() string {
	return a.Path
}

// dsn adds the busy timeout and foreign key pragmas in the syntax of the
// selected driver.
func (a *Adapter) dsn() string {
	var params string
	switch a.DriverName {
	case DriverCGO:
		params = "_busy_timeout=5000&_foreign_keys=on"
	default:
		params = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	if strings.Contains(a.Path, "?") {
		return a.Path + "&" + params
	}
	return a.Path + "?" + params
}

func (a *Adapter) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(a.DriverName, a.dsn())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (a *Adapter) Close() error {
	return nil
}

func (a *Adapter) SQL() storage.SQL {
	return SQLTemplates
}

func (a *Adapter) CreateIndex(ctx context.Context, db *sql.DB, meta storage.Meta) error {
	_, _ = db.ExecContext(ctx, "PRAGMA journal_mode=WAL;")
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")
	return storage.CreateIndex(ctx, db, a.SQL(), ddlBase, meta)
}

func (a *Adapter) OpenIndex(ctx context.Context, db *sql.DB) (storage.Meta, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'meta'").Scan(&n); err != nil {
		return storage.Meta{}, err
	}
	if n == 0 {
		return storage.Meta{}, storage.ErrNotAnIndex
	}
	return storage.OpenIndex(ctx, db, a.SQL())
}

func (a *Adapter) Optimize(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "ANALYZE"); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, "VACUUM")
	return err
}
