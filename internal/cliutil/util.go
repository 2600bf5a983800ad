package cliutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ministore/fieldstore/index"
	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/storage"
	"github.com/ministore/fieldstore/storage/postgres"
	"github.com/ministore/fieldstore/storage/sqlite"
)

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatPretty, FormatJSON:
		return OutputFormat(s)
	default:
		return FormatPretty
	}
}

func PrintJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// ResolveIndexRef transforms the user-provided -i/--index value into a backend-specific reference.
//
//   - sqlite: if index contains a path separator or ends with .db, treat as explicit path.
//     else: <SQLitePath>/<name>.db
//   - postgres: the name selects the schema, falling back to --pg-schema.
func ResolveIndexRef(g cliopt.GlobalOptions, index string) string {
	switch strings.ToLower(g.Backend) {
	case "sqlite":
		if strings.Contains(index, string(filepath.Separator)) || strings.HasSuffix(index, ".db") {
			return index
		}
		return filepath.Join(g.SQLitePath, index+".db")
	default:
		if index == "" {
			return g.PGSchema
		}
		return index
	}
}

// CreateAdapter creates the storage adapter selected by the global flags.
func CreateAdapter(g cliopt.GlobalOptions, indexName string) (storage.Adapter, error) {
	ref := ResolveIndexRef(g, indexName)
	switch strings.ToLower(g.Backend) {
	case "postgres", "pg":
		if g.PostgresDSN == "" {
			return nil, fmt.Errorf("--pg-dsn is required for the postgres backend")
		}
		return postgres.New(g.PostgresDSN, ref), nil
	case "sqlite":
		if indexName == "" {
			return nil, fmt.Errorf("missing --index")
		}
		switch g.Driver {
		case sqlite.DriverModernc, sqlite.DriverCGO:
			return sqlite.NewWithDriver(ref, g.Driver), nil
		default:
			return nil, fmt.Errorf("unknown sqlite driver %q", g.Driver)
		}
	default:
		return nil, fmt.Errorf("unknown backend %q", g.Backend)
	}
}

// NewLogger builds a logfmt logger on stderr filtered at the given level.
func NewLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

// IndexOptions returns the default index options with the CLI logger.
func IndexOptions(g cliopt.GlobalOptions) index.IndexOptions {
	opts := index.DefaultIndexOptions()
	opts.Logger = NewLogger(g.LogLevel)
	return opts
}

// OpenIndex opens the index named by -i with the global flags.
func OpenIndex(ctx context.Context, g cliopt.GlobalOptions, indexName string) (*index.Index, error) {
	adapter, err := CreateAdapter(g, indexName)
	if err != nil {
		return nil, err
	}
	return index.Open(ctx, adapter, IndexOptions(g))
}
