package cliutil

import (
	"path/filepath"
	"testing"

	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/schema"
	"github.com/ministore/fieldstore/storage"
)

func TestParseFieldSpecs(t *testing.T) {
	sch, err := ParseFieldSpecs([]string{
		"title:text:text,stored",
		"url:text:string",
		"tags:text:nofreq",
		"year:u32:indexed,stored",
		"rank:u32:fast",
		"blob:text:stored",
	})
	if err != nil {
		t.Fatalf("ParseFieldSpecs: %v", err)
	}

	want := []schema.FieldEntry{
		schema.NewTextFieldEntry("title", schema.TEXT.Or(schema.STORED)),
		schema.NewTextFieldEntry("url", schema.STRING),
		schema.NewTextFieldEntry("tags", schema.NewTextOptions().SetIndexingOptions(schema.TokenizedNoFreq)),
		schema.NewU32FieldEntry("year", schema.NewU32Options().SetIndexed().SetStored()),
		schema.NewU32FieldEntry("rank", schema.FAST),
		schema.NewTextFieldEntry("blob", schema.STORED),
	}
	got := sch.Fields()
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseFieldSpecsErrors(t *testing.T) {
	cases := map[string][]string{
		"missing type": {"title"},
		"unknown type": {"title:float"},
		"text flag":    {"title:text:fast"},
		"u32 flag":     {"year:u32:text"},
		"bad name":     {"my title:text"},
		"duplicate":    {"a:text", "a:u32"},
	}
	for name, specs := range cases {
		if _, err := ParseFieldSpecs(specs); err == nil {
			t.Fatalf("%s: expected error for %v", name, specs)
		}
	}
}

func TestResolveIndexRef(t *testing.T) {
	g := cliopt.DefaultGlobalOptions()
	g.SQLitePath = "data"

	if got := ResolveIndexRef(g, "books"); got != filepath.Join("data", "books.db") {
		t.Fatalf("unexpected ref %q", got)
	}
	if got := ResolveIndexRef(g, "other.db"); got != "other.db" {
		t.Fatalf("unexpected ref %q", got)
	}

	g.Backend = "postgres"
	if got := ResolveIndexRef(g, ""); got != "fieldstore" {
		t.Fatalf("unexpected ref %q", got)
	}
}

func TestCreateAdapter(t *testing.T) {
	g := cliopt.DefaultGlobalOptions()
	a, err := CreateAdapter(g, "books")
	if err != nil || a.Backend() != storage.BackendSQLite {
		t.Fatalf("CreateAdapter(sqlite) = %v, %v", a, err)
	}

	g.Driver = "nope"
	if _, err := CreateAdapter(g, "books"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}

	g = cliopt.DefaultGlobalOptions()
	g.Backend = "postgres"
	if _, err := CreateAdapter(g, ""); err == nil {
		t.Fatalf("expected error without --pg-dsn")
	}
	g.PostgresDSN = "postgres://localhost/db"
	a, err = CreateAdapter(g, "")
	if err != nil || a.Backend() != storage.BackendPostgres {
		t.Fatalf("CreateAdapter(postgres) = %v, %v", a, err)
	}

	g.Backend = "redis"
	if _, err := CreateAdapter(g, ""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
