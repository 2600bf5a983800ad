package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
	"github.com/ministore/fieldstore/schema"
)

func RunFast(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("fast", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName, field string
	var docID int64
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.StringVar(&field, "field", "", "fast u32 field")
	fs.Int64Var(&docID, "doc", -1, "document id")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if field == "" {
		fmt.Fprintln(os.Stderr, "missing --field")
		return 2
	}
	id, err := docIDFlag(docID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()

	f, ok := idx.Schema().GetField(field)
	if !ok {
		fmt.Fprintln(os.Stderr, schema.UnknownFieldError(field))
		return 1
	}
	v, ok, err := idx.FastU32(ctx, f, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !ok {
		fmt.Fprintln(os.Stdout, "null")
		return 0
	}
	fmt.Fprintln(os.Stdout, v)
	return 0
}
