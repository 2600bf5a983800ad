package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
)

func RunGet(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName string
	var docID int64
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.Int64Var(&docID, "doc", -1, "document id")
	if err := fs.Parse(argv); err != nil {
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
	doc, err := idx.Doc(ctx, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cliutil.PrintJSON(os.Stdout, idx.Schema().ToNamedDocument(doc))
	return 0
}
