package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ministore/fieldstore/index"
	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
	"github.com/ministore/fieldstore/schema"
)

type searchHit struct {
	DocID index.DocID          `json:"doc"`
	Doc   schema.NamedDocument `json:"stored,omitempty"`
}

func RunSearch(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName, q string
	var limit int
	var show bool
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.StringVar(&q, "query", "", "query")
	fs.StringVar(&q, "q", "", "query")
	fs.IntVar(&limit, "limit", 20, "limit (0 = all)")
	fs.BoolVar(&show, "show", false, "print stored fields of each hit")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if q == "" {
		fmt.Fprintln(os.Stderr, "missing --query")
		return 2
	}

	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()

	start := time.Now()
	ids, err := idx.Search(ctx, q)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	total := len(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	hits := make([]searchHit, len(ids))
	for i, id := range ids {
		hits[i].DocID = id
	}
	if show && len(ids) > 0 {
		docs, err := idx.Docs(ctx, ids)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for i, doc := range docs {
			hits[i].Doc = idx.Schema().ToNamedDocument(doc)
		}
	}
	printSearch(cliutil.ParseOutputFormat(g.Format), hits, total, time.Since(start))
	return 0
}

func printSearch(fmtOut cliutil.OutputFormat, hits []searchHit, total int, dur time.Duration) {
	switch fmtOut {
	case cliutil.FormatJSON:
		cliutil.PrintJSON(os.Stdout, map[string]any{"total": total, "hits": hits})
	default:
		fmt.Fprintf(os.Stdout, "Found %d docs in %dms\n", total, dur.Milliseconds())
		for _, h := range hits {
			if h.Doc == nil {
				fmt.Fprintf(os.Stdout, "- %d\n", h.DocID)
				continue
			}
			fmt.Fprintf(os.Stdout, "- %d %v\n", h.DocID, h.Doc)
		}
	}
}
