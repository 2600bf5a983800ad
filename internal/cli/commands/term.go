package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
	"github.com/ministore/fieldstore/schema"
)

// RunTerm prints the postings of one exact term. Text values are used as
// given, so tokenized fields need the lower-cased token.
func RunTerm(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("term", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName, field, value string
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.StringVar(&field, "field", "", "field")
	fs.StringVar(&value, "value", "", "term value")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if field == "" {
		fmt.Fprintln(os.Stderr, "missing --field")
		return 2
	}

	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()

	term, err := buildTerm(idx.Schema(), field, value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	postings, err := idx.Postings(ctx, term)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cliutil.PrintJSON(os.Stdout, map[string]any{
		"term":     term.String(),
		"doc_freq": len(postings),
		"postings": postings,
	})
	return 0
}

func buildTerm(sch *schema.Schema, name, value string) (schema.Term, error) {
	f, ok := sch.GetField(name)
	if !ok {
		return schema.Term{}, schema.UnknownFieldError(name)
	}
	switch sch.GetFieldEntry(f).ValueKind() {
	case schema.KindU32:
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return schema.Term{}, schema.TypeMismatch(name, "value is not a u32")
		}
		return schema.TermFromU32(f, uint32(v)), nil
	default:
		return schema.TermFromText(f, value), nil
	}
}
