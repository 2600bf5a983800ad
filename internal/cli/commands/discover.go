package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
	"github.com/ministore/fieldstore/schema"
)

func RunDiscover(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "discover requires a subcommand: fields|values")
		return 2
	}
	sub := argv[0]
	args := argv[1:]
	switch sub {
	case "fields":
		return runDiscoverFields(g, args)
	case "values":
		return runDiscoverValues(g, args)
	default:
		fmt.Fprintln(os.Stderr, "unknown discover subcommand")
		return 2
	}
}

type fieldInfo struct {
	Name    string `json:"name"`
	Handle  uint32 `json:"handle"`
	Type    string `json:"type"`
	Options string `json:"options"`
}

func runDiscoverFields(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("discover fields", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName string
	var namesOnly bool
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.BoolVar(&namesOnly, "names", false, "print field names only, sorted")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()

	if namesOnly {
		for _, name := range idx.Schema().FieldNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return 0
	}

	var out []fieldInfo
	for i, entry := range idx.Schema().Fields() {
		out = append(out, fieldInfo{
			Name:    entry.Name(),
			Handle:  uint32(i),
			Type:    entry.ValueKind().String(),
			Options: fmt.Sprint(entry.FieldType()),
		})
	}
	cliutil.PrintJSON(os.Stdout, out)
	return 0
}

type valueCount struct {
	Value   string `json:"value"`
	DocFreq uint64 `json:"doc_freq"`
}

// runDiscoverValues lists the most frequent terms of one indexed field.
func runDiscoverValues(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("discover values", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName, field string
	var top int
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.StringVar(&field, "field", "", "field")
	fs.IntVar(&top, "top", 20, "top N")
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

	f, ok := idx.Schema().GetField(field)
	if !ok {
		fmt.Fprintln(os.Stderr, schema.UnknownFieldError(field))
		return 1
	}
	// Every term of f sorts between the empty value of f and of f+1.
	terms, err := idx.TermRange(ctx, schema.TermFromText(f, ""), schema.TermFromText(f+1, ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	isU32 := idx.Schema().GetFieldEntry(f).ValueKind() == schema.KindU32
	out := make([]valueCount, 0, len(terms))
	for _, ti := range terms {
		value := ti.Term.Text()
		if isU32 {
			if v, ok := ti.Term.U32(); ok {
				value = fmt.Sprint(v)
			}
		}
		out = append(out, valueCount{Value: value, DocFreq: ti.DocFreq})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DocFreq > out[j].DocFreq })
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	cliutil.PrintJSON(os.Stdout, out)
	return 0
}
