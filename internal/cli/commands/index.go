package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ministore/fieldstore/index"
	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
	"github.com/ministore/fieldstore/schema"
)

func RunIndex(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "index requires a subcommand: create|schema|stats|optimize")
		return 2
	}
	verb := argv[0]
	args := argv[1:]
	switch verb {
	case "create":
		return runIndexCreate(g, args)
	case "schema":
		return runIndexSchema(g, args)
	case "stats":
		return runIndexStats(g, args)
	case "optimize":
		return runIndexOptimize(g, args)
	case "--help", "-h", "help":
		fmt.Fprintln(os.Stdout, "index subcommands: create|schema|stats|optimize")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown index subcommand: %s\n", verb)
		return 2
	}
}

func runIndexCreate(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("index create", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName string
	var schemaPath string
	var fields multiString
	fs.StringVar(&indexName, "index", "", "index name")
	fs.StringVar(&indexName, "i", "", "index name")
	fs.StringVar(&schemaPath, "schema", "", "schema json file")
	fs.Var(&fields, "field", "field name:type[:flags] (repeatable)")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if (schemaPath == "") == (len(fields) == 0) {
		fmt.Fprintln(os.Stderr, "provide exactly one of --schema or --field")
		return 2
	}

	var sch *schema.Schema
	var err error
	if schemaPath != "" {
		var b []byte
		b, err = os.ReadFile(schemaPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		sch, err = schema.FromJSON(b)
	} else {
		sch, err = cliutil.ParseFieldSpecs(fields)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	adapter, err := cliutil.CreateAdapter(g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	ctx := context.Background()
	idx, err := index.Create(ctx, adapter, sch, cliutil.IndexOptions(g))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()
	fmt.Fprintf(os.Stdout, "created %s\n", idx.ID())
	return 0
}

func runIndexSchema(g cliopt.GlobalOptions, argv []string) int {
	indexName, code := parseIndexOnly("index schema", argv)
	if code >= 0 {
		return code
	}
	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()
	cliutil.PrintJSON(os.Stdout, idx.Schema())
	return 0
}

func runIndexStats(g cliopt.GlobalOptions, argv []string) int {
	indexName, code := parseIndexOnly("index stats", argv)
	if code >= 0 {
		return code
	}
	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()
	n, err := idx.NumDocs(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cliutil.PrintJSON(os.Stdout, map[string]any{
		"id":     idx.ID(),
		"docs":   n,
		"fields": idx.Schema().NumFields(),
	})
	return 0
}

func runIndexOptimize(g cliopt.GlobalOptions, argv []string) int {
	indexName, code := parseIndexOnly("index optimize", argv)
	if code >= 0 {
		return code
	}
	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()
	if err := idx.Optimize(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stdout, "optimized")
	return 0
}

// parseIndexOnly parses a flag set holding only -i/--index. code is -1 when
// the command should go on.
func parseIndexOnly(name string, argv []string) (indexName string, code int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	if err := fs.Parse(argv); err != nil {
		return "", 2
	}
	return indexName, -1
}
