package commands

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ministore/fieldstore/index"
	"github.com/ministore/fieldstore/internal/cliopt"
	"github.com/ministore/fieldstore/internal/cliutil"
)

func RunPut(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var indexName string
	var importPath string
	fs.StringVar(&indexName, "index", "", "index")
	fs.StringVar(&indexName, "i", "", "index")
	fs.StringVar(&importPath, "import", "", "import JSONL file instead of stdin")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	var r io.Reader = os.Stdin
	if importPath != "" {
		f, err := os.Open(importPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		r = f
	}

	ctx := context.Background()
	idx, err := cliutil.OpenIndex(ctx, g, indexName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer idx.Close()

	batch := index.NewBatch()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		doc, err := idx.Schema().ParseDocument(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
			return 1
		}
		if err := batch.Add(doc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ids, err := batch.Execute(ctx, idx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, ids)
		return 0
	}
	fmt.Fprintf(os.Stdout, "indexed %d\n", len(ids))
	return 0
}

// ---- helpers (local to commands package) ----

type multiString []string

func (m *multiString) String() string { return "" }
func (m *multiString) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// docIDFlag checks a --doc value; -1 is the flag default meaning unset.
func docIDFlag(v int64) (index.DocID, error) {
	switch {
	case v == -1:
		return 0, fmt.Errorf("missing --doc")
	case v < 0 || v > int64(^uint32(0)):
		return 0, fmt.Errorf("--doc %d out of range [0, %d]", v, ^uint32(0))
	}
	return index.DocID(v), nil
}
