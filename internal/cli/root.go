package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/ministore/fieldstore/internal/cli/commands"
	"github.com/ministore/fieldstore/internal/cliopt"
)

type runFunc func(g cliopt.GlobalOptions, argv []string) int

var commandTable = map[string]runFunc{
	"index":    commands.RunIndex,
	"put":      commands.RunPut,
	"get":      commands.RunGet,
	"search":   commands.RunSearch,
	"fast":     commands.RunFast,
	"term":     commands.RunTerm,
	"discover": commands.RunDiscover,
}

// Execute runs the CLI and returns an exit code.
func Execute(argv []string) int {
	globalFS := flag.NewFlagSet("fieldstore", flag.ContinueOnError)
	globalFS.SetOutput(os.Stderr)
	globalFS.Usage = func() { PrintRootHelp(os.Stderr) }
	g := cliopt.DefaultGlobalOptions()
	cliopt.BindGlobalFlags(globalFS, &g)

	if err := globalFS.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	args := globalFS.Args()
	if len(args) == 0 || args[0] == "help" {
		PrintRootHelp(os.Stdout)
		return 0
	}

	run, ok := commandTable[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		PrintRootHelp(os.Stderr)
		return 2
	}
	return run(g, args[1:])
}
