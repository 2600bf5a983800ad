package cli

import (
	"fmt"
	"io"
)

func PrintRootHelp(w io.Writer) {
	fmt.Fprintln(w, `fieldstore: schema driven document index on sqlite or postgres

USAGE
  fieldstore [global flags] <command> [args]

GLOBAL FLAGS
  --backend sqlite|postgres
  --sqlite-path <dir>
  --driver sqlite|sqlite3
  --pg-dsn <dsn>
  --pg-schema <name>
  --log-level debug|info|warn|error
  --format pretty|json

COMMANDS
  index create -i <name> (--schema <file.json> | --field name:type[:flags]...)
  index schema|stats|optimize -i <name>
  put -i <name> [--import <file.jsonl>]      JSON lines, one document each (stdin by default)
  get -i <name> --doc <id>
  search -i <name> -q <query> [--limit N] [--show]
  fast -i <name> --field <field> --doc <id>
  term -i <name> --field <field> --value <value>
  discover fields -i <name>
  discover values -i <name> --field <field> [--top N]

FIELD FLAGS
  text: text, string, stored, nofreq, freq
  u32:  indexed, fast, stored`)
}
