package index

const (
	// FormatVersion is written to the meta table by Create and checked by Open.
	FormatVersion = "1"

	DefaultDocCacheSize = 1024
)

// docsChunkSize bounds the placeholders of one Docs query, well under
// SQLite's bound variable limit.
var docsChunkSize = 500
