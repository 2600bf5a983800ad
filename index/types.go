package index

import (
	"github.com/go-kit/log"

	"github.com/ministore/fieldstore/schema"
)

// DocID is the dense, zero-based id assigned to a document when it is added.
type DocID uint32

// IndexOptions configures index behavior
type IndexOptions struct {
	Logger       log.Logger
	Metrics      *Metrics // nil disables metrics
	DocCacheSize int      // <= 0 disables the stored document cache
}

// DefaultIndexOptions returns sensible defaults
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{
		Logger:       log.NewNopLogger(),
		DocCacheSize: DefaultDocCacheSize,
	}
}

// Posting is one document of a term's postings list. TermFreq is 1 unless
// the field records frequencies; Positions is only set for fields indexed
// with positions.
type Posting struct {
	DocID     DocID
	TermFreq  uint32
	Positions []uint32
}

// TermInfo is one distinct term of a term range.
type TermInfo struct {
	Term    schema.Term
	DocFreq uint64
}
