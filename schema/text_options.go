package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// TextIndexing describes how much of a text field reaches the inverted index.
// Levels are totally ordered: each one retains everything the previous one does.
type TextIndexing int

const (
	// Unindexed fields cannot be searched.
	Unindexed TextIndexing = iota
	// Untokenized fields are indexed as one single token.
	Untokenized
	// TokenizedNoFreq fields are tokenized, postings only record the doc ids.
	TokenizedNoFreq
	// TokenizedWithFreq fields also record the term frequency per doc.
	TokenizedWithFreq
	// TokenizedWithFreqAndPosition fields also record the token positions.
	TokenizedWithFreqAndPosition
)

var textIndexingNames = [...]string{
	Unindexed:                    "unindexed",
	Untokenized:                  "untokenized",
	TokenizedNoFreq:              "tokenized_no_freq",
	TokenizedWithFreq:            "tokenized_with_freq",
	TokenizedWithFreqAndPosition: "tokenized_with_freq_and_position",
}

func (t TextIndexing) String() string {
	if t < Unindexed || t > TokenizedWithFreqAndPosition {
		return fmt.Sprintf("TextIndexing(%d)", int(t))
	}
	return textIndexingNames[t]
}

func ParseTextIndexing(s string) (TextIndexing, error) {
	for i, name := range textIndexingNames {
		if name == s {
			return TextIndexing(i), nil
		}
	}
	return Unindexed, New(ErrSchema, fmt.Sprintf("unknown text indexing option %q", s))
}

func (t TextIndexing) IsIndexed() bool { return t != Unindexed }

func (t TextIndexing) IsTokenized() bool { return t >= TokenizedNoFreq }

func (t TextIndexing) IsTermFreqEnabled() bool { return t >= TokenizedWithFreq }

func (t TextIndexing) IsPositionEnabled() bool { return t == TokenizedWithFreqAndPosition }

// Or returns the richer of the two levels.
func (t TextIndexing) Or(other TextIndexing) TextIndexing {
	if other > t {
		return other
	}
	return t
}

func (t TextIndexing) MarshalJSON() ([]byte, error) {
	if t < Unindexed || t > TokenizedWithFreqAndPosition {
		return nil, New(ErrSchema, fmt.Sprintf("invalid text indexing option %d", int(t)))
	}
	return json.Marshal(t.String())
}

func (t *TextIndexing) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return Wrap(ErrSchema, "text indexing option", err)
	}
	v, err := ParseTextIndexing(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TextOptions configures a text field. The zero value is neither stored nor indexed.
type TextOptions struct {
	indexing TextIndexing
	stored   bool
}

var (
	// TEXT is tokenized and indexed with frequencies and positions.
	TEXT = TextOptions{indexing: TokenizedWithFreqAndPosition}
	// STRING is indexed as one untokenized term.
	STRING = TextOptions{indexing: Untokenized}
	// STORED is only kept in the document store.
	STORED = TextOptions{stored: true}
)

func NewTextOptions() TextOptions {
	return TextOptions{}
}

func (o TextOptions) SetStored() TextOptions {
	o.stored = true
	return o
}

func (o TextOptions) SetIndexingOptions(indexing TextIndexing) TextOptions {
	o.indexing = indexing
	return o
}

func (o TextOptions) IndexingOptions() TextIndexing { return o.indexing }

func (o TextOptions) IsStored() bool { return o.stored }

func (o TextOptions) IsIndexed() bool { return o.indexing.IsIndexed() }

func (o TextOptions) ValueKind() ValueKind { return KindStr }

func (o TextOptions) typeName() string { return typeNameText }

func (TextOptions) isFieldType() {}

// Or merges two option sets: stored flags are OR-ed and the richer
// indexing level wins.
func (o TextOptions) Or(other TextOptions) TextOptions {
	return TextOptions{
		indexing: o.indexing.Or(other.indexing),
		stored:   o.stored || other.stored,
	}
}

func (o TextOptions) String() string {
	return fmt.Sprintf("text{indexing=%s stored=%t}", o.indexing, o.stored)
}

type textOptionsJSON struct {
	Indexing *TextIndexing `json:"indexing"`
	Stored   *bool         `json:"stored"`
}

func (o TextOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(textOptionsJSON{Indexing: &o.indexing, Stored: &o.stored})
}

// UnmarshalJSON requires both keys to be present.
func (o *TextOptions) UnmarshalJSON(b []byte) error {
	var raw textOptionsJSON
	if err := decodeOptions(b, &raw); err != nil {
		var se *Error
		if errors.As(err, &se) {
			return se
		}
		return Wrap(ErrSchema, "text options", err)
	}
	switch {
	case raw.Indexing == nil:
		return New(ErrSchema, `text options: missing "indexing"`)
	case raw.Stored == nil:
		return New(ErrSchema, `text options: missing "stored"`)
	}
	*o = TextOptions{indexing: *raw.Indexing, stored: *raw.Stored}
	return nil
}

// decodeOptions decodes an options object, rejecting null and unknown keys.
func decodeOptions(b []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errors.New("options must be an object, got null")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
