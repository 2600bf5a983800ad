package schema

import (
	"encoding/json"
	"fmt"
)

// U32Options configures a u32 field. Unlike text, a u32 field is either
// indexed or not. Fast fields get a dense doc id to value column.
type U32Options struct {
	indexed bool
	fast    bool
	stored  bool
}

// FAST keeps values in the fast value column only.
var FAST = U32Options{fast: true}

func NewU32Options() U32Options {
	return U32Options{}
}

func (o U32Options) SetStored() U32Options {
	o.stored = true
	return o
}

func (o U32Options) SetIndexed() U32Options {
	o.indexed = true
	return o
}

func (o U32Options) SetFast() U32Options {
	o.fast = true
	return o
}

func (o U32Options) IsStored() bool { return o.stored }

func (o U32Options) IsIndexed() bool { return o.indexed }

func (o U32Options) IsFast() bool { return o.fast }

func (o U32Options) ValueKind() ValueKind { return KindU32 }

func (o U32Options) typeName() string { return typeNameU32 }

func (U32Options) isFieldType() {}

func (o U32Options) Or(other U32Options) U32Options {
	return U32Options{
		indexed: o.indexed || other.indexed,
		fast:    o.fast || other.fast,
		stored:  o.stored || other.stored,
	}
}

func (o U32Options) String() string {
	return fmt.Sprintf("u32{indexed=%t fast=%t stored=%t}", o.indexed, o.fast, o.stored)
}

type u32OptionsJSON struct {
	Indexed *bool `json:"indexed"`
	Fast    *bool `json:"fast"`
	Stored  *bool `json:"stored"`
}

func (o U32Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(u32OptionsJSON{Indexed: &o.indexed, Fast: &o.fast, Stored: &o.stored})
}

// UnmarshalJSON requires every flag to be present.
func (o *U32Options) UnmarshalJSON(b []byte) error {
	var raw u32OptionsJSON
	if err := decodeOptions(b, &raw); err != nil {
		return Wrap(ErrSchema, "u32 options", err)
	}
	switch {
	case raw.Indexed == nil:
		return New(ErrSchema, `u32 options: missing "indexed"`)
	case raw.Fast == nil:
		return New(ErrSchema, `u32 options: missing "fast"`)
	case raw.Stored == nil:
		return New(ErrSchema, `u32 options: missing "stored"`)
	}
	*o = U32Options{indexed: *raw.Indexed, fast: *raw.Fast, stored: *raw.Stored}
	return nil
}
