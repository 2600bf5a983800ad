package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	typeNameText = "text"
	typeNameU32  = "u32"
)

// FieldType is either TextOptions or U32Options. The set is closed:
// consumers switch over both variants.
type FieldType interface {
	ValueKind() ValueKind
	IsStored() bool
	IsIndexed() bool
	typeName() string
	isFieldType()
}

// FieldEntry binds a field name to its type and options.
type FieldEntry struct {
	name      string
	fieldType FieldType
}

func NewTextFieldEntry(name string, opts TextOptions) FieldEntry {
	return FieldEntry{name: name, fieldType: opts}
}

func NewU32FieldEntry(name string, opts U32Options) FieldEntry {
	return FieldEntry{name: name, fieldType: opts}
}

func (e FieldEntry) Name() string { return e.name }

func (e FieldEntry) FieldType() FieldType { return e.fieldType }

func (e FieldEntry) ValueKind() ValueKind { return e.fieldType.ValueKind() }

func (e FieldEntry) IsStored() bool { return e.fieldType.IsStored() }

func (e FieldEntry) IsIndexed() bool { return e.fieldType.IsIndexed() }

// IsFast is only ever true for u32 fields.
func (e FieldEntry) IsFast() bool {
	switch ft := e.fieldType.(type) {
	case TextOptions:
		return false
	case U32Options:
		return ft.IsFast()
	default:
		panic(fmt.Sprintf("schema: unknown field type %T", ft))
	}
}

// TextOptions returns the options of a text field.
func (e FieldEntry) TextOptions() (TextOptions, bool) {
	o, ok := e.fieldType.(TextOptions)
	return o, ok
}

// U32Options returns the options of a u32 field.
func (e FieldEntry) U32Options() (U32Options, bool) {
	o, ok := e.fieldType.(U32Options)
	return o, ok
}

func (e FieldEntry) String() string {
	return fmt.Sprintf("%s:%v", e.name, e.fieldType)
}

type fieldEntryJSON struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Options json.RawMessage `json:"options"`
}

func (e FieldEntry) MarshalJSON() ([]byte, error) {
	if e.fieldType == nil {
		return nil, New(ErrSchema, "field entry without type: "+e.name)
	}
	opts, err := json.Marshal(e.fieldType)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fieldEntryJSON{Name: e.name, Type: e.fieldType.typeName(), Options: opts})
}

func (e *FieldEntry) UnmarshalJSON(b []byte) error {
	var raw fieldEntryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return Wrap(ErrSchema, "field entry", err)
	}
	if len(raw.Options) == 0 || bytes.Equal(bytes.TrimSpace(raw.Options), []byte("null")) {
		return &Error{Kind: ErrSchema, Message: "missing options", Field: raw.Name}
	}
	switch raw.Type {
	case typeNameText:
		var opts TextOptions
		if err := opts.UnmarshalJSON(raw.Options); err != nil {
			return withField(err, raw.Name)
		}
		*e = NewTextFieldEntry(raw.Name, opts)
	case typeNameU32:
		var opts U32Options
		if err := opts.UnmarshalJSON(raw.Options); err != nil {
			return withField(err, raw.Name)
		}
		*e = NewU32FieldEntry(raw.Name, opts)
	default:
		return &Error{Kind: ErrSchema, Message: fmt.Sprintf("unknown field type %q", raw.Type), Field: raw.Name}
	}
	return nil
}

// withField names field on a schema error that does not name one yet.
func withField(err error, field string) error {
	var se *Error
	if !errors.As(err, &se) {
		return &Error{Kind: ErrSchema, Message: "options", Field: field, Cause: err}
	}
	if se.Field != "" {
		return se
	}
	out := *se
	out.Field = field
	return &out
}
