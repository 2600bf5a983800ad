package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

type schemaJSON struct {
	Fields []FieldEntry `json:"fields"`
}

// ToJSON encodes the schema. Fields are written in handle order and every
// option flag is written explicitly.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	fields := s.fields
	if fields == nil {
		fields = []FieldEntry{}
	}
	return json.Marshal(schemaJSON{Fields: fields})
}

// UnmarshalJSON replays the registrations in order, so malformed or
// duplicate names are rejected the same way AddTextField would.
func (s *Schema) UnmarshalJSON(b []byte) error {
	var raw schemaJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		var e *Error
		if errors.As(err, &e) {
			return err
		}
		return Wrap(ErrSchema, "json parse", err)
	}
	built := NewSchema()
	for _, entry := range raw.Fields {
		if _, err := built.addField(entry); err != nil {
			return err
		}
	}
	*s = *built
	return nil
}

func FromJSON(b []byte) (*Schema, error) {
	s := NewSchema()
	if err := json.Unmarshal(b, s); err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, Wrap(ErrSchema, "json parse", err)
	}
	return s, nil
}

// ParseDocument builds a Document from a JSON object keyed by field name.
// Each member is a single value or an array of values. Text fields take
// strings and u32 fields take non-negative integers.
func (s *Schema) ParseDocument(b []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, Wrap(ErrSchema, "document json", err)
	}
	doc := NewDocument()
	// Iterate in field order so documents parse deterministically.
	for i, entry := range s.fields {
		msg, ok := raw[entry.name]
		if !ok {
			continue
		}
		delete(raw, entry.name)
		values, err := decodeJSONValues(msg)
		if err != nil {
			return nil, &Error{Kind: ErrSchema, Message: "document json", Field: entry.name, Cause: err}
		}
		for _, v := range values {
			val, err := coerceJSONValue(entry, v)
			if err != nil {
				return nil, err
			}
			doc.Add(FieldValue{Field: Field(i), Value: val})
		}
	}
	for name := range raw {
		return nil, UnknownFieldError(name)
	}
	return doc, nil
}

func decodeJSONValues(msg json.RawMessage) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if arr, ok := v.([]any); ok {
		return arr, nil
	}
	return []any{v}, nil
}

func coerceJSONValue(entry FieldEntry, v any) (Value, error) {
	switch entry.fieldType.(type) {
	case TextOptions:
		s, ok := v.(string)
		if !ok {
			return nil, TypeMismatch(entry.name, fmt.Sprintf("expected string, got %T", v))
		}
		return Str(s), nil
	case U32Options:
		n, ok := v.(json.Number)
		if !ok {
			return nil, TypeMismatch(entry.name, fmt.Sprintf("expected number, got %T", v))
		}
		i, err := n.Int64()
		if err != nil || i < 0 || i > math.MaxUint32 {
			return nil, TypeMismatch(entry.name, "expected u32, got "+n.String())
		}
		return U32(uint32(i)), nil
	default:
		panic(fmt.Sprintf("schema: unknown field type %T", entry.fieldType))
	}
}

// NamedDocument is the JSON friendly form of a Document.
type NamedDocument map[string][]any

// ToNamedDocument groups the values of doc by field name.
func (s *Schema) ToNamedDocument(doc *Document) NamedDocument {
	out := make(NamedDocument)
	for _, fv := range doc.SortedFieldValues() {
		name := s.fieldName(fv.Field)
		switch v := fv.Value.(type) {
		case Str:
			out[name] = append(out[name], string(v))
		case U32:
			out[name] = append(out[name], uint32(v))
		}
	}
	return out
}
