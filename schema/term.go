package schema

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

const fieldHeaderLen = 4

// Term is the inverted index key for a (field, value) pair.
//
// Layout: the field handle as a 4 byte big-endian integer, followed by the
// value. u32 values are written as 4 byte big-endian integers and text values
// as their raw UTF-8 bytes, so byte order is term order.
type Term struct {
	data []byte
}

// NewTerm encodes field and v. The value kind must match the declared
// type of field; Schema.ValidateDocument checks that upstream.
func NewTerm(field Field, v Value) Term {
	switch v := v.(type) {
	case Str:
		return TermFromText(field, string(v))
	case U32:
		return TermFromU32(field, uint32(v))
	default:
		panic(fmt.Sprintf("schema: unknown value type %T", v))
	}
}

func TermFromText(field Field, text string) Term {
	data := make([]byte, fieldHeaderLen, fieldHeaderLen+len(text))
	binary.BigEndian.PutUint32(data, uint32(field))
	data = append(data, text...)
	return Term{data: data}
}

func TermFromU32(field Field, v uint32) Term {
	data := make([]byte, fieldHeaderLen+4)
	binary.BigEndian.PutUint32(data, uint32(field))
	binary.BigEndian.PutUint32(data[fieldHeaderLen:], v)
	return Term{data: data}
}

// TermFromBytes wraps an encoding read back from storage.
func TermFromBytes(b []byte) (Term, error) {
	if len(b) < fieldHeaderLen {
		return Term{}, New(ErrSchema, fmt.Sprintf("term too short: %d bytes", len(b)))
	}
	data := make([]byte, len(b))
	copy(data, b)
	return Term{data: data}, nil
}

// Bytes returns the canonical encoding. Callers must not modify it.
func (t Term) Bytes() []byte { return t.data }

func (t Term) Field() Field {
	return Field(binary.BigEndian.Uint32(t.data[:fieldHeaderLen]))
}

func (t Term) ValueBytes() []byte { return t.data[fieldHeaderLen:] }

func (t Term) Text() string { return string(t.ValueBytes()) }

// U32 decodes the value of a term built from a u32 value.
func (t Term) U32() (uint32, bool) {
	vb := t.ValueBytes()
	if len(vb) != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(vb), true
}

func (t Term) Compare(other Term) int { return bytes.Compare(t.data, other.data) }

func (t Term) Equal(other Term) bool { return bytes.Equal(t.data, other.data) }

func (t Term) String() string {
	vb := t.ValueBytes()
	if utf8.Valid(vb) {
		return fmt.Sprintf("Term(field=%d, %q)", t.Field(), string(vb))
	}
	return fmt.Sprintf("Term(field=%d, %x)", t.Field(), vb)
}
