package schema

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	KindStr ValueKind = iota
	KindU32
)

func (k ValueKind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindU32:
		return "u32"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is either Str or U32.
type Value interface {
	Kind() ValueKind
	isValue()
}

type Str string

func (Str) Kind() ValueKind { return KindStr }
func (Str) isValue()        {}

type U32 uint32

func (U32) Kind() ValueKind { return KindU32 }
func (U32) isValue()        {}

// FieldValue is one value of one field inside a Document.
type FieldValue struct {
	Field Field
	Value Value
}

func (fv FieldValue) String() string {
	switch v := fv.Value.(type) {
	case Str:
		return fmt.Sprintf("%d:%q", fv.Field, string(v))
	case U32:
		return fmt.Sprintf("%d:%d", fv.Field, uint32(v))
	default:
		return fmt.Sprintf("%d:%v", fv.Field, v)
	}
}
