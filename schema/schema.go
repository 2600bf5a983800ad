package schema

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Schema is the ordered list of fields of an index. Field handles are
// positions in that list.
//
// A Schema is built once with AddTextField and AddU32Field from a single
// goroutine, then shared read-only. Nothing mutates it after that, so readers
// need no locking.
type Schema struct {
	fields    []FieldEntry
	fieldsMap map[string]Field
}

func NewSchema() *Schema {
	return &Schema{fieldsMap: make(map[string]Field)}
}

func (s *Schema) AddTextField(name string, opts TextOptions) (Field, error) {
	return s.addField(NewTextFieldEntry(name, opts))
}

func (s *Schema) AddU32Field(name string, opts U32Options) (Field, error) {
	return s.addField(NewU32FieldEntry(name, opts))
}

func (s *Schema) addField(entry FieldEntry) (Field, error) {
	if !IsValidFieldName(entry.name) {
		return 0, InvalidFieldNameError(entry.name)
	}
	if s.fieldsMap == nil {
		s.fieldsMap = make(map[string]Field)
	}
	if _, ok := s.fieldsMap[entry.name]; ok {
		return 0, DuplicateFieldError(entry.name)
	}
	field := Field(len(s.fields))
	s.fields = append(s.fields, entry)
	s.fieldsMap[entry.name] = field
	return field, nil
}

// GetField looks a field up by name.
func (s *Schema) GetField(name string) (Field, bool) {
	f, ok := s.fieldsMap[name]
	return f, ok
}

// GetFieldEntry panics when field was not produced by this schema.
func (s *Schema) GetFieldEntry(field Field) FieldEntry {
	if int(field) >= len(s.fields) {
		panic(fmt.Sprintf("schema: %v out of range (schema has %d fields)", field, len(s.fields)))
	}
	return s.fields[field]
}

func (s *Schema) HasField(field Field) bool {
	return int(field) < len(s.fields)
}

func (s *Schema) NumFields() int {
	return len(s.fields)
}

// Fields returns the entries in handle order.
func (s *Schema) Fields() []FieldEntry {
	out := make([]FieldEntry, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the registered names sorted alphabetically.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for _, e := range s.fields {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

func (s *Schema) fieldName(field Field) string {
	if !s.HasField(field) {
		return field.String()
	}
	return s.fields[field].name
}

// ValidateDocument checks that every value of doc has the kind declared by
// its field.
func (s *Schema) ValidateDocument(doc *Document) error {
	if doc == nil {
		return New(ErrSchema, "nil document")
	}
	for _, fv := range doc.fieldValues {
		if !s.HasField(fv.Field) {
			return UnknownFieldError(fv.Field.String())
		}
		entry := s.fields[fv.Field]
		if fv.Value == nil {
			return TypeMismatch(entry.name, "missing value")
		}
		if want, got := entry.ValueKind(), fv.Value.Kind(); want != got {
			return TypeMismatch(entry.name, fmt.Sprintf("expected %s value, got %s", want, got))
		}
		if str, ok := fv.Value.(Str); ok && !utf8.ValidString(string(str)) {
			return TypeMismatch(entry.name, "text value is not valid UTF-8")
		}
	}
	return nil
}
