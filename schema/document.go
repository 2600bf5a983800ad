package schema

import "sort"

// Document is an ordered multiset of field values. A field may appear
// any number of times. Documents are checked against a Schema with
// Schema.ValidateDocument before indexing.
type Document struct {
	fieldValues []FieldValue
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Add(fv FieldValue) {
	d.fieldValues = append(d.fieldValues, fv)
}

func (d *Document) AddText(field Field, text string) {
	d.Add(FieldValue{Field: field, Value: Str(text)})
}

func (d *Document) AddU32(field Field, v uint32) {
	d.Add(FieldValue{Field: field, Value: U32(v)})
}

func (d *Document) Len() int {
	return len(d.fieldValues)
}

// FieldValues returns the values in insertion order.
func (d *Document) FieldValues() []FieldValue {
	out := make([]FieldValue, len(d.fieldValues))
	copy(out, d.fieldValues)
	return out
}

// SortedFieldValues groups values by field. Values of one field keep their
// insertion order.
func (d *Document) SortedFieldValues() []FieldValue {
	out := d.FieldValues()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})
	return out
}

// Get returns the first value of field.
func (d *Document) Get(field Field) (Value, bool) {
	for _, fv := range d.fieldValues {
		if fv.Field == field {
			return fv.Value, true
		}
	}
	return nil, false
}

func (d *Document) GetAll(field Field) []Value {
	var out []Value
	for _, fv := range d.fieldValues {
		if fv.Field == field {
			out = append(out, fv.Value)
		}
	}
	return out
}
