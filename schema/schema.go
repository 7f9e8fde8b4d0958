package schema

// Field describes one settable attribute of a resource kind: its semantic
// name as the remote API knows it, and the external flag the CLI exposes.
type Field struct {
	Name     string
	Flag     string
	Required bool
	Secret   bool
}

// Schema is an ordered, immutable set of fields for one resource kind.
type Schema struct {
	fields []Field
	index  map[string]int
}

func newSchema(fields ...Field) Schema {
	index := make(map[string]int, len(fields))
	for i, field := range fields {
		index[field.Name] = i
	}
	return Schema{fields: fields, index: index}
}

func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s Schema) Lookup(name string) (Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s Schema) Len() int {
	return len(s.fields)
}

func (s Schema) required() Schema {
	subset := make([]Field, 0, len(s.fields))
	for _, field := range s.fields {
		if field.Required {
			subset = append(subset, field)
		}
	}
	return newSchema(subset...)
}

func (s Schema) withSearchFields() Schema {
	fields := make([]Field, len(s.fields), len(s.fields)+2)
	copy(fields, s.fields)
	if _, ok := s.index[FieldStatus]; !ok {
		fields = append(fields, Field{Name: FieldStatus, Flag: FlagStatus})
	}
	fields = append(fields, Field{Name: FieldQuery, Flag: FlagQuery})
	return newSchema(fields...)
}
