package resource

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Record is an ordered mapping of field name to value, the normalized form of
// one remote resource instance as produced for display or serialization.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

func (r *Record) Get(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Plain returns the record as an unordered map, suitable for handing to
// generic JSON tooling such as jq filters.
func (r *Record) Plain() map[string]any {
	out := make(map[string]any, len(r.values))
	for key, value := range r.values {
		out[key] = value
	}
	return out
}

// MarshalJSON preserves field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromFields normalizes a raw field map into a Record. The href field leads
// when present; the remaining fields follow in sorted order.
func FromFields(fields map[string]any) *Record {
	record := NewRecord()
	if href, ok := fields["href"]; ok {
		record.Set("href", href)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "href" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		record.Set(name, fields[name])
	}
	return record
}
