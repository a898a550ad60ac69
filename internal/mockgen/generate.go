// Package mockgen assembles synthesized values into records.
//
// A Record keeps its fields in schema order, including through JSON
// marshal/unmarshal, so exported data always mirrors the shape the user
// declared. Generation cannot fail: bad counts are clamped and bad tags
// synthesize to the unknown marker.
package mockgen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Bounds applied to every requested record count.
const (
	MinCount = 1
	MaxCount = 10000
)

// Record is one generated object: field name to synthesized value, field
// order matching the schema it was generated from.
type Record struct {
	keys   []string
	values map[string]any
}

// Records is one generation's ordered output.
type Records []Record

// ParseCount converts user-entered count text to a usable count. Non-numeric
// or empty text defaults to 1; the result is clamped to [MinCount, MaxCount].
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = 1
	}
	return clampCount(n)
}

func clampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// Record builds one record from the schema, synthesizing every field
// independently in schema order.
func (g *Generator) Record(schema Schema) Record {
	r := Record{
		keys:   make([]string, 0, len(schema)),
		values: make(map[string]any, len(schema)),
	}
	for _, f := range schema {
		r.keys = append(r.keys, f.Name)
		r.values[f.Name] = g.Value(f.Tag)
	}
	return r
}

// Generate builds count records from the schema. Count is clamped to
// [MinCount, MaxCount] before generation; the call never fails.
func (g *Generator) Generate(schema Schema, count int) Records {
	count = clampCount(count)
	records := make(Records, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.Record(schema))
	}
	return records
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.keys)
}

// Keys returns the record's field names in schema order.
func (r Record) Keys() []string {
	return r.keys
}

// Get returns the value for a field name.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// MarshalJSON renders the record as a JSON object with fields in schema
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, preserving the key
// order of the source text.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key is not a string: %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode field %q: %w", key, err)
		}

		if _, seen := r.values[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.values[key] = value
	}

	_, err = dec.Token()
	return err
}
