// Package mockgen parses user-entered schema text.
//
// A schema is a flat JSON object mapping field names to type-tag strings,
// e.g. {"id":"uuid","joined_at":"date:YYYY-MM-DD"}. Field order is preserved
// from the source text so generated records and exports keep the same shape
// the user wrote.
package mockgen

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Field is one schema entry: a field name and the type-tag that decides what
// kind of value the field receives.
type Field struct {
	Name string
	Tag  string
}

// Schema is an ordered list of fields. It is replaced wholesale on each
// parse or reduction, never edited in place.
type Schema []Field

// ParseSchema parses schema text into a Schema. It fails with a
// *SchemaFormatError when the text is not valid JSON or decodes to anything
// other than an object. Unrecognized type-tags are accepted; they synthesize
// to the unknown marker later rather than failing here.
func ParseSchema(text string) (Schema, error) {
	doc, err := ParseJSONDocument([]byte(text))
	if err != nil {
		return nil, &SchemaFormatError{Reason: "schema text is not valid JSON", Err: err}
	}

	switch doc.kind {
	case kindMapping:
		// ok
	case kindSequence:
		return nil, &SchemaFormatError{Reason: "schema must be a JSON object, not an array"}
	default:
		if doc.scalar == nil {
			return nil, &SchemaFormatError{Reason: "schema must be a JSON object, not null"}
		}
		return nil, &SchemaFormatError{Reason: "schema must be a JSON object"}
	}

	schema := make(Schema, 0, len(doc.keys))
	for _, name := range doc.keys {
		schema = append(schema, Field{Name: name, Tag: tagFromNode(doc.children[name])})
	}
	return schema, nil
}

// tagFromNode extracts a type-tag from a schema value node. Non-string values
// are tolerated rather than rejected: their literal text (or nothing, for
// nested structures) becomes the tag, which the synthesizer maps to the
// unknown marker.
func tagFromNode(node *Document) string {
	if node == nil || node.kind != kindScalar {
		return ""
	}
	if s, ok := node.scalar.(string); ok {
		return s
	}
	if node.scalar == nil {
		return ""
	}
	return fmt.Sprintf("%v", node.scalar)
}

// FieldNames returns the field names in schema order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON renders the schema as a JSON object with fields in schema
// order, so a reduced schema round-trips through ParseSchema unchanged.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		tag, err := json.Marshal(f.Tag)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(tag)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
