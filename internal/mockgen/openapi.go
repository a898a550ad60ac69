// Package mockgen reduces OpenAPI documents to flat schemas.
//
// The reducer deliberately examines only the first path's first method and
// its 200/application-json response. Documents with multiple operations are
// under-served by design; widening the scan would change the tool's contract.
package mockgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReducedOperation is the outcome of one reduction: the operation the
// reducer picked and the flat schema derived from its response.
type ReducedOperation struct {
	Path   string
	Method string
	Schema Schema
}

// LoadDocument reads and parses an OpenAPI document. The parser is selected
// by file extension: .json is strict JSON, .yaml/.yml is YAML. Content is
// never sniffed.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSONDocument(data)
	case ".yaml", ".yml":
		return ParseYAMLDocument(data)
	default:
		return nil, fmt.Errorf("unsupported document extension %q (expected .json, .yaml, or .yml)", filepath.Ext(path))
	}
}

// Reduce extracts a flat schema from an OpenAPI document: first path, first
// method, responses["200"].content["application/json"].schema, then either
// the array item properties or the object properties. Each missing node
// fails fast with an *OpenAPIShapeError naming what was absent.
func Reduce(doc *Document) (*ReducedOperation, error) {
	paths, ok := doc.Child("paths")
	if !ok || !paths.IsMapping() {
		return nil, &OpenAPIShapeError{Reason: "paths not found"}
	}

	path, pathItem, ok := paths.FirstEntry()
	if !ok {
		// Present but empty: there is no first path to reduce.
		return nil, &OpenAPIShapeError{Reason: "paths not found"}
	}

	method, operation, ok := pathItem.FirstEntry()
	if !ok {
		return nil, &OpenAPIShapeError{Reason: "application/json schema not found"}
	}

	schemaNode := operation
	for _, hop := range []string{"responses", "200", "content", "application/json", "schema"} {
		schemaNode, ok = schemaNode.Child(hop)
		if !ok {
			return nil, &OpenAPIShapeError{Reason: "application/json schema not found"}
		}
	}

	schema, err := reduceSchemaNode(schemaNode)
	if err != nil {
		return nil, err
	}

	return &ReducedOperation{Path: path, Method: strings.ToUpper(method), Schema: schema}, nil
}

func reduceSchemaNode(node *Document) (Schema, error) {
	schemaType, _ := stringChild(node, "type")

	switch schemaType {
	case "array":
		if items, ok := node.Child("items"); ok {
			if props, ok := items.Child("properties"); ok && props.IsMapping() {
				return reduceProperties(props), nil
			}
		}
	case "object":
		if props, ok := node.Child("properties"); ok && props.IsMapping() {
			return reduceProperties(props), nil
		}
	}

	return nil, &OpenAPIShapeError{Reason: "unsupported OpenAPI schema shape"}
}

func reduceProperties(props *Document) Schema {
	schema := make(Schema, 0, len(props.Keys()))
	for _, name := range props.Keys() {
		property, _ := props.Child(name)
		propType, _ := stringChild(property, "type")
		propFormat, _ := stringChild(property, "format")
		schema = append(schema, Field{Name: name, Tag: mapSchemaType(propType, propFormat)})
	}
	return schema
}

// mapSchemaType converts an OpenAPI property type/format pair to a type-tag.
// Format wins over type; anything unrecognized defaults to string.
func mapSchemaType(schemaType, format string) string {
	switch format {
	case "uuid":
		return "uuid"
	case "email":
		return "email"
	case "date", "date-time":
		return "date:YYYY-MM-DD"
	}

	switch schemaType {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	}

	return "string"
}

func stringChild(node *Document, key string) (string, bool) {
	child, ok := node.Child(key)
	if !ok {
		return "", false
	}
	return child.StringValue()
}
