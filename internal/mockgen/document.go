// Package mockgen parses OpenAPI input documents into an order-preserving tree.
//
// This file provides the Document type used by the reducer. Go maps do not
// preserve key order, but the reducer's contract ("first path, first method")
// and schema field ordering both depend on the order keys appear in the
// source, so JSON is decoded token-by-token and YAML through yaml.Node, which
// keeps mapping entries in document order.
package mockgen

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type nodeKind int

const (
	kindMapping nodeKind = iota
	kindSequence
	kindScalar
)

// Document is one node of a parsed JSON or YAML tree. Mappings remember the
// order their keys appeared in the source.
type Document struct {
	kind     nodeKind
	keys     []string
	children map[string]*Document
	items    []*Document
	scalar   any
}

// IsMapping reports whether the node is a key/value mapping.
func (d *Document) IsMapping() bool {
	return d != nil && d.kind == kindMapping
}

// Keys returns the mapping keys in source order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Child returns the value for key in a mapping node.
func (d *Document) Child(key string) (*Document, bool) {
	if !d.IsMapping() {
		return nil, false
	}
	child, ok := d.children[key]
	return child, ok
}

// FirstEntry returns the first key/value pair of a mapping in source order.
func (d *Document) FirstEntry() (string, *Document, bool) {
	if !d.IsMapping() || len(d.keys) == 0 {
		return "", nil, false
	}
	key := d.keys[0]
	return key, d.children[key], true
}

// StringValue returns the node's value when it is a string scalar.
func (d *Document) StringValue() (string, bool) {
	if d == nil || d.kind != kindScalar {
		return "", false
	}
	s, ok := d.scalar.(string)
	return s, ok
}

// ParseJSONDocument parses strict JSON into a Document.
func ParseJSONDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}

	doc, err := parseJSONValue(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse JSON document: trailing data after top-level value")
	}

	return doc, nil
}

func parseJSONValue(dec *json.Decoder, tok json.Token) (*Document, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return &Document{kind: kindScalar, scalar: scalarFromToken(tok)}, nil
	}

	switch delim {
	case '{':
		doc := &Document{kind: kindMapping, children: make(map[string]*Document)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}

			valTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			child, err := parseJSONValue(dec, valTok)
			if err != nil {
				return nil, err
			}

			// Last occurrence wins on duplicate keys; order keeps the first.
			if _, seen := doc.children[key]; !seen {
				doc.keys = append(doc.keys, key)
			}
			doc.children[key] = child
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return doc, nil

	case '[':
		doc := &Document{kind: kindSequence}
		for dec.More() {
			itemTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			item, err := parseJSONValue(dec, itemTok)
			if err != nil {
				return nil, err
			}
			doc.items = append(doc.items, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return doc, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func scalarFromToken(tok json.Token) any {
	if num, ok := tok.(json.Number); ok {
		return num.String()
	}
	return tok
}

// ParseYAMLDocument parses a YAML document into a Document. yaml.Node keeps
// mapping entries in document order, so no token handling is needed.
func ParseYAMLDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("failed to parse YAML document: document is empty")
	}

	doc, err := yamlToDocument(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	return doc, nil
}

func yamlToDocument(n *yaml.Node) (*Document, error) {
	switch n.Kind {
	case yaml.MappingNode:
		doc := &Document{kind: kindMapping, children: make(map[string]*Document)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			child, err := yamlToDocument(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			if _, seen := doc.children[key]; !seen {
				doc.keys = append(doc.keys, key)
			}
			doc.children[key] = child
		}
		return doc, nil

	case yaml.SequenceNode:
		doc := &Document{kind: kindSequence}
		for _, item := range n.Content {
			child, err := yamlToDocument(item)
			if err != nil {
				return nil, err
			}
			doc.items = append(doc.items, child)
		}
		return doc, nil

	case yaml.ScalarNode:
		return &Document{kind: kindScalar, scalar: n.Value}, nil

	case yaml.AliasNode:
		return yamlToDocument(n.Alias)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}
