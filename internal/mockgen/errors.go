// Package mockgen defines the error types surfaced by the generation pipeline.
//
// All pipeline failures are typed so the CLI can distinguish schema-text
// problems from OpenAPI document problems. Unknown type-tags are deliberately
// not an error anywhere in this package.
package mockgen

import "fmt"

// SchemaFormatError reports schema text that is not a flat JSON object:
// invalid JSON, null, a scalar, or an array.
type SchemaFormatError struct {
	Reason string
	Err    error // underlying decode error, if any
}

func (e *SchemaFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid schema: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid schema: %s", e.Reason)
}

func (e *SchemaFormatError) Unwrap() error {
	return e.Err
}

// OpenAPIShapeError reports an OpenAPI document the reducer cannot use.
// Reason identifies the exact node that was missing or malformed.
type OpenAPIShapeError struct {
	Reason string
}

func (e *OpenAPIShapeError) Error() string {
	return "openapi: " + e.Reason
}
