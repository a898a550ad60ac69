// Package mockgen renders generated records as MSW handler modules.
//
// This file shapes the two text artifacts the tool produces: a TypeScript
// module registering one MSW (Mock Service Worker) handler that responds
// with the generated records, and a pretty-printed JSON export of the same
// records. Rendering never fails; with no records it emits a placeholder
// comment instead of a handler.
package mockgen

import (
	"fmt"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

const handlerTemplate = `import { http, HttpResponse } from 'msw'

export const handlers = [
  http.%s('%s', () => {
    return HttpResponse.json(%s)
  }),
]
`

const emptyHandlerSnippet = "// No mock data generated yet.\n"

// DefaultEndpoint is used when the endpoint text is empty.
const DefaultEndpoint = "/"

var nonWordPattern = regexp.MustCompile(`[^\w-]`)

// IsValidMethod reports whether method is one of the HTTP methods the
// renderer supports.
func IsValidMethod(method string) bool {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case "GET", "POST", "PUT", "DELETE":
		return true
	}
	return false
}

// RenderHandlers renders the records as an MSW handler module registering
// one handler for method+endpoint. The method is lower-cased for the
// snippet; an empty endpoint becomes DefaultEndpoint. Never fails.
func RenderHandlers(records Records, endpoint, method string) string {
	if len(records) == 0 {
		return emptyHandlerSnippet
	}

	body, err := json.MarshalIndent(records, "    ", "  ")
	if err != nil {
		// Records hold only JSON-representable values; keep the
		// never-fails contract if that ever changes.
		body = []byte("[]")
	}

	return fmt.Sprintf(handlerTemplate, normalizeMethod(method), normalizeEndpoint(endpoint), body)
}

// ExportJSON serializes the records as a 2-space-indented JSON array.
func ExportJSON(records Records) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize records: %w", err)
	}
	return data, nil
}

// SanitizeEndpoint makes an endpoint safe for use in a filename by replacing
// every character outside [A-Za-z0-9_-] with an underscore.
func SanitizeEndpoint(endpoint string) string {
	return nonWordPattern.ReplaceAllString(normalizeEndpoint(endpoint), "_")
}

// JSONFileName derives the data export filename: <METHOD>_<sanitized>.json.
func JSONFileName(method, endpoint string) string {
	return fmt.Sprintf("%s_%s.json", strings.ToUpper(normalizeMethod(method)), SanitizeEndpoint(endpoint))
}

// HandlerFileName derives the handler module filename:
// msw_<METHOD>_<sanitized>.ts.
func HandlerFileName(method, endpoint string) string {
	return fmt.Sprintf("msw_%s_%s.ts", strings.ToUpper(normalizeMethod(method)), SanitizeEndpoint(endpoint))
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return DefaultEndpoint
	}
	return endpoint
}

func normalizeMethod(method string) string {
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		return "get"
	}
	return method
}
