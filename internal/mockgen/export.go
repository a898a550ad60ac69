// Package mockgen writes generated artifacts to disk.
//
// This file is the only part of the pipeline that touches the filesystem.
// Everything upstream stays pure so the CLI (or any other caller) decides
// where artifacts land.
package mockgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifacts writes the JSON data export and the MSW handler module for
// the records into outDir, creating the directory if needed. It returns the
// paths of the two files written.
func WriteArtifacts(records Records, endpoint, method, outDir string) (jsonPath, handlerPath string, err error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := ExportJSON(records)
	if err != nil {
		return "", "", err
	}

	jsonPath = filepath.Join(outDir, JSONFileName(method, endpoint))
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	handlerPath = filepath.Join(outDir, HandlerFileName(method, endpoint))
	snippet := RenderHandlers(records, endpoint, method)
	if err := os.WriteFile(handlerPath, []byte(snippet), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", handlerPath, err)
	}

	return jsonPath, handlerPath, nil
}
