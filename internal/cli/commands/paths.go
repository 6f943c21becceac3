package commands

import (
	"fmt"
	"path/filepath"

	"refactorings/internal/discovery"
)

// relativeTo turns a scanned path back into a project-relative one
func relativeTo(project, path string) (string, error) {
	rel, err := filepath.Rel(project, path)
	if err != nil {
		return "", fmt.Errorf("example %s is outside the project: %w", path, err)
	}
	return discovery.NormalizePath(rel), nil
}
