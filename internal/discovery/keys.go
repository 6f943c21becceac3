package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"refactorings/internal/naming"
)

// NormalizePath strips a leading "./" and re-joins the remaining segments with
// single forward slashes. An absolute path stays absolute.
func NormalizePath(path string) string {
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	rooted := strings.HasPrefix(path, "/")

	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}
	if rooted {
		return "/" + strings.Join(segments, "/")
	}
	return strings.Join(segments, "/")
}

// ProjectRelative turns a path given by the user into a normalized path
// relative to project. Relative paths are taken as already relative to the
// project; absolute paths must lie inside it.
func ProjectRelative(project, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return NormalizePath(path), nil
	}
	base, err := filepath.Abs(project)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("example %s is outside the project: %w", path, err)
	}
	rel = NormalizePath(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("example %s is outside the project %s", path, base)
	}
	return rel, nil
}

// KeyForPath derives the namespace key an example file registers under.
//
// The path is split on "/" and "."; the root marker and the final element
// (the extension) are dropped, every directory segment and the file stem are
// kept:
//
//	KeyForPath("./first_set_of_refactorings/split_phase.go") // "FirstSetOfRefactorings::SplitPhase"
func KeyForPath(path string) (string, error) {
	normalized := NormalizePath(path)
	if filepath.IsAbs(path) || normalized == "" {
		return "", fmt.Errorf("example path must be relative to the project: %q", path)
	}
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return "", fmt.Errorf("example path leaves the project: %q", path)
		}
	}

	parts := strings.FieldsFunc("./"+normalized, func(r rune) bool {
		return r == '/' || r == '.'
	})
	if len(parts) < 2 {
		return "", fmt.Errorf("example path has no extension: %q", path)
	}

	key, err := naming.Resolve(naming.Join(parts[:len(parts)-1]))
	if err != nil {
		return "", fmt.Errorf("example path %q: %w", path, err)
	}
	return key, nil
}
