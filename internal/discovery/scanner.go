package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"refactorings/internal/config"
)

// Scanner scans for example files in a directory
type Scanner struct {
	ext          string
	skipDirs     map[string]bool
	skipFiles    map[string]bool
	skipSuffixes []string
}

// NewScanner creates a new Scanner following the config's example file
// convention
func NewScanner(cfg *config.Config) *Scanner {
	s := &Scanner{
		ext:          cfg.ExampleExt,
		skipDirs:     make(map[string]bool),
		skipFiles:    make(map[string]bool),
		skipSuffixes: cfg.SkipSuffixes,
	}
	for _, dir := range cfg.PathsToIgnore {
		s.skipDirs[dir] = true
	}
	for _, name := range cfg.SkipFiles {
		s.skipFiles[name] = true
	}
	return s
}

// IsExample reports whether a file name follows the example file convention.
func (s *Scanner) IsExample(name string) bool {
	if !strings.HasSuffix(name, s.ext) || s.skipFiles[name] {
		return false
	}
	for _, suffix := range s.skipSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	return true
}

// Scan finds all example files under root. Paths are returned sorted by their
// full string so the run order does not depend on the file system.
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("example path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("example path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if s.IsExample(d.Name()) {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
