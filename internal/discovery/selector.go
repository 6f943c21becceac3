package discovery

import (
	"path"
	"path/filepath"
	"strings"
)

// SelectionKind tells the runner how to interpret a run selector
type SelectionKind int

const (
	// SelectAll runs every default collection
	SelectAll SelectionKind = iota
	// SelectDirectory runs every example beneath a directory
	SelectDirectory
	// SelectFile runs exactly one example file
	SelectFile
)

func (k SelectionKind) String() string {
	switch k {
	case SelectDirectory:
		return "directory"
	case SelectFile:
		return "file"
	default:
		return "all"
	}
}

// Selection is a parsed run selector
type Selection struct {
	Kind SelectionKind
	Path string
}

// ParseSelector interprets the optional positional argument of a run. An
// empty selector selects everything; a selector whose final path segment
// contains a "." is a file; anything else is a directory.
func ParseSelector(selector string) Selection {
	if selector == "" {
		return Selection{Kind: SelectAll}
	}

	selector = filepath.ToSlash(selector)
	trimmed := strings.TrimRight(selector, "/")
	if strings.Contains(path.Base(trimmed), ".") && trimmed != "." && trimmed != ".." {
		if !strings.HasPrefix(trimmed, "./") && !path.IsAbs(trimmed) {
			trimmed = "./" + trimmed
		}
		return Selection{Kind: SelectFile, Path: trimmed}
	}

	return Selection{Kind: SelectDirectory, Path: NormalizePath(selector)}
}
