package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		expected Selection
	}{
		{
			name:     "absent selector runs everything",
			selector: "",
			expected: Selection{Kind: SelectAll},
		},
		{
			name:     "file gets a ./ prefix",
			selector: "examples/foo.go",
			expected: Selection{Kind: SelectFile, Path: "./examples/foo.go"},
		},
		{
			name:     "rooted file kept as is",
			selector: "./examples/foo.go",
			expected: Selection{Kind: SelectFile, Path: "./examples/foo.go"},
		},
		{
			name:     "no dot in final segment is a directory",
			selector: "examples/foo",
			expected: Selection{Kind: SelectDirectory, Path: "examples/foo"},
		},
		{
			name:     "dot in a parent segment only is still a directory",
			selector: "./examples.v2/foo",
			expected: Selection{Kind: SelectDirectory, Path: "examples.v2/foo"},
		},
		{
			name:     "directory is normalized",
			selector: "./first_set_of_refactorings//extract_function/",
			expected: Selection{Kind: SelectDirectory, Path: "first_set_of_refactorings/extract_function"},
		},
		{
			name:     "absolute directory stays absolute",
			selector: "/abs/proj/a//b_c/",
			expected: Selection{Kind: SelectDirectory, Path: "/abs/proj/a/b_c"},
		},
		{
			name:     "current directory",
			selector: ".",
			expected: Selection{Kind: SelectDirectory, Path: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSelector(tt.selector))
		})
	}
}

func TestSelectionKind_String(t *testing.T) {
	assert.Equal(t, "all", SelectAll.String())
	assert.Equal(t, "directory", SelectDirectory.String())
	assert.Equal(t, "file", SelectFile.String())
}
