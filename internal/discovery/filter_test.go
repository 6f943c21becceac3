package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	files := []string{
		"first_set_of_refactorings/split_phase.go",
		"first_set_of_refactorings/extract_variable/in_a_class.go",
		"first_set_of_refactorings/inline_variable/in_a_class.go",
		"first_set_of_refactorings/inline_variable/without_a_class.go",
	}

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: 4,
		},
		{
			name:     "wildcard pattern matches suffix",
			pattern:  "*phase.go",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*class*",
			expected: 3,
		},
		{
			name:     "simple contains match",
			pattern:  "without",
			expected: 1,
		},
		{
			name:     "parts in order",
			pattern:  "*in*class*",
			expected: 2,
		},
		{
			name:     "parts out of order",
			pattern:  "*class*in_a*",
			expected: 0,
		},
		{
			name:     "no matches",
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "directories are not matched",
			pattern:  "inline_variable",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(files, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty file list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*.go")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("only wildcards", func(t *testing.T) {
		result := filter.FilterByName([]string{"a.go", "b.go"}, "**")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		result := filter.FilterByName([]string{"b_one.go", "a_one.go"}, "*one*")
		if len(result) != 2 || result[0] != "b_one.go" {
			t.Errorf("expected input order to be kept, got %v", result)
		}
	})
}
