package discovery

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refactorings/internal/naming"
)

func TestKeyForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"./first_set_of_refactorings/split_phase.go", "FirstSetOfRefactorings::SplitPhase"},
		{"first_set_of_refactorings/split_phase.go", "FirstSetOfRefactorings::SplitPhase"},
		{
			"./first_set_of_refactorings/change_function_declaration/simple_mechanics/renaming_a_function.go",
			"FirstSetOfRefactorings::ChangeFunctionDeclaration::SimpleMechanics::RenamingAFunction",
		},
		{"a/b_c/one.ext", "A::BC::One"},
		{".//a//zz/three.go", "A::Zz::Three"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			key, err := KeyForPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestKeyForPath_Errors(t *testing.T) {
	t.Run("invalid segment", func(t *testing.T) {
		_, err := KeyForPath("./Examples/split_phase.go")
		require.Error(t, err)
		assert.True(t, errors.Is(err, naming.ErrInvalidIdentifierFragment))
	})

	t.Run("absolute path", func(t *testing.T) {
		_, err := KeyForPath("/abs/split_phase.go")
		assert.Error(t, err)
	})

	t.Run("parent directory", func(t *testing.T) {
		_, err := KeyForPath("../other/split_phase.go")
		assert.Error(t, err)
	})

	t.Run("no extension", func(t *testing.T) {
		_, err := KeyForPath("./split_phase")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := KeyForPath("./")
		assert.Error(t, err)
	})
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"./first_set_of_refactorings", "first_set_of_refactorings"},
		{"first_set_of_refactorings/", "first_set_of_refactorings"},
		{"./a//b/./c", "a/b/c"},
		{"././a", "a"},
		{".", ""},
		{"/abs//proj/./a/", "/abs/proj/a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.in))
		})
	}
}

func TestProjectRelative(t *testing.T) {
	project := t.TempDir()

	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  bool
	}{
		{name: "relative is normalized", path: "./a//b_c/", expected: "a/b_c"},
		{name: "absolute directory", path: filepath.Join(project, "a", "b_c"), expected: "a/b_c"},
		{name: "absolute file", path: filepath.Join(project, "a", "zz", "three.go"), expected: "a/zz/three.go"},
		{name: "project itself", path: project, expected: ""},
		{name: "outside the project", path: filepath.Dir(project), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := ProjectRelative(project, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rel)
		})
	}
}
