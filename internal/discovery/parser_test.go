package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_FindVariants(t *testing.T) {
	parser := NewParser()

	testFile := filepath.Join(t.TempDir(), "split_phase.go")
	content := `package firstset

type splitPhaseProduct struct{}

type splitPhaseRefactor2 struct {
	refactor.Base
}

type splitPhaseBefore struct {
	refactor.Base
}

type splitPhaseRefactor10 struct{}

type splitPhaseRefactor1 struct{}

type inAClassAfterRefactor struct{}

type priceOrderer interface{}
`
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	t.Run("finds variants in chain order", func(t *testing.T) {
		variants, err := parser.FindVariants(testFile)
		require.NoError(t, err)
		assert.Equal(t, []string{"BeforeRefactor", "Refactor1", "Refactor2", "Refactor10", "AfterRefactor"}, variants)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindVariants("/non/existent/file.go")
		assert.Error(t, err)
	})
}

func TestParser_FindVariants_NoVariants(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "empty.go")
	require.NoError(t, os.WriteFile(testFile, []byte("package x\n\ntype reading struct{}\n"), 0644))

	variants, err := NewParser().FindVariants(testFile)
	require.NoError(t, err)
	assert.Empty(t, variants)
}
