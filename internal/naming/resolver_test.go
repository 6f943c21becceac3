package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "nested namespace",
			fragment: "first_set_of_refactorings::change_function_declaration",
			expected: "FirstSetOfRefactorings::ChangeFunctionDeclaration",
		},
		{
			name:     "single segment",
			fragment: "split_phase",
			expected: "SplitPhase",
		},
		{
			name:     "no underscores or separators",
			fragment: "refactorings",
			expected: "Refactorings",
		},
		{
			name:     "single letter words",
			fragment: "a::b_c::one",
			expected: "A::BC::One",
		},
		{
			name:     "digits kept in place",
			fragment: "set_2::step1_done",
			expected: "Set2::Step1Done",
		},
		{
			name:     "deep path",
			fragment: "first_set_of_refactorings::change_function_declaration::migration_mechanics::adding_a_parameter",
			expected: "FirstSetOfRefactorings::ChangeFunctionDeclaration::MigrationMechanics::AddingAParameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_InvalidFragments(t *testing.T) {
	fragments := []string{
		"",
		"Split_phase",
		"split-phase",
		"split phase",
		"split__phase",
		"_split_phase",
		"split_phase_",
		"first::",
		"::first",
		"first::::second",
		"first:second",
		"first:::second",
		"split.phase",
		"spl/it",
	}

	for _, fragment := range fragments {
		t.Run(fragment, func(t *testing.T) {
			result, err := Resolve(fragment)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidIdentifierFragment), "unexpected error: %v", err)
			assert.Empty(t, result)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve("inline_function::simple_case")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Resolve("inline_function::simple_case")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFragment_RoundTrip(t *testing.T) {
	fragments := []string{
		"split_phase",
		"first_set_of_refactorings::split_phase",
		"a::b_c::one",
		"extract_function::reassigning_a_local_variable",
		"set2::step1_done",
	}

	for _, fragment := range fragments {
		t.Run(fragment, func(t *testing.T) {
			namespace, err := Resolve(fragment)
			require.NoError(t, err)
			assert.Equal(t, fragment, Fragment(namespace))

			again, err := Resolve(Fragment(namespace))
			require.NoError(t, err)
			assert.Equal(t, namespace, again)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a::b_c::one", Join([]string{"a", "b_c", "one"}))
	assert.Equal(t, "one", Join([]string{"one"}))
	assert.Equal(t, "", Join(nil))
}
