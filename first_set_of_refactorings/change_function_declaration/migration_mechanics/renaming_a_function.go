package migrationmechanics

import (
	"io"
	"math"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Renaming a function
//
// Goal: rename a function with a confusing name.
// Consideration: slower than changing everything at once, but the refactor
// can stop halfway with the old function marked deprecated, and the old
// function is removed only once every reference has moved.

// RenamingAFunctionNamespace is the key the example registers under.
const RenamingAFunctionNamespace = "FirstSetOfRefactorings::ChangeFunctionDeclaration::MigrationMechanics::RenamingAFunction"

const radius = 10

type circumferencer interface {
	circumference(radius float64) float64
}

type renamingBefore struct {
	refactor.Base
}

func (v renamingBefore) circum(radius float64) float64 {
	return 2 * math.Pi * radius
}

// Create a new function with a clearer name
type renamingRefactor1 struct {
	refactor.Base
}

// Deprecated: use circumference.
func (v renamingRefactor1) circum(radius float64) float64 {
	return v.circumference(radius)
}

func (v renamingRefactor1) circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// Test, then apply Inline Function
type renamingRefactor2 struct {
	refactor.Base
}

func (v renamingRefactor2) circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

type renamingTests struct{}

// NewRenamingAFunctionTests returns the example entry point.
func NewRenamingAFunctionTests() domain.Suite {
	return renamingTests{}
}

func (renamingTests) Call(w io.Writer) error {
	before := renamingBefore{refactor.New(w, RenamingAFunctionNamespace, refactor.Before)}
	before.Printf("Circumference: %v\n", before.circum(radius))

	for _, v := range []interface {
		circumferencer
		Printf(format string, args ...any)
	}{
		renamingRefactor1{refactor.New(w, RenamingAFunctionNamespace, refactor.Step(1))},
		renamingRefactor2{refactor.New(w, RenamingAFunctionNamespace, refactor.Step(2))},
	} {
		v.Printf("Circumference: %v\n", v.circumference(radius))
	}
	return nil
}
