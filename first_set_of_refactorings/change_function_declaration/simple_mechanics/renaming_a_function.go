package simplemechanics

import (
	"io"
	"math"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Renaming a function
//
// Motivation: a good name lets the reader understand what the function does
// without seeing its implementation.
// Goal: rename a function with a confusing name.
// Consideration: every caller and the declaration must change at once.

// RenamingAFunctionNamespace is the key the example registers under.
const RenamingAFunctionNamespace = "FirstSetOfRefactorings::ChangeFunctionDeclaration::SimpleMechanics::RenamingAFunction"

const radius = 10

type renamingBefore struct {
	refactor.Base
}

func (v renamingBefore) circum(radius float64) float64 {
	return 2 * math.Pi * radius
}

// Change the name to something clearer, then find every caller of circum
// and change it to circumference
type renamingRefactor1 struct {
	refactor.Base
}

func (v renamingRefactor1) circumference(radius float64) float64 {
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

	refactor1 := renamingRefactor1{refactor.New(w, RenamingAFunctionNamespace, refactor.Step(1))}
	refactor1.Printf("Circumference: %v\n", refactor1.circumference(radius))
	return nil
}
