// Package firstset is the first set of refactorings from the catalog. Each
// example file holds a chain of variants that behave the same, from the code
// before the refactoring through every intermediate step, and a Tests entry
// point that runs them all so their output can be compared.
//
// Examples are run by the refactor command, which finds them by file name:
// first_set_of_refactorings/split_phase.go is looked up as
// FirstSetOfRefactorings::SplitPhase.
package firstset
