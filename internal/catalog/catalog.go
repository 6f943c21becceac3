// Package catalog registers the entry point of every example shipped under
// first_set_of_refactorings. Adding an example means adding its file and one
// line here.
package catalog

import (
	firstset "refactorings/first_set_of_refactorings"
	"refactorings/first_set_of_refactorings/change_function_declaration/migration_mechanics"
	"refactorings/first_set_of_refactorings/change_function_declaration/simple_mechanics"
	"refactorings/first_set_of_refactorings/extract_function"
	"refactorings/first_set_of_refactorings/extract_variable"
	"refactorings/first_set_of_refactorings/inline_function"
	"refactorings/first_set_of_refactorings/inline_variable"
	"refactorings/internal/domain"
	"refactorings/internal/registry"
)

// Entry pairs a namespace key with the factory of its entry point
type Entry struct {
	Key     string
	Factory domain.Factory
}

// Entries lists the catalog in path order.
func Entries() []Entry {
	return []Entry{
		{migrationmechanics.AddingAParameterNamespace, migrationmechanics.NewAddingAParameterTests},
		{migrationmechanics.ChangingAParameterToOneOfItsPropertiesNamespace, migrationmechanics.NewChangingAParameterToOneOfItsPropertiesTests},
		{migrationmechanics.RenamingAFunctionNamespace, migrationmechanics.NewRenamingAFunctionTests},
		{simplemechanics.RenamingAFunctionNamespace, simplemechanics.NewRenamingAFunctionTests},
		{firstset.CombineFunctionsIntoAClassNamespace, firstset.NewCombineFunctionsIntoAClassTests},
		{firstset.CombineFunctionsIntoATransformNamespace, firstset.NewCombineFunctionsIntoATransformTests},
		{extractfunction.NoVariablesOutOfScopeNamespace, extractfunction.NewNoVariablesOutOfScopeTests},
		{extractfunction.ReassigningALocalVariableNamespace, extractfunction.NewReassigningALocalVariableTests},
		{extractfunction.UsingLocalVariablesNamespace, extractfunction.NewUsingLocalVariablesTests},
		{extractvariable.InAClassNamespace, extractvariable.NewInAClassTests},
		{extractvariable.WithoutAClassNamespace, extractvariable.NewWithoutAClassTests},
		{inlinefunction.DifferingVariableNamesNamespace, inlinefunction.NewDifferingVariableNamesTests},
		{inlinefunction.SimpleCaseNamespace, inlinefunction.NewSimpleCaseTests},
		{inlinevariable.InAClassNamespace, inlinevariable.NewInAClassTests},
		{inlinevariable.WithoutAClassNamespace, inlinevariable.NewWithoutAClassTests},
		{firstset.IntroduceParameterObjectNamespace, firstset.NewIntroduceParameterObjectTests},
		{firstset.SplitPhaseNamespace, firstset.NewSplitPhaseTests},
	}
}

// Register adds every catalog entry to r.
func Register(r *registry.Registry) error {
	for _, e := range Entries() {
		if err := r.Register(e.Key, e.Factory); err != nil {
			return err
		}
	}
	return nil
}
