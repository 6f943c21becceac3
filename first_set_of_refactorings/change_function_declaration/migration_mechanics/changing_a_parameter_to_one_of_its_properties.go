package migrationmechanics

import (
	"io"
	"slices"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Changing a parameter to one of its properties
//
// Goal: take a function that uses one value of an object and change it to
// accept that value on its own.

// ChangingAParameterToOneOfItsPropertiesNamespace is the key the example
// registers under.
const ChangingAParameterToOneOfItsPropertiesNamespace = "FirstSetOfRefactorings::ChangeFunctionDeclaration::MigrationMechanics::ChangingAParameterToOneOfItsProperties"

var newEnglandStates = []string{"MA", "CT", "ME", "VT", "NH", "RI"}

type address struct {
	State string
}

type addressedCustomer struct {
	Address address
}

type newEnglandChecker interface {
	InNewEngland(aCustomer addressedCustomer) bool
	Printf(format string, args ...any)
}

type propertiesBefore struct {
	refactor.Base
}

func (v propertiesBefore) InNewEngland(aCustomer addressedCustomer) bool {
	return slices.Contains(newEnglandStates, aCustomer.Address.State)
}

// Use Extract Function to create the new function
type propertiesRefactor1 struct {
	refactor.Base
}

func (v propertiesRefactor1) InNewEngland(aCustomer addressedCustomer) bool {
	stateCode := aCustomer.Address.State
	return v.xxNewInNewEngland(stateCode)
}

func (v propertiesRefactor1) xxNewInNewEngland(stateCode string) bool {
	return slices.Contains(newEnglandStates, stateCode)
}

// Apply Inline Variable on the input parameter in the original function
type propertiesRefactor2 struct {
	refactor.Base
}

func (v propertiesRefactor2) InNewEngland(aCustomer addressedCustomer) bool {
	return v.xxNewInNewEngland(aCustomer.Address.State)
}

func (v propertiesRefactor2) xxNewInNewEngland(stateCode string) bool {
	return slices.Contains(newEnglandStates, stateCode)
}

type propertiesTests struct{}

// NewChangingAParameterToOneOfItsPropertiesTests returns the example entry
// point.
func NewChangingAParameterToOneOfItsPropertiesTests() domain.Suite {
	return propertiesTests{}
}

func (propertiesTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, ChangingAParameterToOneOfItsPropertiesNamespace, variant)
	}
	variants := []func() newEnglandChecker{
		func() newEnglandChecker { return propertiesBefore{base(refactor.Before)} },
		func() newEnglandChecker { return propertiesRefactor1{base(refactor.Step(1))} },
		func() newEnglandChecker { return propertiesRefactor2{base(refactor.Step(2))} },
	}

	for _, newVariant := range variants {
		v := newVariant()
		for _, state := range []string{"AM", "MA"} {
			if v.InNewEngland(addressedCustomer{Address: address{State: state}}) {
				v.Printf("%s is in New England\n", state)
			} else {
				v.Printf("%s is not in New England\n", state)
			}
		}
	}
	return nil
}
