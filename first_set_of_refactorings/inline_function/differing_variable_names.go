package inlinefunction

import (
	"io"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// DifferingVariableNamesNamespace is the key the example registers under.
const DifferingVariableNamesNamespace = "FirstSetOfRefactorings::InlineFunction::DifferingVariableNames"

type differingNamesBefore struct {
	refactor.Base
}

func (v differingNamesBefore) Rating(aDriver driver) int {
	if v.moreThanFiveLateDeliveries(aDriver) {
		return 2
	}
	return 1
}

func (v differingNamesBefore) moreThanFiveLateDeliveries(dvr driver) bool {
	return dvr.NumberOfLateDeliveries > 5
}

// Change the parameter name
type differingNamesRefactor1 struct {
	refactor.Base
}

func (v differingNamesRefactor1) Rating(aDriver driver) int {
	if v.moreThanFiveLateDeliveries(aDriver) {
		return 2
	}
	return 1
}

func (v differingNamesRefactor1) moreThanFiveLateDeliveries(aDriver driver) bool {
	return aDriver.NumberOfLateDeliveries > 5
}

// Inline the function
type differingNamesRefactor2 struct {
	refactor.Base
}

func (v differingNamesRefactor2) Rating(aDriver driver) int {
	if aDriver.NumberOfLateDeliveries > 5 {
		return 2
	}
	return 1
}

type differingNamesTests struct{}

// NewDifferingVariableNamesTests returns the example entry point.
func NewDifferingVariableNamesTests() domain.Suite {
	return differingNamesTests{}
}

func (differingNamesTests) Call(w io.Writer) error {
	printRatings(differingNamesBefore{refactor.New(w, DifferingVariableNamesNamespace, refactor.Before)})
	printRatings(differingNamesRefactor1{refactor.New(w, DifferingVariableNamesNamespace, refactor.Step(1))})
	printRatings(differingNamesRefactor2{refactor.New(w, DifferingVariableNamesNamespace, refactor.Step(2))})
	return nil
}
