package inlinefunction

import (
	"io"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// SimpleCaseNamespace is the key the example registers under.
const SimpleCaseNamespace = "FirstSetOfRefactorings::InlineFunction::SimpleCase"

type driver struct {
	NumberOfLateDeliveries int
}

type rater interface {
	Rating(aDriver driver) int
}

type simpleCaseBefore struct {
	refactor.Base
}

func (v simpleCaseBefore) Rating(aDriver driver) int {
	if v.moreThanFiveLateDeliveries(aDriver) {
		return 2
	}
	return 1
}

func (v simpleCaseBefore) moreThanFiveLateDeliveries(aDriver driver) bool {
	return aDriver.NumberOfLateDeliveries > 5
}

// The parameter names match, so moreThanFiveLateDeliveries can be inlined
// without modification
type simpleCaseRefactor1 struct {
	refactor.Base
}

func (v simpleCaseRefactor1) Rating(aDriver driver) int {
	if aDriver.NumberOfLateDeliveries > 5 {
		return 2
	}
	return 1
}

type simpleCaseTests struct{}

// NewSimpleCaseTests returns the example entry point.
func NewSimpleCaseTests() domain.Suite {
	return simpleCaseTests{}
}

func (simpleCaseTests) Call(w io.Writer) error {
	printRatings(simpleCaseBefore{refactor.New(w, SimpleCaseNamespace, refactor.Before)})
	printRatings(simpleCaseRefactor1{refactor.New(w, SimpleCaseNamespace, refactor.Step(1))})
	return nil
}

// ratedVariant is a rater that can print through its Base
type ratedVariant interface {
	rater
	Printf(format string, args ...any)
}

// printRatings prints the rating for a driver on either side of the
// late delivery limit.
func printRatings(v ratedVariant) {
	for _, late := range []int{5, 6} {
		v.Printf("Rating: %d\n", v.Rating(driver{NumberOfLateDeliveries: late}))
	}
}
