package firstset

import (
	"io"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Combine Functions into Transform
//
// Goal: like Combine Functions into Class, take a group of functions that
// work on a common body of data and combine them into a single action.
// Transforms can be problematic when the source data changes after it has
// been enriched.

// CombineFunctionsIntoATransformNamespace is the key the example registers
// under.
const CombineFunctionsIntoATransformNamespace = "FirstSetOfRefactorings::CombineFunctionsIntoATransform"

// enrichedReading is the raw reading plus the derived values the transform
// adds to it
type enrichedReading struct {
	rawReading
	BaseCharge    int
	TaxableCharge int
}

// readingCalculations are the helpers every variant starts with
type readingCalculations struct{}

func (readingCalculations) baseRate(month, year int) int {
	return month * year
}

func (readingCalculations) taxThreshold(year int) int {
	return year
}

func (c readingCalculations) baseCharge(r rawReading) int {
	return c.baseRate(r.Month, r.Year) * r.Quantity
}

type combineTransformBefore struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformBefore) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineTransformBefore) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineTransformBefore) Client3() int {
	return v.baseCharge(teaReading)
}

// Move all of the derivations into a transformation step that takes the raw
// reading and emits a reading enriched with all the common derived results
type combineTransformRefactor1 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor1) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineTransformRefactor1) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineTransformRefactor1) Client3() int {
	reading := v.enrichReading(teaReading)
	return v.baseCharge(reading.rawReading)
}

func (v combineTransformRefactor1) enrichReading(r rawReading) enrichedReading {
	return enrichedReading{rawReading: r}
}

// Use Move Function on baseCharge to move it to the enrichment calculation
type combineTransformRefactor2 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor2) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineTransformRefactor2) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineTransformRefactor2) Client3() int {
	reading := v.enrichReading(teaReading)
	return v.baseCharge(reading.rawReading)
}

func (v combineTransformRefactor2) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	return result
}

// Change the client that uses that function to use the enriched field
// instead
type combineTransformRefactor3 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor3) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineTransformRefactor3) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineTransformRefactor3) Client3() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor3) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	return result
}

// Update client 1 to use the enriched reading
type combineTransformRefactor4 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor4) Client1() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor4) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineTransformRefactor4) Client3() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor4) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	return result
}

// Update client 2 to use the enriched reading
type combineTransformRefactor5 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor5) Client1() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor5) Client2() int {
	reading := v.enrichReading(teaReading)
	return max(0, reading.BaseCharge-v.taxThreshold(reading.Year))
}

func (v combineTransformRefactor5) Client3() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor5) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	return result
}

// Move the tax computation into the enriched reading
type combineTransformRefactor6 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor6) Client1() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor6) Client2() int {
	reading := v.enrichReading(teaReading)
	return max(0, reading.BaseCharge-v.taxThreshold(reading.Year))
}

func (v combineTransformRefactor6) Client3() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor6) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	result.TaxableCharge = max(0, result.BaseCharge-v.taxThreshold(r.Year))
	return result
}

// Update client 2 to use the taxable charge from the enriched reading
type combineTransformRefactor7 struct {
	refactor.Base
	readingCalculations
}

func (v combineTransformRefactor7) Client1() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor7) Client2() int {
	return v.enrichReading(teaReading).TaxableCharge
}

func (v combineTransformRefactor7) Client3() int {
	return v.enrichReading(teaReading).BaseCharge
}

func (v combineTransformRefactor7) enrichReading(r rawReading) enrichedReading {
	result := enrichedReading{rawReading: r}
	result.BaseCharge = v.baseCharge(r)
	result.TaxableCharge = max(0, result.BaseCharge-v.taxThreshold(r.Year))
	return result
}

type combineTransformTests struct{}

// NewCombineFunctionsIntoATransformTests returns the example entry point.
func NewCombineFunctionsIntoATransformTests() domain.Suite {
	return combineTransformTests{}
}

func (combineTransformTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, CombineFunctionsIntoATransformNamespace, variant)
	}
	variants := []func() readingClients{
		func() readingClients { return combineTransformBefore{Base: base(refactor.Before)} },
		func() readingClients { return combineTransformRefactor1{Base: base(refactor.Step(1))} },
		func() readingClients { return combineTransformRefactor2{Base: base(refactor.Step(2))} },
		func() readingClients { return combineTransformRefactor3{Base: base(refactor.Step(3))} },
		func() readingClients { return combineTransformRefactor4{Base: base(refactor.Step(4))} },
		func() readingClients { return combineTransformRefactor5{Base: base(refactor.Step(5))} },
		func() readingClients { return combineTransformRefactor6{Base: base(refactor.Step(6))} },
		func() readingClients { return combineTransformRefactor7{Base: base(refactor.Step(7))} },
	}

	for _, newVariant := range variants {
		printClients(w, newVariant())
	}
	return nil
}
