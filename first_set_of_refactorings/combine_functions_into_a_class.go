package firstset

import (
	"fmt"
	"io"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Combine Functions into Class
//
// Goal: take a group of functions that work on a common body of data and
// extract them into their own type.

// CombineFunctionsIntoAClassNamespace is the key the example registers under.
const CombineFunctionsIntoAClassNamespace = "FirstSetOfRefactorings::CombineFunctionsIntoAClass"

// rawReading is the record every client starts from
type rawReading struct {
	Customer string
	Quantity int
	Month    int
	Year     int
}

var teaReading = rawReading{Customer: "ivan", Quantity: 10, Month: 5, Year: 2017}

type readingClients interface {
	Client1() int
	Client2() int
	Client3() int
}

type combineClassBefore struct {
	refactor.Base
}

func (v combineClassBefore) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineClassBefore) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

// This client uses the helpful baseCharge function to do what the earlier
// clients calculate by hand. Package-level helpers are easy to miss, so it
// is better to give the function a closer connection to the data it
// processes.
func (v combineClassBefore) Client3() int {
	r := teaReading
	return v.baseCharge(r)
}

func (v combineClassBefore) baseRate(month, year int) int {
	return month * year
}

func (v combineClassBefore) taxThreshold(year int) int {
	return year
}

func (v combineClassBefore) baseCharge(r rawReading) int {
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

// Reading is the record turned into a type using Encapsulate Record. The
// later steps move the calculations onto it.
type Reading struct {
	customer string
	quantity int
	month    int
	year     int
}

func newReading(data rawReading) *Reading {
	return &Reading{
		customer: data.Customer,
		quantity: data.Quantity,
		month:    data.Month,
		year:     data.Year,
	}
}

func (r *Reading) Customer() string { return r.customer }
func (r *Reading) Quantity() int    { return r.quantity }
func (r *Reading) Month() int       { return r.month }
func (r *Reading) Year() int        { return r.year }

// BaseCharge is moved onto Reading with Move Function.
func (r *Reading) BaseCharge() int {
	return r.baseRate() * r.quantity
}

// TaxableCharge is extracted from the second client and then moved.
func (r *Reading) TaxableCharge() int {
	return max(0, r.BaseCharge()-r.taxThreshold())
}

func (r *Reading) baseRate() int {
	return r.month * r.year
}

func (r *Reading) taxThreshold() int {
	return r.year
}

// Start the migration with the function we already have (baseCharge)
type combineClassRefactor1 struct {
	refactor.Base
}

func (v combineClassRefactor1) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineClassRefactor1) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineClassRefactor1) Client3() int {
	reading := newReading(teaReading)
	return v.baseCharge(reading)
}

func (v combineClassRefactor1) baseRate(month, year int) int {
	return month * year
}

func (v combineClassRefactor1) taxThreshold(year int) int {
	return year
}

func (v combineClassRefactor1) baseCharge(reading *Reading) int {
	return v.baseRate(reading.Month(), reading.Year()) * reading.Quantity()
}

// Use Move Function to move baseCharge into the new type
type combineClassRefactor2 struct {
	refactor.Base
}

func (v combineClassRefactor2) Client1() int {
	r := teaReading
	return v.baseRate(r.Month, r.Year) * r.Quantity
}

func (v combineClassRefactor2) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineClassRefactor2) Client3() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor2) baseRate(month, year int) int {
	return month * year
}

func (v combineClassRefactor2) taxThreshold(year int) int {
	return year
}

// Alter the first client to call the method rather than repeat the
// calculation
type combineClassRefactor3 struct {
	refactor.Base
}

func (v combineClassRefactor3) Client1() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor3) Client2() int {
	r := teaReading
	base := v.baseRate(r.Month, r.Year) * r.Quantity
	return max(0, base-v.taxThreshold(r.Year))
}

func (v combineClassRefactor3) Client3() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor3) baseRate(month, year int) int {
	return month * year
}

func (v combineClassRefactor3) taxThreshold(year int) int {
	return year
}

// Alter the second client to call the method rather than repeat the
// calculation
type combineClassRefactor4 struct {
	refactor.Base
}

func (v combineClassRefactor4) Client1() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor4) Client2() int {
	reading := newReading(teaReading)
	return max(0, reading.BaseCharge()-v.taxThreshold(reading.Year()))
}

func (v combineClassRefactor4) Client3() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor4) taxThreshold(year int) int {
	return year
}

// Use Extract Function on the calculation for the taxable charge
type combineClassRefactor5 struct {
	refactor.Base
}

func (v combineClassRefactor5) Client1() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor5) Client2() int {
	return v.taxableCharge(newReading(teaReading))
}

func (v combineClassRefactor5) Client3() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor5) taxableCharge(reading *Reading) int {
	return max(0, reading.BaseCharge()-v.taxThreshold(reading.Year()))
}

func (v combineClassRefactor5) taxThreshold(year int) int {
	return year
}

// Then apply Move Function
type combineClassRefactor6 struct {
	refactor.Base
}

func (v combineClassRefactor6) Client1() int {
	return newReading(teaReading).BaseCharge()
}

func (v combineClassRefactor6) Client2() int {
	return newReading(teaReading).TaxableCharge()
}

func (v combineClassRefactor6) Client3() int {
	return newReading(teaReading).BaseCharge()
}

const (
	expectedBaseCharge    = 100_850
	expectedTaxableCharge = 98_833
)

type combineClassTests struct{}

// NewCombineFunctionsIntoAClassTests returns the example entry point.
func NewCombineFunctionsIntoAClassTests() domain.Suite {
	return combineClassTests{}
}

func (combineClassTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, CombineFunctionsIntoAClassNamespace, variant)
	}
	variants := []func() readingClients{
		func() readingClients { return combineClassBefore{base(refactor.Before)} },
		func() readingClients { return combineClassRefactor1{base(refactor.Step(1))} },
		func() readingClients { return combineClassRefactor2{base(refactor.Step(2))} },
		func() readingClients { return combineClassRefactor3{base(refactor.Step(3))} },
		func() readingClients { return combineClassRefactor4{base(refactor.Step(4))} },
		func() readingClients { return combineClassRefactor5{base(refactor.Step(5))} },
		func() readingClients { return combineClassRefactor6{base(refactor.Step(6))} },
	}

	for _, newVariant := range variants {
		printClients(w, newVariant())
	}
	return nil
}

func printClients(w io.Writer, clients readingClients) {
	fmt.Fprintf(w, "Client 1: %t\n", clients.Client1() == expectedBaseCharge)
	fmt.Fprintf(w, "Client 2: %t\n", clients.Client2() == expectedTaxableCharge)
	fmt.Fprintf(w, "Client 3: %t\n", clients.Client3() == expectedBaseCharge)
}
