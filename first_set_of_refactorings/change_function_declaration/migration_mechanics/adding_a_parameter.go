package migrationmechanics

import (
	"io"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Adding a parameter
//
// Goal: add a new, required parameter to a function.

// AddingAParameterNamespace is the key the example registers under.
const AddingAParameterNamespace = "FirstSetOfRefactorings::ChangeFunctionDeclaration::MigrationMechanics::AddingAParameter"

type customer struct {
	Name string
}

type booking struct {
	reservations []customer
}

func (b *booking) Reservations() []customer {
	return b.reservations
}

type addingBefore struct {
	refactor.Base
	*booking
}

func (v addingBefore) AddReservation(c customer) {
	v.reservations = append(v.reservations, c)
}

// Use Extract Function to create a new function with a temporary name
type addingRefactor1 struct {
	refactor.Base
	*booking
}

func (v addingRefactor1) AddReservation(c customer) {
	v.zzAddReservation(c)
}

func (v addingRefactor1) zzAddReservation(c customer) {
	v.reservations = append(v.reservations, c)
}

// Add the parameter to the new declaration and its call
type addingRefactor2 struct {
	refactor.Base
	*booking
}

func (v addingRefactor2) AddReservation(c customer) {
	v.zzAddReservation(c, false)
}

func (v addingRefactor2) zzAddReservation(c customer, _ bool) {
	v.reservations = append(v.reservations, c)
}

// Check that callers are passing the new parameter
type addingRefactor3 struct {
	refactor.Base
	*booking
}

func (v addingRefactor3) AddReservation(c customer, isPriority ...bool) {
	v.Assert(len(isPriority) > 0, "AddReservation")

	priority := len(isPriority) > 0 && isPriority[0]
	v.zzAddReservation(c, priority)
}

func (v addingRefactor3) zzAddReservation(c customer, _ bool) {
	v.reservations = append(v.reservations, c)
}

// Once every caller passes the parameter, use Inline Function
type addingRefactor4 struct {
	refactor.Base
	*booking
}

func (v addingRefactor4) AddReservation(c customer, _ bool) {
	v.reservations = append(v.reservations, c)
}

var adam = customer{Name: "Adam"}

type addingTests struct{}

// NewAddingAParameterTests returns the example entry point.
func NewAddingAParameterTests() domain.Suite {
	return addingTests{}
}

func (addingTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, AddingAParameterNamespace, variant)
	}

	before := addingBefore{base(refactor.Before), &booking{}}
	before.AddReservation(adam)
	printReservations(before.Base, before.booking)

	refactor1 := addingRefactor1{base(refactor.Step(1)), &booking{}}
	refactor1.AddReservation(adam)
	printReservations(refactor1.Base, refactor1.booking)

	refactor2 := addingRefactor2{base(refactor.Step(2)), &booking{}}
	refactor2.AddReservation(adam)
	printReservations(refactor2.Base, refactor2.booking)

	refactor3 := addingRefactor3{base(refactor.Step(3)), &booking{}}
	refactor3.AddReservation(adam)
	printReservations(refactor3.Base, refactor3.booking)

	refactor4 := addingRefactor4{base(refactor.Step(4)), &booking{}}
	refactor4.AddReservation(adam, false)
	printReservations(refactor4.Base, refactor4.booking)
	return nil
}

func printReservations(b refactor.Base, bk *booking) {
	names := make([]string, 0, len(bk.Reservations()))
	for _, c := range bk.Reservations() {
		names = append(names, c.Name)
	}
	b.Printf("Reservations: %v\n", names)
}
