package extractfunction

import (
	"io"
	"time"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// NoVariablesOutOfScopeNamespace is the key the example registers under.
const NoVariablesOutOfScopeNamespace = "FirstSetOfRefactorings::ExtractFunction::NoVariablesOutOfScope"

const thirtyDays = 30 * 24 * time.Hour

// now is replaced in tests
var now = time.Now

type order struct {
	Amount int
}

type invoice struct {
	Customer string
	DueDate  time.Time
	Orders   []order
}

func newInvoice() *invoice {
	return &invoice{
		Customer: "Adam",
		Orders:   []order{{Amount: 1}, {Amount: 2}},
	}
}

type noScopeBefore struct {
	refactor.Base
	invoice     *invoice
	outstanding int
}

func (v *noScopeBefore) PrintOwing() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")

	// calculate outstanding
	for _, o := range v.invoice.Orders {
		v.outstanding += o.Amount
	}

	// record due date
	v.invoice.DueDate = now().Add(thirtyDays)

	// print details
	v.Printf("name: %s\n", v.invoice.Customer)
	v.Printf("amount: %d\n", v.outstanding)
	v.Printf("due: %s\n", v.invoice.DueDate.Format(time.DateOnly))
}

// Extract the "Customer Owes" banner
type noScopeRefactor1 struct {
	refactor.Base
	invoice     *invoice
	outstanding int
}

func (v *noScopeRefactor1) PrintOwing() {
	v.printBanner()

	// calculate outstanding
	for _, o := range v.invoice.Orders {
		v.outstanding += o.Amount
	}

	// record due date
	v.invoice.DueDate = now().Add(thirtyDays)

	// print details
	v.Printf("name: %s\n", v.invoice.Customer)
	v.Printf("amount: %d\n", v.outstanding)
	v.Printf("due: %s\n", v.invoice.DueDate.Format(time.DateOnly))
}

func (v *noScopeRefactor1) printBanner() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")
}

// Extract the printing of the details
type noScopeRefactor2 struct {
	refactor.Base
	invoice     *invoice
	outstanding int
}

func (v *noScopeRefactor2) PrintOwing() {
	v.printBanner()

	// calculate outstanding
	for _, o := range v.invoice.Orders {
		v.outstanding += o.Amount
	}

	// record due date
	v.invoice.DueDate = now().Add(thirtyDays)

	v.printDetails()
}

func (v *noScopeRefactor2) printBanner() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")
}

func (v *noScopeRefactor2) printDetails() {
	v.Printf("name: %s\n", v.invoice.Customer)
	v.Printf("amount: %d\n", v.outstanding)
	v.Printf("due: %s\n", v.invoice.DueDate.Format(time.DateOnly))
}

type noScopeTests struct{}

// NewNoVariablesOutOfScopeTests returns the example entry point.
func NewNoVariablesOutOfScopeTests() domain.Suite {
	return noScopeTests{}
}

func (noScopeTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, NoVariablesOutOfScopeNamespace, variant)
	}

	(&noScopeBefore{Base: base(refactor.Before), invoice: newInvoice()}).PrintOwing()
	(&noScopeRefactor1{Base: base(refactor.Step(1)), invoice: newInvoice()}).PrintOwing()
	(&noScopeRefactor2{Base: base(refactor.Step(2)), invoice: newInvoice()}).PrintOwing()
	return nil
}
