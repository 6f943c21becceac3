package extractfunction

import (
	"io"
	"time"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// UsingLocalVariablesNamespace is the key the example registers under.
const UsingLocalVariablesNamespace = "FirstSetOfRefactorings::ExtractFunction::UsingLocalVariables"

type owingPrinter interface {
	PrintOwing(inv *invoice)
}

type localVariablesBefore struct {
	refactor.Base
}

func (v localVariablesBefore) PrintOwing(inv *invoice) {
	outstanding := 0

	v.printBanner()

	// calculate outstanding
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	// record due date
	inv.DueDate = now().Add(thirtyDays)

	// print details
	v.Printf("name: %s\n", inv.Customer)
	v.Printf("amount: %d\n", outstanding)
	v.Printf("due: %s\n", inv.DueDate.Format(time.DateOnly))
}

func (v localVariablesBefore) printBanner() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")
}

// Extract the printing of the details, passing the locals it reads
type localVariablesRefactor1 struct {
	refactor.Base
}

func (v localVariablesRefactor1) PrintOwing(inv *invoice) {
	outstanding := 0

	v.printBanner()

	// calculate outstanding
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	// record due date
	inv.DueDate = now().Add(thirtyDays)

	v.printDetails(inv, outstanding)
}

func (v localVariablesRefactor1) printBanner() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")
}

func (v localVariablesRefactor1) printDetails(inv *invoice, outstanding int) {
	v.Printf("name: %s\n", inv.Customer)
	v.Printf("amount: %d\n", outstanding)
	v.Printf("due: %s\n", inv.DueDate.Format(time.DateOnly))
}

// Extract setting the due date. A function that modifies a structure it is
// given can be extracted the same way.
type localVariablesRefactor2 struct {
	refactor.Base
}

func (v localVariablesRefactor2) PrintOwing(inv *invoice) {
	outstanding := 0

	v.printBanner()

	// calculate outstanding
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

func (v localVariablesRefactor2) printBanner() {
	v.Println("***********************")
	v.Println("**** Customer Owes ****")
	v.Println("***********************")
}

func (v localVariablesRefactor2) printDetails(inv *invoice, outstanding int) {
	v.Printf("name: %s\n", inv.Customer)
	v.Printf("amount: %d\n", outstanding)
	v.Printf("due: %s\n", inv.DueDate.Format(time.DateOnly))
}

func (v localVariablesRefactor2) recordDueDate(inv *invoice) {
	inv.DueDate = now().Add(thirtyDays)
}

type localVariablesTests struct{}

// NewUsingLocalVariablesTests returns the example entry point.
func NewUsingLocalVariablesTests() domain.Suite {
	return localVariablesTests{}
}

func (localVariablesTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, UsingLocalVariablesNamespace, variant)
	}
	variants := []func() owingPrinter{
		func() owingPrinter { return localVariablesBefore{base(refactor.Before)} },
		func() owingPrinter { return localVariablesRefactor1{base(refactor.Step(1))} },
		func() owingPrinter { return localVariablesRefactor2{base(refactor.Step(2))} },
	}

	for _, newVariant := range variants {
		newVariant().PrintOwing(newInvoice())
	}
	return nil
}
