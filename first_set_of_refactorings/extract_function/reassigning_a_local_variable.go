package extractfunction

import (
	"io"
	"time"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// ReassigningALocalVariableNamespace is the key the example registers under.
const ReassigningALocalVariableNamespace = "FirstSetOfRefactorings::ExtractFunction::ReassigningALocalVariable"

// owingHelpers are the functions already extracted before this example
// starts
type owingHelpers struct {
	refactor.Base
}

func (h owingHelpers) printBanner() {
	h.Println("***********************")
	h.Println("**** Customer Owes ****")
	h.Println("***********************")
}

func (h owingHelpers) printDetails(inv *invoice, outstanding int) {
	h.Printf("name: %s\n", inv.Customer)
	h.Printf("amount: %d\n", outstanding)
	h.Printf("due: %s\n", inv.DueDate.Format(time.DateOnly))
}

func (h owingHelpers) recordDueDate(inv *invoice) {
	inv.DueDate = now().Add(thirtyDays)
}

type reassigningBefore struct {
	owingHelpers
}

func (v reassigningBefore) PrintOwing(inv *invoice) {
	outstanding := 0

	v.printBanner()

	// calculate outstanding
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

// Slide the declaration of outstanding next to its use
type reassigningRefactor1 struct {
	owingHelpers
}

func (v reassigningRefactor1) PrintOwing(inv *invoice) {
	v.printBanner()

	// calculate outstanding
	outstanding := 0
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

// Copy the code into calculateOutstanding. The original code stays for now.
type reassigningRefactor2 struct {
	owingHelpers
}

func (v reassigningRefactor2) PrintOwing(inv *invoice) {
	v.printBanner()

	// calculate outstanding
	outstanding := 0
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

func (v reassigningRefactor2) calculateOutstanding(inv *invoice) int {
	outstanding := 0
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}
	return outstanding
}

// Replace the original code with a call to the new function
type reassigningRefactor3 struct {
	owingHelpers
}

func (v reassigningRefactor3) PrintOwing(inv *invoice) {
	v.printBanner()

	outstanding := v.calculateOutstanding(inv)

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

func (v reassigningRefactor3) calculateOutstanding(inv *invoice) int {
	outstanding := 0
	for _, o := range inv.Orders {
		outstanding += o.Amount
	}
	return outstanding
}

// Rename the return value (optional)
type reassigningRefactor4 struct {
	owingHelpers
}

func (v reassigningRefactor4) PrintOwing(inv *invoice) {
	v.printBanner()

	outstanding := v.calculateOutstanding(inv)

	v.recordDueDate(inv)

	v.printDetails(inv, outstanding)
}

func (v reassigningRefactor4) calculateOutstanding(inv *invoice) int {
	result := 0
	for _, o := range inv.Orders {
		result += o.Amount
	}
	return result
}

// Return the sum directly from a named result
type reassigningRefactor5 struct {
	owingHelpers
}

func (v reassigningRefactor5) PrintOwing(inv *invoice) {
	v.printBanner()
	v.recordDueDate(inv)
	v.printDetails(inv, v.calculateOutstanding(inv))
}

func (v reassigningRefactor5) calculateOutstanding(inv *invoice) (result int) {
	for _, o := range inv.Orders {
		result += o.Amount
	}
	return result
}

type reassigningTests struct{}

// NewReassigningALocalVariableTests returns the example entry point.
func NewReassigningALocalVariableTests() domain.Suite {
	return reassigningTests{}
}

func (reassigningTests) Call(w io.Writer) error {
	helpers := func(variant string) owingHelpers {
		return owingHelpers{refactor.New(w, ReassigningALocalVariableNamespace, variant)}
	}
	variants := []func() owingPrinter{
		func() owingPrinter { return reassigningBefore{helpers(refactor.Before)} },
		func() owingPrinter { return reassigningRefactor1{helpers(refactor.Step(1))} },
		func() owingPrinter { return reassigningRefactor2{helpers(refactor.Step(2))} },
		func() owingPrinter { return reassigningRefactor3{helpers(refactor.Step(3))} },
		func() owingPrinter { return reassigningRefactor4{helpers(refactor.Step(4))} },
		func() owingPrinter { return reassigningRefactor5{helpers(refactor.Step(5))} },
	}

	for _, newVariant := range variants {
		newVariant().PrintOwing(newInvoice())
	}
	return nil
}
