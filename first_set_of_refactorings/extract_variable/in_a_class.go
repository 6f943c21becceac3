package extractvariable

import (
	"io"
	"math"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// InAClassNamespace is the key the example registers under.
const InAClassNamespace = "FirstSetOfRefactorings::ExtractVariable::InAClass"

type order struct {
	Quantity  float64
	ItemPrice float64
}

// orders are priced by every variant; the first one gets a quantity
// discount and capped shipping, the second gets neither.
var orders = []order{
	{Quantity: 1000, ItemPrice: 5},
	{Quantity: 100, ItemPrice: 2},
}

type pricedOrder interface {
	Price() float64
	Printf(format string, args ...any)
}

type inAClassBefore struct {
	refactor.Base
	quantity  float64
	itemPrice float64
}

func (v inAClassBefore) Price() float64 {
	return v.quantity*v.itemPrice -
		math.Max(0, v.quantity-500)*v.itemPrice*0.05 +
		math.Min(v.quantity*v.itemPrice*0.1, 100.0)
}

// Inside a type the extracted names become methods, visible to the rest of
// the type, rather than local variables
type inAClassRefactor1 struct {
	refactor.Base
	quantity  float64
	itemPrice float64
}

func (v inAClassRefactor1) Price() float64 {
	return v.basePrice() - v.quantityDiscount() + v.shipping()
}

func (v inAClassRefactor1) basePrice() float64 {
	return v.quantity * v.itemPrice
}

func (v inAClassRefactor1) quantityDiscount() float64 {
	return math.Max(0, v.quantity-500) * v.itemPrice * 0.05
}

func (v inAClassRefactor1) shipping() float64 {
	return math.Min(v.basePrice()*0.1, 100.0)
}

type inAClassTests struct{}

// NewInAClassTests returns the example entry point.
func NewInAClassTests() domain.Suite {
	return inAClassTests{}
}

func (inAClassTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, InAClassNamespace, variant)
	}
	variants := []func(o order) pricedOrder{
		func(o order) pricedOrder { return inAClassBefore{base(refactor.Before), o.Quantity, o.ItemPrice} },
		func(o order) pricedOrder { return inAClassRefactor1{base(refactor.Step(1)), o.Quantity, o.ItemPrice} },
	}

	for _, newVariant := range variants {
		for _, o := range orders {
			v := newVariant(o)
			v.Printf("Price: %.2f\n", v.Price())
		}
	}
	return nil
}
