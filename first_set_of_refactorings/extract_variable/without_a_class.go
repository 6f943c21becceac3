package extractvariable

import (
	"io"
	"math"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// WithoutAClassNamespace is the key the example registers under.
const WithoutAClassNamespace = "FirstSetOfRefactorings::ExtractVariable::WithoutAClass"

type orderPricer interface {
	Price(o order) float64
	Printf(format string, args ...any)
}

type withoutAClassBefore struct {
	refactor.Base
}

func (v withoutAClassBefore) Price(o order) float64 {
	// price is base price - quantity discount + shipping
	return o.Quantity*o.ItemPrice -
		math.Max(0, o.Quantity-500)*o.ItemPrice*0.05 +
		math.Min(o.Quantity*o.ItemPrice*0.1, 100.0)
}

// Name the base price
type withoutAClassRefactor1 struct {
	refactor.Base
}

func (v withoutAClassRefactor1) Price(o order) float64 {
	// price is base price - quantity discount + shipping
	basePrice := o.Quantity * o.ItemPrice
	return basePrice - math.Max(0, o.Quantity-500)*o.ItemPrice*0.05 +
		math.Min(basePrice*0.1, 100.0)
}

// Name the quantity discount
type withoutAClassRefactor2 struct {
	refactor.Base
}

func (v withoutAClassRefactor2) Price(o order) float64 {
	// price is base price - quantity discount + shipping
	basePrice := o.Quantity * o.ItemPrice
	quantityDiscount := math.Max(0, o.Quantity-500) * o.ItemPrice * 0.05

	return basePrice - quantityDiscount + math.Min(basePrice*0.1, 100.0)
}

// Name the shipping; the comment now says nothing the code does not
type withoutAClassRefactor3 struct {
	refactor.Base
}

func (v withoutAClassRefactor3) Price(o order) float64 {
	basePrice := o.Quantity * o.ItemPrice
	quantityDiscount := math.Max(0, o.Quantity-500) * o.ItemPrice * 0.05
	shipping := math.Min(basePrice*0.1, 100.0)

	return basePrice - quantityDiscount + shipping
}

type withoutAClassTests struct{}

// NewWithoutAClassTests returns the example entry point.
func NewWithoutAClassTests() domain.Suite {
	return withoutAClassTests{}
}

func (withoutAClassTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, WithoutAClassNamespace, variant)
	}
	variants := []orderPricer{
		withoutAClassBefore{base(refactor.Before)},
		withoutAClassRefactor1{base(refactor.Step(1))},
		withoutAClassRefactor2{base(refactor.Step(2))},
		withoutAClassRefactor3{base(refactor.Step(3))},
	}

	for _, v := range variants {
		for _, o := range orders {
			v.Printf("Price: %.2f\n", v.Price(o))
		}
	}
	return nil
}
