package firstset

import (
	"fmt"
	"io"
	"math"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Split Phase
//
// Goal: take code that is dealing with two different things and split it
// into separate modules.

// SplitPhaseNamespace is the key the split phase example registers under.
const SplitPhaseNamespace = "FirstSetOfRefactorings::SplitPhase"

type product struct {
	BasePrice         float64
	DiscountThreshold float64
	DiscountRate      float64
}

type shippingMethod struct {
	DiscountThreshold float64
	DiscountedFee     float64
	FeePerCase        float64
}

type orderPricer interface {
	PriceOrder(p product, quantity float64, shipping shippingMethod) float64
}

// There is a sense of two phases going on here. The first lines use the
// product information to calculate the product-oriented price of the order,
// the later code uses shipping information to determine the shipping cost.
// If the pricing and shipping calculations are about to get more involved
// but stay independent, splitting the code into two phases pays off.
type splitPhaseBefore struct {
	refactor.Base
}

func (v splitPhaseBefore) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	shippingPerCase := shipping.FeePerCase
	if basePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := quantity * shippingPerCase
	return basePrice - discount + shippingCost
}

// Apply Extract Function to the shipping calculation
type splitPhaseRefactor1 struct {
	refactor.Base
}

func (v splitPhaseRefactor1) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	return v.applyShipping(basePrice, shipping, quantity, discount)
}

func (v splitPhaseRefactor1) applyShipping(basePrice float64, shipping shippingMethod, quantity, discount float64) float64 {
	shippingPerCase := shipping.FeePerCase
	if basePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := quantity * shippingPerCase
	return basePrice - discount + shippingCost
}

// priceData is the intermediate structure the two phases communicate through
type priceData struct {
	BasePrice float64
	Quantity  float64
	Discount  float64
}

// Introduce the intermediate data structure that will communicate between
// the two phases
type splitPhaseRefactor2 struct {
	refactor.Base
}

func (v splitPhaseRefactor2) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	data := priceData{}
	return v.applyShipping(data, basePrice, shipping, quantity, discount)
}

func (v splitPhaseRefactor2) applyShipping(_ priceData, basePrice float64, shipping shippingMethod, quantity, discount float64) float64 {
	shippingPerCase := shipping.FeePerCase
	if basePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := quantity * shippingPerCase
	return basePrice - discount + shippingCost
}

// The first parameter of applyShipping, basePrice, is created by the
// first-phase code. Move it into the intermediate data structure and drop
// it from the parameter list.
type splitPhaseRefactor3 struct {
	refactor.Base
}

func (v splitPhaseRefactor3) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	data := priceData{BasePrice: basePrice}
	return v.applyShipping(data, shipping, quantity, discount)
}

func (v splitPhaseRefactor3) applyShipping(data priceData, shipping shippingMethod, quantity, discount float64) float64 {
	shippingPerCase := shipping.FeePerCase
	if data.BasePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := quantity * shippingPerCase
	return data.BasePrice - discount + shippingCost
}

// shipping is not used by the first phase so it stays where it is. quantity
// is, so it moves into the intermediate data structure.
type splitPhaseRefactor4 struct {
	refactor.Base
}

func (v splitPhaseRefactor4) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	data := priceData{BasePrice: basePrice, Quantity: quantity}
	return v.applyShipping(data, shipping, discount)
}

func (v splitPhaseRefactor4) applyShipping(data priceData, shipping shippingMethod, discount float64) float64 {
	shippingPerCase := shipping.FeePerCase
	if data.BasePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := data.Quantity * shippingPerCase
	return data.BasePrice - discount + shippingCost
}

// Finally, discount moves into the intermediate data structure
type splitPhaseRefactor5 struct {
	refactor.Base
}

func (v splitPhaseRefactor5) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	data := priceData{BasePrice: basePrice, Quantity: quantity, Discount: discount}
	return v.applyShipping(data, shipping)
}

func (v splitPhaseRefactor5) applyShipping(data priceData, shipping shippingMethod) float64 {
	shippingPerCase := shipping.FeePerCase
	if data.BasePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := data.Quantity * shippingPerCase
	return data.BasePrice - data.Discount + shippingCost
}

// The intermediate data structure is complete, so the first-phase code can
// be extracted into its own function
type splitPhaseRefactor6 struct {
	refactor.Base
}

func (v splitPhaseRefactor6) PriceOrder(p product, quantity float64, shipping shippingMethod) float64 {
	data := v.pricingData(p, quantity)
	return v.applyShipping(data, shipping)
}

func (v splitPhaseRefactor6) pricingData(p product, quantity float64) priceData {
	basePrice := p.BasePrice * quantity
	discount := math.Max(quantity-p.DiscountThreshold, 0) * p.BasePrice * p.DiscountRate
	return priceData{BasePrice: basePrice, Quantity: quantity, Discount: discount}
}

func (v splitPhaseRefactor6) applyShipping(data priceData, shipping shippingMethod) float64 {
	shippingPerCase := shipping.FeePerCase
	if data.BasePrice > shipping.DiscountThreshold {
		shippingPerCase = shipping.DiscountedFee
	}
	shippingCost := data.Quantity * shippingPerCase
	return data.BasePrice - data.Discount + shippingCost
}

var (
	splitPhaseProduct  = product{BasePrice: 10, DiscountThreshold: 5, DiscountRate: 0.9}
	splitPhaseShipping = shippingMethod{DiscountThreshold: 5, DiscountedFee: 1, FeePerCase: 2}
)

const splitPhaseExpected = 75

type splitPhaseTests struct{}

// NewSplitPhaseTests returns the split phase entry point.
func NewSplitPhaseTests() domain.Suite {
	return splitPhaseTests{}
}

func (splitPhaseTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, SplitPhaseNamespace, variant)
	}
	variants := []func() orderPricer{
		func() orderPricer { return splitPhaseBefore{base(refactor.Before)} },
		func() orderPricer { return splitPhaseRefactor1{base(refactor.Step(1))} },
		func() orderPricer { return splitPhaseRefactor2{base(refactor.Step(2))} },
		func() orderPricer { return splitPhaseRefactor3{base(refactor.Step(3))} },
		func() orderPricer { return splitPhaseRefactor4{base(refactor.Step(4))} },
		func() orderPricer { return splitPhaseRefactor5{base(refactor.Step(5))} },
		func() orderPricer { return splitPhaseRefactor6{base(refactor.Step(6))} },
	}

	for _, newVariant := range variants {
		price := newVariant().PriceOrder(splitPhaseProduct, 15, splitPhaseShipping)
		fmt.Fprintln(w, price == splitPhaseExpected)
	}
	return nil
}
