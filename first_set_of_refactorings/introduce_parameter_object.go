package firstset

import (
	"fmt"
	"io"
	"slices"

	"refactorings/internal/domain"
	"refactorings/internal/refactor"
)

// Introduce Parameter Object
//
// Goal: combine data items that travel together into a single value object.

// IntroduceParameterObjectNamespace is the key the example registers under.
const IntroduceParameterObjectNamespace = "FirstSetOfRefactorings::IntroduceParameterObject"

type temperatureReading struct {
	Temp int
	Time string
}

type station struct {
	Name     string
	Readings []temperatureReading
}

type operatingPlan struct {
	TemperatureFloor   int
	TemperatureCeiling int
}

var (
	zb1Station = station{
		Name: "ZB1",
		Readings: []temperatureReading{
			{Temp: 47, Time: "2016-11-10 09:10"},
			{Temp: 53, Time: "2016-11-10 09:20"},
			{Temp: 58, Time: "2016-11-10 09:30"},
			{Temp: 53, Time: "2016-11-10 09:40"},
			{Temp: 51, Time: "2016-11-10 09:50"},
		},
	}

	plan = operatingPlan{TemperatureFloor: 48, TemperatureCeiling: 57}
)

type alerter interface {
	Alerts() []temperatureReading
}

// Two values from the operating plan are passed under labels that differ
// from the ones readingsOutsideRange uses
type parameterObjectBefore struct {
	refactor.Base
}

func (v parameterObjectBefore) Alerts() []temperatureReading {
	return v.readingsOutsideRange(zb1Station, plan.TemperatureFloor, plan.TemperatureCeiling)
}

func (v parameterObjectBefore) readingsOutsideRange(s station, min, max int) []temperatureReading {
	var out []temperatureReading
	for _, r := range s.Readings {
		if r.Temp < min || r.Temp > max {
			out = append(out, r)
		}
	}
	return out
}

// NumberRange is the value object that represents the values travelling
// together.
type NumberRange struct {
	min int
	max int
}

func NewNumberRange(min, max int) *NumberRange {
	return &NumberRange{min: min, max: max}
}

func (r *NumberRange) Min() int { return r.min }
func (r *NumberRange) Max() int { return r.max }

// Includes reports whether value lies within the range, inclusive. It is the
// behavior moved into the value object by the last step.
func (r *NumberRange) Includes(value int) bool {
	return value >= r.min && value <= r.max
}

// Use Change Function Declaration to add the new object as a parameter
type parameterObjectRefactor1 struct {
	refactor.Base
}

func (v parameterObjectRefactor1) Alerts() []temperatureReading {
	return v.readingsOutsideRange(zb1Station, plan.TemperatureFloor, plan.TemperatureCeiling, nil)
}

// Behavior has not changed yet, the tests still pass
func (v parameterObjectRefactor1) readingsOutsideRange(s station, min, max int, _ *NumberRange) []temperatureReading {
	var out []temperatureReading
	for _, r := range s.Readings {
		if r.Temp < min || r.Temp > max {
			out = append(out, r)
		}
	}
	return out
}

// Go to each caller and pass in the correct range
type parameterObjectRefactor2 struct {
	refactor.Base
}

func (v parameterObjectRefactor2) Alerts() []temperatureReading {
	rng := NewNumberRange(plan.TemperatureFloor, plan.TemperatureCeiling)
	return v.readingsOutsideRange(zb1Station, plan.TemperatureFloor, plan.TemperatureCeiling, rng)
}

func (v parameterObjectRefactor2) readingsOutsideRange(s station, min, max int, _ *NumberRange) []temperatureReading {
	var out []temperatureReading
	for _, r := range s.Readings {
		if r.Temp < min || r.Temp > max {
			out = append(out, r)
		}
	}
	return out
}

// Start replacing the parameters, beginning with max
type parameterObjectRefactor3 struct {
	refactor.Base
}

func (v parameterObjectRefactor3) Alerts() []temperatureReading {
	rng := NewNumberRange(plan.TemperatureFloor, plan.TemperatureCeiling)
	return v.readingsOutsideRange(zb1Station, plan.TemperatureFloor, rng)
}

func (v parameterObjectRefactor3) readingsOutsideRange(s station, min int, rng *NumberRange) []temperatureReading {
	var out []temperatureReading
	for _, r := range s.Readings {
		if r.Temp < min || r.Temp > rng.Max() {
			out = append(out, r)
		}
	}
	return out
}

// Remove the remaining parameter (min)
type parameterObjectRefactor4 struct {
	refactor.Base
}

func (v parameterObjectRefactor4) Alerts() []temperatureReading {
	rng := NewNumberRange(plan.TemperatureFloor, plan.TemperatureCeiling)
	return v.readingsOutsideRange(zb1Station, rng)
}

func (v parameterObjectRefactor4) readingsOutsideRange(s station, rng *NumberRange) []temperatureReading {
	var out []temperatureReading
	for _, r := range s.Readings {
		if r.Temp < rng.Min() || r.Temp > rng.Max() {
			out = append(out, r)
		}
	}
	return out
}

// Behavior can now move into the value object, so the range decides whether
// a value is inside it
type parameterObjectRefactor5 struct {
	refactor.Base
}

func (v parameterObjectRefactor5) Alerts() []temperatureReading {
	rng := NewNumberRange(plan.TemperatureFloor, plan.TemperatureCeiling)
	return v.readingsOutsideRange(zb1Station, rng)
}

func (v parameterObjectRefactor5) readingsOutsideRange(s station, rng *NumberRange) []temperatureReading {
	return slices.DeleteFunc(slices.Clone(s.Readings), func(r temperatureReading) bool {
		return rng.Includes(r.Temp)
	})
}

var expectedAlerts = []temperatureReading{
	{Temp: 47, Time: "2016-11-10 09:10"},
	{Temp: 58, Time: "2016-11-10 09:30"},
}

type parameterObjectTests struct{}

// NewIntroduceParameterObjectTests returns the example entry point.
func NewIntroduceParameterObjectTests() domain.Suite {
	return parameterObjectTests{}
}

func (parameterObjectTests) Call(w io.Writer) error {
	base := func(variant string) refactor.Base {
		return refactor.New(w, IntroduceParameterObjectNamespace, variant)
	}
	variants := []func() alerter{
		func() alerter { return parameterObjectBefore{base(refactor.Before)} },
		func() alerter { return parameterObjectRefactor1{base(refactor.Step(1))} },
		func() alerter { return parameterObjectRefactor2{base(refactor.Step(2))} },
		func() alerter { return parameterObjectRefactor3{base(refactor.Step(3))} },
		func() alerter { return parameterObjectRefactor4{base(refactor.Step(4))} },
		func() alerter { return parameterObjectRefactor5{base(refactor.Step(5))} },
	}

	for _, newVariant := range variants {
		fmt.Fprintln(w, slices.Equal(newVariant().Alerts(), expectedAlerts))
	}
	return nil
}
