package domain

import "io"

// Suite is the entry point of an example module. Call runs every variant of
// the example and writes what they produce to w.
type Suite interface {
	Call(w io.Writer) error
}

// Factory constructs a fresh Suite. Factories take no arguments.
type Factory func() Suite

// SuiteFunc adapts a plain function to the Suite interface.
type SuiteFunc func(w io.Writer) error

// Call implements Suite.
func (f SuiteFunc) Call(w io.Writer) error {
	return f(w)
}
