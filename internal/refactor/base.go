// Package refactor holds what every variant of a refactoring example shares:
// announcing itself when constructed and flagging calls that skip a newly
// introduced parameter.
package refactor

import (
	"fmt"
	"io"

	"refactorings/internal/naming"
)

// Variant names used across the catalog
const (
	Before = "BeforeRefactor"
	After  = "AfterRefactor"
)

// Step returns the name of the n-th refactoring step ("Refactor3").
func Step(n int) string {
	return fmt.Sprintf("Refactor%d", n)
}

// Base is embedded by every variant.
type Base struct {
	name string
	out  io.Writer
}

// New announces the variant namespace::variant on out and returns its Base.
func New(out io.Writer, namespace, variant string) Base {
	b := Base{name: namespace + naming.Separator + variant, out: out}
	fmt.Fprintf(out, "\n##\n# %s\n##\n\n", b.name)
	return b
}

// Name is the fully qualified variant name.
func (b Base) Name() string {
	return b.name
}

// Out is where the variant prints.
func (b Base) Out() io.Writer {
	return b.out
}

// Println prints a line on the variant's output.
func (b Base) Println(args ...any) {
	fmt.Fprintln(b.out, args...)
}

// Printf prints on the variant's output.
func (b Base) Printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

// Assert prints a notice when ok is false, naming the method that was called
// without the parameters it now expects.
func (b Base) Assert(ok bool, method string) {
	if ok {
		return
	}
	fmt.Fprintf(b.out, "##\n# NOTICE: call to `%s` without appropriate parameters\n##\n", method)
}
