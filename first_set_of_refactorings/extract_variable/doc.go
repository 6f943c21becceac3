// Package extractvariable holds the Extract Variable examples (formerly
// Introduce Explaining Variable): adding a name to an expression, the
// inverse of Inline Variable.
package extractvariable
