// Package inlinevariable holds the Inline Variable examples (formerly Inline
// Temp): removing a name from an expression, the inverse of Extract
// Variable.
package inlinevariable
