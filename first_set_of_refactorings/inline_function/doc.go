// Package inlinefunction holds the Inline Function examples: merging a
// function whose body is as clear as its name back into its callers.
package inlinefunction
