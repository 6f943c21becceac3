// Package extractfunction holds the Extract Function examples: pulling
// single responsibilities out of a long function, with and without local
// variables crossing the boundary.
package extractfunction
