// Package simplemechanics holds Change Function Declaration examples done
// the simple way, changing the declaration and every caller at once.
package simplemechanics
