// Package migrationmechanics holds Change Function Declaration examples done
// through a migration: introduce the new declaration next to the old one,
// move callers over one at a time, and only then remove the old one.
package migrationmechanics
