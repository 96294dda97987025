// Package storage declares persistence contracts for the translation catalog.
//
// The catalog models projects, their components, per-language translations and
// the units inside them, plus the source-string metadata reviewers edit.
package storage
