// Package sqlite provides the translation catalog persistence adapter backed
// by SQLite.
package sqlite
