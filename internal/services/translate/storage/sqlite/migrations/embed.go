package migrations

import "embed"

// FS contains embedded SQLite migrations for translation catalog storage.
//
//go:embed *.sql
var FS embed.FS
