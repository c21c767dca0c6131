// Package migrations embeds the SQL migration files for the upload store
package migrations

import "embed"

// FS contains the migration files, applied in lexical order
//
//go:embed *.sql
var FS embed.FS
