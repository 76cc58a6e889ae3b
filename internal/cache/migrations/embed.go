// Package migrations embeds the goose SQL migrations that shape the local
// cache database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
