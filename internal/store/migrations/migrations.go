// Package migrations embeds the SQL schema migrations for the local
// account database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
