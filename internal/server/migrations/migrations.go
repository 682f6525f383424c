// Package migrations embeds the SQL schema of the stub API server.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
