// Package library embeds the SQL migrations applied by the migrate command.
package library

import "embed"

// Migrations holds the goose migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
