// Package db embeds the SQL migrations so the binary can apply them without the source tree.
package db

import "embed"

// Migrations holds every goose migration under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
