// Package migrations embeds the goose SQL migrations so the migrate command
// and the test helper apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
