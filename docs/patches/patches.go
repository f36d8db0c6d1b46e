// Package patches embeds the goose SQL migrations of the news schema.
package patches

import "embed"

//go:embed *.sql
var FS embed.FS
