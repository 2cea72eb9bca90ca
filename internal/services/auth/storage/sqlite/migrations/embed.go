// Package migrations embeds the auth schema applied by sqlitemigrate on
// store open. Files run in lexical order.
package migrations

import "embed"

// FS holds the numbered auth schema files.
//
//go:embed *.sql
var FS embed.FS
