// Package migrations embeds the goose SQL migrations for both supported
// store backends. Each backend has its own dialect directory because the
// binary column types differ (BYTEA vs BLOB).
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var Sqlite embed.FS
