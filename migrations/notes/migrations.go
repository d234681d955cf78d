// Package notes embeds the SQL migrations of the local notes store.
package notes

import "embed"

// Dir - каталог миграций внутри FS.
const Dir = "sql"

// FS содержит файлы миграций golang-migrate.
//
//go:embed sql/*.sql
var FS embed.FS
