// Package schemas содержит JSON Schema тел запросов CRUD API
package schemas

import "embed"

//go:embed requests
var SchemasFS embed.FS
