// Package schemas содержит JSON-схемы событий, публикуемых сервисом.
// Схемы версионируются по пути: events/<имя-события>/v<N>.json.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
