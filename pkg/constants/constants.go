// Package constants provides shared constants used throughout the
// modelatlas codebase: file permissions, server defaults, and timeouts
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x).
	DirPermissions = 0o755

	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0o644
)

// Server constants define API server defaults.
const (
	// DefaultServerHost is the default host the API server binds to.
	DefaultServerHost = "localhost"

	// DefaultServerPort is the default port the API server listens on.
	DefaultServerPort = 8080

	// DefaultCacheTTL is the default lifetime of cached API responses.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultReadTimeout is the HTTP server read timeout.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP server idle connection timeout.
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout is how long graceful shutdown may take.
	ShutdownTimeout = 5 * time.Second
)

// Catalog constants define catalog layout conventions.
const (
	// CollectionsFile is the catalog manifest listing all collections.
	CollectionsFile = "collections.yaml"

	// CollectionsDir holds per-collection record directories.
	CollectionsDir = "collections"

	// CardsDir holds markdown model cards with front matter.
	CardsDir = "cards"
)
