package server

import (
	"time"

	"github.com/modelatlas/modelatlas/pkg/constants"
)

// Config controls where the API listens and how it behaves. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	Host string
	Port int

	// PathPrefix versions the API routes, e.g. "/v1".
	PathPrefix string

	CORSEnabled bool
	CORSOrigins []string // empty with CORS enabled means allow all

	// CacheTTL bounds how long rendered responses are reused.
	CacheTTL time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns the stock local-serving configuration.
func DefaultConfig() Config {
	return Config{
		Host:         constants.DefaultServerHost,
		Port:         constants.DefaultServerPort,
		PathPrefix:   "/v1",
		CacheTTL:     constants.DefaultCacheTTL,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}
}
