package server

import (
	"time"

	"oes-harmonize/internal/harmonize"
	"oes-harmonize/internal/tabular"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address.
	Addr string
	// DataDir roots the files addressable by the "source" form value.
	// Empty disables sourced input.
	DataDir string
	// DialectDir holds YAML dialect files registered after the built-ins.
	// Empty disables loading and watching.
	DialectDir string
	// Watch reloads the registry when DialectDir changes.
	Watch bool
	// ReloadDelay coalesces bursts of file events into one reload.
	ReloadDelay time.Duration
	// MaxUploadBytes bounds request bodies.
	MaxUploadBytes int64
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	Harmonize harmonize.Config
	Read      tabular.ReadOptions
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Watch:           true,
		ReloadDelay:     500 * time.Millisecond,
		MaxUploadBytes:  256 << 20,
		ShutdownTimeout: 10 * time.Second,
		Harmonize:       harmonize.DefaultConfig(),
		Read:            tabular.DefaultReadOptions(),
	}
}
