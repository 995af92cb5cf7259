package platform

import (
	"log/slog"

	"github.com/aretw0/todos/internal/config"
	"github.com/aretw0/todos/pkg/core"
)

// options holds the internal configuration for the todo service.
type options struct {
	store       *core.Store
	logger      *slog.Logger
	eventBuffer int
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:       nil,
		logger:      nil,
		eventBuffer: core.DefaultEventBuffer,
	}
}

// WithLogger sets the logger for the store, the service and the RPC server.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventBuffer sets the per-subscriber event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithStore allows injecting a pre-populated store.
// If provided, no new store is created and the store's own logger is kept.
func WithStore(store *core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithConfig applies the settings of a loaded config file.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		if cfg.EventBuffer > 0 {
			o.eventBuffer = cfg.EventBuffer
		}
	}
}
