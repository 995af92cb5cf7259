package todos

import (
	"log/slog"

	"github.com/aretw0/todos/internal/config"
	"github.com/aretw0/todos/internal/platform"
	"github.com/aretw0/todos/pkg/core"
	"github.com/aretw0/todos/pkg/rpc"
)

// --- Types ---

// Todo is a public alias for the todo record.
type Todo = core.Todo

// Patch is a public alias for a partial update.
type Patch = core.Patch

// Config is a public alias for the todos.yaml settings.
type Config = config.Config

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithEventBuffer allows specifying the per-subscriber event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithStore allows injecting a pre-populated store.
func WithStore(store *core.Store) Option {
	return platform.WithStore(store)
}

// WithConfig applies a loaded todos.yaml.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// LoadConfig reads a todos.yaml file.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// FindConfig looks upwards from startDir for a todos.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// --- Factory ---

// New creates a new todo Service backed by an empty in-memory store.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// NewServer creates a Service and the RPC server exposing it.
func NewServer(opts ...Option) (*rpc.Server, *core.Service, error) {
	return platform.NewServer(opts...)
}

// --- Partial updates ---

// SetText returns a patch that only replaces the text.
func SetText(text string) Patch {
	return Patch{Text: core.Some(text)}
}

// SetCompleted returns a patch that only replaces the completion flag.
func SetCompleted(completed bool) Patch {
	return Patch{Completed: core.Some(completed)}
}
