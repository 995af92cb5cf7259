package platform

import (
	"fmt"

	"github.com/aretw0/todos/pkg/core"
	"github.com/aretw0/todos/pkg/rpc"
)

// New wires a store into a service.
//
//	svc, err := todos.New(todos.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	return newService(resolve(opts))
}

// NewServer wires a service and exposes it through an RPC server.
func NewServer(opts ...Option) (*rpc.Server, *core.Service, error) {
	o := resolve(opts)
	svc, err := newService(o)
	if err != nil {
		return nil, nil, err
	}
	return rpc.NewServer(svc, o.logger), svc, nil
}

// resolve applies opts over the defaults.
func resolve(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newService(o *options) (*core.Service, error) {
	if o.eventBuffer < 0 {
		return nil, fmt.Errorf("invalid event buffer size: %d", o.eventBuffer)
	}

	store := o.store
	if store == nil {
		store = core.NewStore(o.logger)
	}

	return core.NewService(store, o.logger, o.eventBuffer), nil
}
