// Package lifecycle bridges todo change events into aretw0/lifecycle.
package lifecycle

import (
	"context"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/todos/pkg/core"
)

// Option configures a Source.
type Option func(*todoSource)

// WithTypes forwards only events of the given types.
// Without it every event is forwarded.
func WithTypes(types ...core.EventType) Option {
	return func(s *todoSource) {
		s.types = append(s.types, types...)
	}
}

type todoSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	types  []core.EventType
}

// NewSource creates a lifecycle.Source over a core.Service event stream.
// The output channel closes when events closes or the start context ends.
func NewSource(events <-chan core.Event, opts ...Option) lifecycle.Source {
	s := &todoSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *todoSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *todoSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.forward)
	return nil
}

func (s *todoSource) accepts(e core.Event) bool {
	return len(s.types) == 0 || slices.Contains(s.types, e.Type)
}

func (s *todoSource) forward(ctx context.Context) error {
	defer close(s.out)
	for {
		var e core.Event
		select {
		case <-ctx.Done():
			return nil
		case next, ok := <-s.events:
			if !ok {
				return nil
			}
			e = next
		}

		if !s.accepts(e) {
			continue
		}
		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}
