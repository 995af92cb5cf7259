package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Size            int    `json:"size"`
	LastID          uint32 `json:"last_id"`
	Subscribers     int    `json:"subscribers"`
	EventBufferSize int    `json:"event_buffer_size"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	size, lastID := s.store.Len(), s.store.LastID()
	s.mu.RUnlock()

	return ServiceState{
		Size:            size,
		LastID:          lastID,
		Subscribers:     s.subscribers(),
		EventBufferSize: s.eventBufferSize,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "todo-service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
