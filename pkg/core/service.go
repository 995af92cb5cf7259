package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultEventBuffer is the per-subscriber buffer used when none is configured.
const DefaultEventBuffer = 100

// Service handles the business logic for todos.
// It serializes access to a single Store and publishes change events.
type Service struct {
	mu    sync.RWMutex
	store *Store

	logger          *slog.Logger
	eventBufferSize int

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

// NewService creates a new Service around store.
// A nil logger discards diagnostics; a non-positive buffer uses DefaultEventBuffer.
func NewService(store *Store, logger *slog.Logger, eventBuffer int) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if eventBuffer <= 0 {
		eventBuffer = DefaultEventBuffer
	}
	return &Service{
		store:           store,
		logger:          logger,
		eventBufferSize: eventBuffer,
		subs:            make(map[chan Event]struct{}),
	}
}

// Add creates a todo.
func (s *Service) Add(text string) Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.store.Add(text)
	s.logger.Debug("todo added", "id", t.ID)
	s.publish(EventCreate, t.ID)
	return t
}

// Remove deletes a todo. Absence is reported by the boolean, never as an error.
func (s *Service) Remove(id uint32) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.store.Remove(id)
	if ok {
		s.logger.Debug("todo removed", "id", id)
		s.publish(EventDelete, id)
	}
	return t, ok
}

// Get retrieves a todo.
func (s *Service) Get(id uint32) (Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Get(id)
}

// Update applies a partial update.
// An empty patch does not publish an event.
func (s *Service) Update(id uint32, p Patch) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.store.Update(id, p)
	if ok && !p.IsEmpty() {
		s.logger.Debug("todo updated", "id", id)
		s.publish(EventModify, id)
	}
	return t, ok
}

// List returns a page of todos in id order.
func (s *Service) List(offset, limit uint32) []Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.List(offset, limit)
}

// Match returns a page of the todos whose text matches a doublestar glob
// pattern, in id order. Offset counts matching todos only.
func (s *Service) Match(pattern string, offset, limit uint32) ([]Todo, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Filter(func(t Todo) bool {
		ok, _ := doublestar.Match(pattern, t.Text)
		return ok
	}, offset, limit), nil
}

// Len returns the number of stored todos.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Len()
}

// Watch subscribes to change events until ctx is done.
// The returned channel is closed after ctx is cancelled. Slow subscribers
// lose events once their buffer is full; writers never block on them.
func (s *Service) Watch(ctx context.Context) <-chan Event {
	ch := make(chan Event, s.eventBufferSize)

	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.subMu.Unlock()
	}()

	return ch
}

// publish must be called with mu held so subscribers see events in mutation
// order. Sends never block.
func (s *Service) publish(typ EventType, id uint32) {
	e := Event{Type: typ, ID: id, Timestamp: time.Now().Unix()}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- e:
		default:
			s.logger.Debug("event dropped, subscriber buffer full", "event", e.String())
		}
	}
}

func (s *Service) subscribers() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}
