package core

import (
	"log/slog"
	"slices"
)

// Store is the in-memory record store.
// It owns every todo, assigns ids and keeps them in ascending key order.
//
// Store performs no synchronization: each call assumes exclusive access.
// Use Service when the surrounding host is concurrent.
type Store struct {
	todos  map[uint32]Todo
	keys   []uint32 // ascending; new ids are always appended
	lastID uint32
	logger *slog.Logger
}

// NewStore creates an empty store. A nil logger discards diagnostics.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		todos:  make(map[uint32]Todo),
		logger: logger,
	}
}

// Add inserts a new, not yet completed todo and returns it.
//
// Ids are 1-based and monotonic: the new id is one more than the highest id
// ever assigned by this store, so ids freed by Remove are never handed out
// again.
func (s *Store) Add(text string) Todo {
	// Wraps to 0 after 2^32-1 adds; not guarded.
	s.lastID++
	t := Todo{ID: s.lastID, Text: text}
	s.todos[t.ID] = t
	s.keys = append(s.keys, t.ID)
	return t
}

// Remove deletes the todo with the given id and returns it.
// The boolean is false when no such todo exists.
func (s *Store) Remove(id uint32) (Todo, bool) {
	t, ok := s.todos[id]
	if !ok {
		s.notFound("remove", id)
		return Todo{}, false
	}
	delete(s.todos, id)
	if i, found := slices.BinarySearch(s.keys, id); found {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	return t, true
}

// Get returns a copy of the todo with the given id.
func (s *Store) Get(id uint32) (Todo, bool) {
	t, ok := s.todos[id]
	return t, ok
}

// Update applies the set fields of p to the todo with the given id and
// returns the result. An empty patch returns the record unchanged.
func (s *Store) Update(id uint32, p Patch) (Todo, bool) {
	t, ok := s.todos[id]
	if !ok {
		s.notFound("update", id)
		return Todo{}, false
	}
	p.apply(&t)
	s.todos[id] = t
	return t, true
}

// List returns up to limit todos in ascending id order, skipping the first
// offset. Out of range windows yield an empty slice.
func (s *Store) List(offset, limit uint32) []Todo {
	out := []Todo{}
	if limit == 0 || uint64(offset) >= uint64(len(s.keys)) {
		return out
	}
	end := min(uint64(offset)+uint64(limit), uint64(len(s.keys)))
	for _, id := range s.keys[offset:end] {
		out = append(out, s.todos[id])
	}
	return out
}

// Filter returns up to limit todos accepted by keep, in ascending id order,
// skipping the first offset matches.
func (s *Store) Filter(keep func(Todo) bool, offset, limit uint32) []Todo {
	out := []Todo{}
	if limit == 0 {
		return out
	}
	var skipped uint32
	for _, id := range s.keys {
		t := s.todos[id]
		if !keep(t) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, t)
		if uint32(len(out)) == limit {
			break
		}
	}
	return out
}

// Len returns the number of stored todos.
func (s *Store) Len() int {
	return len(s.todos)
}

// LastID returns the highest id ever assigned, or 0 for a fresh store.
func (s *Store) LastID() uint32 {
	return s.lastID
}

func (s *Store) notFound(op string, id uint32) {
	s.logger.Info("todo not found", "op", op, "id", id)
}
