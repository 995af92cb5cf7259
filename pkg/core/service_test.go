package core_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/todos/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *core.Service {
	return core.NewService(core.NewStore(nil), nil, 0)
}

func TestService_CRUD(t *testing.T) {
	service := newService()

	// 1. Add
	todo := service.Add("content1")
	require.Equal(t, uint32(1), todo.ID)

	// 2. Get
	got, ok := service.Get(todo.ID)
	require.True(t, ok)
	assert.Equal(t, "content1", got.Text)

	// 3. Update
	updated, ok := service.Update(todo.ID, core.Patch{Completed: core.Some(true)})
	require.True(t, ok)
	assert.True(t, updated.Completed)

	// 4. List
	service.Add("content2")
	assert.Len(t, service.List(0, 10), 2)

	// 5. Remove
	_, ok = service.Remove(todo.ID)
	require.True(t, ok)
	_, ok = service.Get(todo.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, service.Len())
}

func TestService_Match(t *testing.T) {
	service := newService()
	service.Add("buy milk")
	service.Add("walk dog")
	service.Add("buy bread")

	todos, err := service.Match("buy *", 0, 10)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, uint32(1), todos[0].ID)
	assert.Equal(t, uint32(3), todos[1].ID)

	todos, err = service.Match("buy *", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []core.Todo{{ID: 3, Text: "buy bread"}}, todos)

	_, err = service.Match("buy [", 0, 10)
	assert.True(t, errors.Is(err, core.ErrBadPattern))
}

func TestService_WatchPublishesMutations(t *testing.T) {
	service := newService()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := service.Watch(ctx)

	service.Add("a")
	service.Update(1, core.Patch{Text: core.Some("b")})
	service.Update(1, core.Patch{}) // no-op, no event
	service.Remove(1)
	service.Remove(1) // absent, no event

	var got []core.EventType
	timeout := time.After(time.Second)
	for len(got) < 3 {
		select {
		case e := <-stream:
			assert.Equal(t, uint32(1), e.ID)
			got = append(got, e.Type)
		case <-timeout:
			t.Fatalf("timed out, received %v", got)
		}
	}
	assert.Equal(t, []core.EventType{core.EventCreate, core.EventModify, core.EventDelete}, got)

	select {
	case e := <-stream:
		t.Fatalf("unexpected event %v", e)
	default:
	}
}

func TestService_WatchClosesOnCancel(t *testing.T) {
	service := newService()
	ctx, cancel := context.WithCancel(context.Background())
	stream := service.Watch(ctx)

	cancel()

	select {
	case _, ok := <-stream:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed")
	}
	assert.Eventually(t, func() bool {
		return service.State().(core.ServiceState).Subscribers == 0
	}, time.Second, 10*time.Millisecond)
}

func TestService_SlowSubscriberDoesNotBlockWriters(t *testing.T) {
	service := core.NewService(core.NewStore(nil), nil, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = service.Watch(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			service.Add("x")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer blocked on a full subscriber")
	}
	assert.Equal(t, 10, service.Len())
}

func TestService_ConcurrentAdds(t *testing.T) {
	service := newService()

	var wg sync.WaitGroup
	ids := make(chan uint32, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- service.Add("x").ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint32]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 200)

	list := service.List(0, 500)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestService_State(t *testing.T) {
	service := core.NewService(core.NewStore(nil), nil, 7)
	service.Add("a")
	service.Add("b")
	service.Remove(2)

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, core.ServiceState{Size: 1, LastID: 2, EventBufferSize: 7}, state)
	assert.Equal(t, "todo-service", service.ComponentType())
}

func TestService_EventsFollowMutationOrder(t *testing.T) {
	const writers = 200
	service := core.NewService(core.NewStore(nil), nil, 2*writers)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := service.Watch(ctx)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			todo := service.Add("x")
			service.Remove(todo.ID)
		}()
	}
	wg.Wait()

	created := make(map[uint32]bool)
	for i := 0; i < 2*writers; i++ {
		e := <-stream
		switch e.Type {
		case core.EventCreate:
			created[e.ID] = true
		case core.EventDelete:
			require.True(t, created[e.ID], "DELETE for %d arrived before its CREATE", e.ID)
		}
	}
	assert.Len(t, created, writers)
}
