package bridge_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/bridge"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

func TestStoreAllocateID(t *testing.T) {
	store, err := bridge.NewStore(bridge.StoreConfig{})
	require.NoError(t, err)

	const goroutines = 20
	const perGoroutine = 100

	ids := make(chan uint64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				ids <- store.AllocateID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}

func TestStoreAwaitResult(t *testing.T) {
	tests := map[string]struct {
		publish      func(store *bridge.Store, id uint64)
		timeout      time.Duration
		expSuccess   bool
		expMessage   string
		expCompleted bool
	}{
		"A published result should be delivered": {
			publish: func(store *bridge.Store, id uint64) {
				store.Publish(id, &model.TaskResult{Success: true, Message: "draw_box completed successfully", Completed: true})
			},
			timeout:      time.Second,
			expSuccess:   true,
			expMessage:   "draw_box completed successfully",
			expCompleted: true,
		},

		"A result published after a delay should be delivered": {
			publish: func(store *bridge.Store, id uint64) {
				go func() {
					time.Sleep(120 * time.Millisecond)
					store.Publish(id, &model.TaskResult{Success: true, Message: "undo completed successfully", Completed: true})
				}()
			},
			timeout:      time.Second,
			expSuccess:   true,
			expMessage:   "undo completed successfully",
			expCompleted: true,
		},

		"No result should synthesize a timeout failure": {
			publish:      func(store *bridge.Store, id uint64) {},
			timeout:      150 * time.Millisecond,
			expSuccess:   false,
			expMessage:   "Task timeout",
			expCompleted: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			store, err := bridge.NewStore(bridge.StoreConfig{PollInterval: 10 * time.Millisecond})
			require.NoError(t, err)

			id := store.AllocateID()
			test.publish(store, id)

			result, err := store.AwaitResult(context.Background(), id, test.timeout)
			require.NoError(t, err)
			assert.Equal(t, test.expSuccess, result.Success)
			assert.Equal(t, test.expMessage, result.Message)
			assert.Equal(t, test.expCompleted, result.Completed)
		})
	}
}

func TestStoreConsumeOnce(t *testing.T) {
	store, err := bridge.NewStore(bridge.StoreConfig{PollInterval: 10 * time.Millisecond})
	require.NoError(t, err)

	id := store.AllocateID()
	store.Publish(id, &model.TaskResult{Success: true, Message: "ok", Completed: true})

	first, err := store.AwaitResult(context.Background(), id, time.Second)
	require.NoError(t, err)
	assert.True(t, first.Success)

	// The result was consumed, a second wait times out.
	second, err := store.AwaitResult(context.Background(), id, 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Task timeout", second.Message)
}

func TestStoreAwaitContextCancel(t *testing.T) {
	store, err := bridge.NewStore(bridge.StoreConfig{PollInterval: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = store.AwaitResult(ctx, store.AllocateID(), time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreOrphans(t *testing.T) {
	store, err := bridge.NewStore(bridge.StoreConfig{})
	require.NoError(t, err)

	// Results nobody waits for stay behind as orphans.
	store.Publish(store.AllocateID(), &model.TaskResult{Success: true, Completed: true})
	store.Publish(store.AllocateID(), &model.TaskResult{Success: false, Completed: true})
	assert.Equal(t, 2, store.Orphaned())

	assert.Equal(t, 0, store.Evict(time.Minute))
	assert.Equal(t, 2, store.Orphaned())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, store.Evict(10*time.Millisecond))
	assert.Equal(t, 0, store.Orphaned())
}
