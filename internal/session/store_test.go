package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiverArcade/domain"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore()

	created := store.Create(domain.GameState{Status: domain.StatusMenu}, 42)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, uint32(42), created.Seed)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.StatusMenu, got.State.Status)
}

func TestGetUnknownID(t *testing.T) {
	store := NewStore()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutateAppliesUnderLock(t *testing.T) {
	store := NewStore()
	created := store.Create(domain.GameState{Time: 0}, 1)

	updated, err := store.Mutate(created.ID, func(state domain.GameState) domain.GameState {
		state.Time = 5
		return state
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.State.Time)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.State.Time)
}

func TestMutateUnknownID(t *testing.T) {
	store := NewStore()

	_, err := store.Mutate("nope", func(state domain.GameState) domain.GameState { return state })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentMutatesAreSerialized(t *testing.T) {
	store := NewStore()
	created := store.Create(domain.GameState{}, 1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Mutate(created.ID, func(state domain.GameState) domain.GameState {
				state.Time++
				return state
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.State.Time)
}

func TestDelete(t *testing.T) {
	store := NewStore()
	created := store.Create(domain.GameState{}, 1)

	store.Delete(created.ID)
	assert.Zero(t, store.Len())

	_, err := store.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is harmless.
	store.Delete(created.ID)
}

func TestSweepDropsOnlyIdleSessions(t *testing.T) {
	store := NewStore()
	idle := store.Create(domain.GameState{}, 1)
	active := store.Create(domain.GameState{}, 2)

	// Backdate the idle session past the cutoff.
	store.mu.Lock()
	store.sessions[idle.ID].LastActive = time.Now().Add(-2 * time.Hour)
	store.mu.Unlock()

	removed := store.Sweep(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(active.ID)
	assert.NoError(t, err)
}
