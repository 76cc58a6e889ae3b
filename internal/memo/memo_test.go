package memo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	calls atomic.Int64
	data  map[string]string
	err   error
}

func (f *fakeStore) fetch(ctx context.Context, id string) (string, bool, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.data[id]
	return v, ok, nil
}

func TestByID_MemoizesHits(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{data: map[string]string{"e1": "title-1"}}
	m := NewByID("events", DefaultConfig(), store.fetch)

	for i := 0; i < 3; i++ {
		v, found, err := m.Get(ctx, "e1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "title-1", v)
	}

	assert.Equal(t, int64(1), store.calls.Load(), "store hit once, rest served from memo")
}

func TestByID_MemoizesMisses(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{data: map[string]string{}}
	m := NewByID("events", DefaultConfig(), store.fetch)

	_, found, err := m.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = m.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, int64(1), store.calls.Load(), "not-found is memoized as a value")
}

func TestByID_InvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{data: map[string]string{"e1": "old"}}
	m := NewByID("events", DefaultConfig(), store.fetch)

	v, _, err := m.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "old", v)

	store.data["e1"] = "new"
	m.Invalidate("e1")

	v, _, err = m.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, int64(2), store.calls.Load())
}

func TestByID_InvalidateAllMovesGeneration(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{data: map[string]string{"e1": "old", "e2": "old"}}
	m := NewByID("events", DefaultConfig(), store.fetch)

	_, _, err := m.Get(ctx, "e1")
	require.NoError(t, err)
	_, _, err = m.Get(ctx, "e2")
	require.NoError(t, err)

	store.data["e1"] = "new"
	store.data["e2"] = "new"
	m.InvalidateAll()

	v1, _, err := m.Get(ctx, "e1")
	require.NoError(t, err)
	v2, _, err := m.Get(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "new", v1)
	assert.Equal(t, "new", v2)
}

func TestNewByID_ZeroConfigIsUsable(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{data: map[string]string{"e1": "title-1"}}

	m := NewByID("events", Config{}, store.fetch)

	v, found, err := m.Get(ctx, "e1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "title-1", v)
}

func TestByID_ErrorsAreNotMemoized(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{err: errors.New("disk gone")}
	m := NewByID("events", DefaultConfig(), store.fetch)

	_, _, err := m.Get(ctx, "e1")
	require.Error(t, err)

	store.err = nil
	store.data = map[string]string{"e1": "recovered"}

	v, found, err := m.Get(ctx, "e1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "recovered", v)
}
