package repository

import (
	"context"
	"testing"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaitlistRepo() *WaitlistRepository {
	return NewWaitlistRepo(store.NewMemory[domain.Waitlist]())
}

func TestWaitlistRepository_EnqueuePreservesOrder(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, r.Enqueue(ctx, "gophercon", id))
	}

	for want, id := range []string{"b1", "b2", "b3"} {
		pos, ok, err := r.Position(ctx, "gophercon", id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, pos)
	}

	depth, err := r.Depth(ctx, "gophercon")
	require.NoError(t, err)
	assert.Equal(t, 3, depth)
}

func TestWaitlistRepository_EnqueueIsIdempotent(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, "gophercon", "b1"))
	require.NoError(t, r.Enqueue(ctx, "gophercon", "b1"))

	depth, err := r.Depth(ctx, "gophercon")
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestWaitlistRepository_PopFront(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, "gophercon", "b1"))
	require.NoError(t, r.Enqueue(ctx, "gophercon", "b2"))

	head, ok, err := r.PopFront(ctx, "gophercon")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b1", head)

	// the remaining entry moves up
	pos, ok, err := r.Position(ctx, "gophercon", "b2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	head, ok, err = r.PopFront(ctx, "gophercon")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b2", head)

	_, ok, err = r.PopFront(ctx, "gophercon")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWaitlistRepository_PopFront_UnknownConference(t *testing.T) {
	r := newWaitlistRepo()

	_, ok, err := r.PopFront(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWaitlistRepository_RemoveFromMiddle(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, r.Enqueue(ctx, "gophercon", id))
	}

	removed, err := r.Remove(ctx, "gophercon", "b2")
	require.NoError(t, err)
	assert.True(t, removed)

	pos, ok, err := r.Position(ctx, "gophercon", "b3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok, err = r.Position(ctx, "gophercon", "b2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWaitlistRepository_RemoveAbsentEntry(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, "gophercon", "b1"))

	removed, err := r.Remove(ctx, "gophercon", "b9")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = r.Remove(ctx, "missing", "b1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWaitlistRepository_QueuesAreIndependent(t *testing.T) {
	r := newWaitlistRepo()
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, "gophercon", "b1"))
	require.NoError(t, r.Enqueue(ctx, "rustconf", "b2"))

	head, ok, err := r.PopFront(ctx, "gophercon")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b1", head)

	depth, err := r.Depth(ctx, "rustconf")
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}
