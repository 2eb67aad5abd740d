package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConferenceRepo(t *testing.T, slots int) *ConferenceRepository {
	t.Helper()
	r := NewConferenceRepo(store.NewMemory[domain.Conference]())
	start := time.Now().Add(24 * time.Hour)
	require.NoError(t, r.Create(context.Background(), &domain.Conference{
		Name:           "gophercon",
		Timing:         domain.Timing{StartTS: start, EndTS: start.Add(8 * time.Hour)},
		AvailableSlots: slots,
	}))
	return r
}

func TestConferenceRepository_Create_Duplicate(t *testing.T) {
	r := seedConferenceRepo(t, 10)

	err := r.Create(context.Background(), &domain.Conference{Name: "gophercon"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConferenceExists)
}

func TestConferenceRepository_GetByName_NotFound(t *testing.T) {
	r := NewConferenceRepo(store.NewMemory[domain.Conference]())

	_, err := r.GetByName(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestConferenceRepository_AdjustSlots(t *testing.T) {
	r := seedConferenceRepo(t, 2)
	ctx := context.Background()

	left, err := r.AdjustSlots(ctx, "gophercon", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	left, err = r.AdjustSlots(ctx, "gophercon", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, left)
}

func TestConferenceRepository_AdjustSlots_NeverNegative(t *testing.T) {
	r := seedConferenceRepo(t, 1)
	ctx := context.Background()

	_, err := r.AdjustSlots(ctx, "gophercon", -1)
	require.NoError(t, err)

	_, err = r.AdjustSlots(ctx, "gophercon", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	conf, err := r.GetByName(ctx, "gophercon")
	require.NoError(t, err)
	assert.Equal(t, 0, conf.AvailableSlots)
}

func TestConferenceRepository_AdjustSlots_NotFound(t *testing.T) {
	r := NewConferenceRepo(store.NewMemory[domain.Conference]())

	_, err := r.AdjustSlots(context.Background(), "missing", -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestConferenceRepository_AdjustSlots_Concurrent(t *testing.T) {
	r := seedConferenceRepo(t, 5)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.AdjustSlots(ctx, "gophercon", -1); err == nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, taken)

	conf, err := r.GetByName(ctx, "gophercon")
	require.NoError(t, err)
	assert.Equal(t, 0, conf.AvailableSlots)
}
