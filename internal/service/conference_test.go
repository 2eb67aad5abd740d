package service

import (
	"context"
	"testing"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/repository"
	"github.com/Abhijith1907/conference-booking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConferenceService() (*ConferenceService, *repository.WaitlistRepository) {
	waitlist := repository.NewWaitlistRepo(store.NewMemory[domain.Waitlist]())
	svc := NewConferenceService(repository.NewConferenceRepo(store.NewMemory[domain.Conference]()), waitlist)
	return svc, waitlist
}

func validConferenceInput() domain.CreateConferenceInput {
	start := time.Now().Add(24 * time.Hour)
	return domain.CreateConferenceInput{
		Name:           "gophercon",
		Location:       "Bengaluru",
		Topics:         []string{"go", "concurrency"},
		StartTS:        start,
		EndTS:          start.Add(8 * time.Hour),
		AvailableSlots: 100,
	}
}

func TestConferenceService_Create(t *testing.T) {
	svc, _ := newConferenceService()

	conf, err := svc.Create(context.Background(), validConferenceInput())

	require.NoError(t, err)
	assert.Equal(t, "gophercon", conf.Name)
	assert.Equal(t, 100, conf.AvailableSlots)
	assert.False(t, conf.CreatedAt.IsZero())

	got, err := svc.GetByName(context.Background(), "gophercon")
	require.NoError(t, err)
	assert.Equal(t, conf.Name, got.Name)
}

func TestConferenceService_Create_DuplicateName(t *testing.T) {
	svc, _ := newConferenceService()

	_, err := svc.Create(context.Background(), validConferenceInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validConferenceInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConferenceExists)
}

func TestConferenceService_Create_Validation(t *testing.T) {
	svc, _ := newConferenceService()

	tests := []struct {
		name    string
		mutate  func(*domain.CreateConferenceInput)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(in *domain.CreateConferenceInput) { in.Name = "" },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "negative slots",
			mutate:  func(in *domain.CreateConferenceInput) { in.AvailableSlots = -1 },
			wantErr: domain.ErrValidation,
		},
		{
			name: "too many topics",
			mutate: func(in *domain.CreateConferenceInput) {
				in.Topics = make([]string, domain.MaxTopics+1)
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "end before start",
			mutate: func(in *domain.CreateConferenceInput) {
				in.EndTS = in.StartTS.Add(-time.Hour)
			},
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name: "longer than twelve hours",
			mutate: func(in *domain.CreateConferenceInput) {
				in.EndTS = in.StartTS.Add(domain.MaxConferenceDuration + time.Minute)
			},
			wantErr: domain.ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validConferenceInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConferenceService_Create_ZeroSlots(t *testing.T) {
	svc, _ := newConferenceService()

	input := validConferenceInput()
	input.AvailableSlots = 0

	conf, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 0, conf.AvailableSlots)
}

func TestConferenceService_GetByName_NotFound(t *testing.T) {
	svc, _ := newConferenceService()

	_, err := svc.GetByName(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestConferenceService_List(t *testing.T) {
	svc, _ := newConferenceService()

	first := validConferenceInput()
	second := validConferenceInput()
	second.Name = "rustconf"

	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	confs, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, confs, 2)
	assert.Equal(t, "gophercon", confs[0].Name)
	assert.Equal(t, "rustconf", confs[1].Name)
}

func TestConferenceService_OccupancySnapshot(t *testing.T) {
	svc, waitlist := newConferenceService()

	input := validConferenceInput()
	input.AvailableSlots = 0
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	require.NoError(t, waitlist.Enqueue(context.Background(), "gophercon", "b1"))
	require.NoError(t, waitlist.Enqueue(context.Background(), "gophercon", "b2"))

	snap, err := svc.OccupancySnapshot(context.Background())

	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "gophercon", snap[0].Conference)
	assert.Equal(t, 0, snap[0].AvailableSlots)
	assert.Equal(t, 2, snap[0].WaitlistDepth)
}
