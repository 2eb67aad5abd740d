package service

import (
	"context"
	"testing"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/repository"
	"github.com/Abhijith1907/conference-booking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return NewUserService(repository.NewUserRepo(store.NewMemory[domain.User]()))
}

func TestUserService_Create(t *testing.T) {
	svc := newUserService()

	chatID := int64(42)
	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		UserID:           "u1",
		InterestedTopics: []string{"go", "databases"},
		TelegramChatID:   &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, []string{"go", "databases"}, user.InterestedTopics)
	require.NotNil(t, user.TelegramChatID)
	assert.Equal(t, int64(42), *user.TelegramChatID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Create_EmptyID(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(context.Background(), domain.CreateUserInput{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateUserInput{UserID: "u1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := newUserService()

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc := newUserService()

	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := svc.Create(context.Background(), domain.CreateUserInput{UserID: id})
		require.NoError(t, err)
	}

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u3", users[2].ID)
}
