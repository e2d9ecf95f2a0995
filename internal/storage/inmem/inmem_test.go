package inmem

import (
	"context"
	"testing"

	"webinarBooker/internal/models"
	"webinarBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(models.User{ID: "user-1", Email: "user-1@example.com"})
	repo.Add(models.User{ID: "user-2", Email: "user-2@example.com"})

	user, err := repo.UserByID(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, "user-2@example.com", user.Email)

	_, err = repo.UserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestWebinarRepository(t *testing.T) {
	t.Parallel()

	repo := NewWebinarRepository()

	err := repo.CreateWebinar(context.Background(), models.Webinar{ID: "webinar-1", Title: "First", Seats: 5})
	require.NoError(t, err)

	webinar, err := repo.WebinarByID(context.Background(), "webinar-1")
	require.NoError(t, err)
	assert.Equal(t, "First", webinar.Title)

	_, err = repo.WebinarByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrWebinarNotFound)
}

func TestParticipationRepository_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewParticipationRepository()

	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		err := repo.SaveParticipation(context.Background(), models.NewParticipation(userID, "webinar-1"))
		require.NoError(t, err)
	}
	err := repo.SaveParticipation(context.Background(), models.NewParticipation("user-4", "webinar-2"))
	require.NoError(t, err)

	participations, err := repo.ParticipationsByWebinarID(context.Background(), "webinar-1")
	require.NoError(t, err)
	require.Len(t, participations, 3)
	assert.Equal(t, "user-1", participations[0].UserID)
	assert.Equal(t, "user-2", participations[1].UserID)
	assert.Equal(t, "user-3", participations[2].UserID)

	participations, err = repo.ParticipationsByWebinarID(context.Background(), "webinar-3")
	require.NoError(t, err)
	assert.Empty(t, participations)
}
