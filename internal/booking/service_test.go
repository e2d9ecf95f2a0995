package booking_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"webinarBooker/internal/booking"
	"webinarBooker/internal/booking/mocks"
	"webinarBooker/internal/lib/logger/handlers/slogdiscard"
	"webinarBooker/internal/mailer"
	"webinarBooker/internal/models"
	"webinarBooker/internal/storage/inmem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users          *inmem.UserRepository
	webinars       *inmem.WebinarRepository
	participations *inmem.ParticipationRepository
	mailer         *mocks.Mailer
	service        *booking.Service
}

var (
	testUser = models.User{
		ID:       "user-1",
		Email:    "user@example.com",
		Password: "password",
	}

	testOrganizer = models.User{
		ID:       "organizer-1",
		Email:    "organizer-1@example.com",
		Password: "password",
	}

	testWebinar = models.Webinar{
		ID:          "webinar-1",
		OrganizerID: "organizer-1",
		Title:       "Test Webinar",
		StartDate:   time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		Seats:       10,
	}
)

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		users:          inmem.NewUserRepository(testOrganizer, testUser),
		webinars:       inmem.NewWebinarRepository(testWebinar),
		participations: inmem.NewParticipationRepository(),
		mailer:         mocks.NewMailer(t),
	}

	f.service = booking.New(
		slogdiscard.NewDiscardLogger(),
		f.webinars,
		f.users,
		f.participations,
		f.mailer,
	)

	return f
}

func (f *fixture) participationCount(t *testing.T, webinarID string) int {
	participations, err := f.participations.ParticipationsByWebinarID(context.Background(), webinarID)
	require.NoError(t, err)

	return len(participations)
}

func TestBookSeat_HappyPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.mailer.On("Send", mock.Anything, mailer.Message{
		To:      "organizer-1@example.com",
		Subject: "New participant for webinar: Test Webinar",
		Body:    "User user@example.com has booked a seat in your webinar.",
	}).Return(nil).Once()

	err := f.service.BookSeat(context.Background(), "webinar-1", testUser)
	require.NoError(t, err)

	participations, err := f.participations.ParticipationsByWebinarID(context.Background(), "webinar-1")
	require.NoError(t, err)
	require.Len(t, participations, 1)
	assert.Equal(t, "user-1", participations[0].UserID)
	assert.Equal(t, "webinar-1", participations[0].WebinarID)
	assert.NotEmpty(t, participations[0].ID)
}

func TestBookSeat_WebinarFull(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	for i := 0; i < 10; i++ {
		err := f.participations.SaveParticipation(context.Background(),
			models.NewParticipation(fmt.Sprintf("user-%d", i+2), "webinar-1"))
		require.NoError(t, err)
	}

	err := f.service.BookSeat(context.Background(), "webinar-1", testUser)
	require.ErrorIs(t, err, booking.ErrNoSeatsLeft)

	assert.Equal(t, 10, f.participationCount(t, "webinar-1"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookSeat_AlreadyParticipating(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.participations.SaveParticipation(context.Background(),
		models.NewParticipation("user-1", "webinar-1"))
	require.NoError(t, err)

	err = f.service.BookSeat(context.Background(), "webinar-1", testUser)
	require.ErrorIs(t, err, booking.ErrAlreadyBooked)

	assert.Equal(t, 1, f.participationCount(t, "webinar-1"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookSeat_DuplicateReportedBeforeCapacity(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// Fill the webinar with the requesting user among the participants.
	err := f.participations.SaveParticipation(context.Background(),
		models.NewParticipation("user-1", "webinar-1"))
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		err = f.participations.SaveParticipation(context.Background(),
			models.NewParticipation(fmt.Sprintf("user-%d", i+2), "webinar-1"))
		require.NoError(t, err)
	}

	err = f.service.BookSeat(context.Background(), "webinar-1", testUser)
	require.ErrorIs(t, err, booking.ErrAlreadyBooked)
}

func TestBookSeat_WebinarNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.service.BookSeat(context.Background(), "non-existent-id", testUser)
	require.ErrorIs(t, err, booking.ErrWebinarNotFound)

	assert.Equal(t, 0, f.participationCount(t, "non-existent-id"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookSeat_OrganizerMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.webinars.CreateWebinar(context.Background(), models.Webinar{
		ID:          "webinar-2",
		OrganizerID: "non-existent-organizer",
		Title:       "Orphan Webinar",
		StartDate:   testWebinar.StartDate,
		EndDate:     testWebinar.EndDate,
		Seats:       5,
	})
	require.NoError(t, err)

	err = f.service.BookSeat(context.Background(), "webinar-2", testUser)
	require.NoError(t, err)

	assert.Equal(t, 1, f.participationCount(t, "webinar-2"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookSeat_NotifyFailureKeepsBooking(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.mailer.On("Send", mock.Anything, mock.Anything).
		Return(errors.New("smtp connection refused")).Once()

	err := f.service.BookSeat(context.Background(), "webinar-1", testUser)
	require.ErrorIs(t, err, booking.ErrNotifyFailed)

	// The seat stays booked even though the notification failed.
	assert.Equal(t, 1, f.participationCount(t, "webinar-1"))
}

func TestBookSeat_FailurePathsAreIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.participations.SaveParticipation(context.Background(),
		models.NewParticipation("user-1", "webinar-1"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		err = f.service.BookSeat(context.Background(), "webinar-1", testUser)
		require.ErrorIs(t, err, booking.ErrAlreadyBooked)

		err = f.service.BookSeat(context.Background(), "non-existent-id", testUser)
		require.ErrorIs(t, err, booking.ErrWebinarNotFound)
	}

	assert.Equal(t, 1, f.participationCount(t, "webinar-1"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
