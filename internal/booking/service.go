// Package booking implements the seat reservation workflow: look up the
// webinar, reject duplicates and overbooking, persist the participation and
// notify the organizer by mail.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/mailer"
	"webinarBooker/internal/models"
	"webinarBooker/internal/storage"
)

var (
	ErrWebinarNotFound = errors.New("webinar not found")
	ErrAlreadyBooked   = errors.New("user is already participating in this webinar")
	ErrNoSeatsLeft     = errors.New("no seats available")

	// ErrNotifyFailed means the seat was booked but the organizer
	// notification did not go out. The participation is kept.
	ErrNotifyFailed = errors.New("failed to notify organizer")
)

type WebinarRepository interface {
	WebinarByID(ctx context.Context, id string) (*models.Webinar, error)
}

type UserRepository interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type ParticipationRepository interface {
	ParticipationsByWebinarID(ctx context.Context, webinarID string) ([]models.Participation, error)
	SaveParticipation(ctx context.Context, participation models.Participation) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Mailer
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type Service struct {
	log            *slog.Logger
	webinars       WebinarRepository
	users          UserRepository
	participations ParticipationRepository
	mailer         Mailer
}

func New(
	log *slog.Logger,
	webinars WebinarRepository,
	users UserRepository,
	participations ParticipationRepository,
	mailer Mailer,
) *Service {
	return &Service{
		log:            log,
		webinars:       webinars,
		users:          users,
		participations: participations,
		mailer:         mailer,
	}
}

// BookSeat reserves one seat in the webinar for the given user. The duplicate
// check runs before the capacity check, so a user already registered to a full
// webinar gets ErrAlreadyBooked, not ErrNoSeatsLeft. There is no transaction
// across the participation read and write; two overlapping requests can both
// pass the checks.
func (s *Service) BookSeat(ctx context.Context, webinarID string, user models.User) error {
	const op = "booking.BookSeat"

	log := s.log.With(
		slog.String("op", op),
		slog.String("webinar_id", webinarID),
		slog.String("user_id", user.ID),
	)

	webinar, err := s.webinars.WebinarByID(ctx, webinarID)
	if err != nil {
		if errors.Is(err, storage.ErrWebinarNotFound) {
			return ErrWebinarNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	participations, err := s.participations.ParticipationsByWebinarID(ctx, webinarID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, participation := range participations {
		if participation.UserID == user.ID {
			return ErrAlreadyBooked
		}
	}

	if len(participations) >= webinar.Seats {
		return ErrNoSeatsLeft
	}

	participation := models.NewParticipation(user.ID, webinarID)
	if err = s.participations.SaveParticipation(ctx, participation); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("seat booked", slog.String("participation_id", participation.ID))

	return s.notifyOrganizer(ctx, log, webinar, user)
}

// notifyOrganizer runs after the participation is persisted. A missing
// organizer is not an error; any other fault surfaces as ErrNotifyFailed so
// the caller can tell the seat is still held.
func (s *Service) notifyOrganizer(ctx context.Context, log *slog.Logger, webinar *models.Webinar, user models.User) error {
	organizer, err := s.users.UserByID(ctx, webinar.OrganizerID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("organizer not found, skipping notification",
				slog.String("organizer_id", webinar.OrganizerID))
			return nil
		}
		return fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	msg := mailer.Message{
		To:      organizer.Email,
		Subject: fmt.Sprintf("New participant for webinar: %s", webinar.Title),
		Body:    fmt.Sprintf("User %s has booked a seat in your webinar.", user.Email),
	}

	if err = s.mailer.Send(ctx, msg); err != nil {
		log.Error("failed to send organizer notification", sl.Err(err))
		return fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	log.Info("organizer notified", slog.String("organizer_id", organizer.ID))

	return nil
}
