// Package inmem holds in-memory repository implementations. They satisfy the
// same contracts as the postgres storage and keep insertion order, which makes
// them a drop-in backend for the booking workflow in tests.
package inmem

import (
	"context"
	"sync"

	"webinarBooker/internal/models"
	"webinarBooker/internal/storage"
)

type UserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewUserRepository(users ...models.User) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) Add(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
}

func (r *UserRepository) UserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}

	return nil, storage.ErrUserNotFound
}

type WebinarRepository struct {
	mu       sync.Mutex
	webinars []models.Webinar
}

func NewWebinarRepository(webinars ...models.Webinar) *WebinarRepository {
	return &WebinarRepository{webinars: webinars}
}

func (r *WebinarRepository) CreateWebinar(_ context.Context, webinar models.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.webinars = append(r.webinars, webinar)

	return nil
}

func (r *WebinarRepository) WebinarByID(_ context.Context, id string) (*models.Webinar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, webinar := range r.webinars {
		if webinar.ID == id {
			w := webinar
			return &w, nil
		}
	}

	return nil, storage.ErrWebinarNotFound
}

type ParticipationRepository struct {
	mu             sync.Mutex
	participations []models.Participation
}

func NewParticipationRepository() *ParticipationRepository {
	return &ParticipationRepository{}
}

func (r *ParticipationRepository) ParticipationsByWebinarID(_ context.Context, webinarID string) ([]models.Participation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var participations []models.Participation
	for _, participation := range r.participations {
		if participation.WebinarID == webinarID {
			participations = append(participations, participation)
		}
	}

	return participations, nil
}

func (r *ParticipationRepository) SaveParticipation(_ context.Context, participation models.Participation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.participations = append(r.participations, participation)

	return nil
}
