package models

import (
	"time"

	"github.com/google/uuid"
)

type Participation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WebinarID string    `json:"webinar_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewParticipation builds a participation with a fresh surrogate id. The id
// only matters for persistence identity, business rules never read it.
func NewParticipation(userID, webinarID string) Participation {
	return Participation{
		ID:        uuid.New().String(),
		UserID:    userID,
		WebinarID: webinarID,
		CreatedAt: time.Now(),
	}
}
