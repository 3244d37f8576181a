package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a channel.
type Tweet struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	OwnerID   uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
