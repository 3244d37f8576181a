// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription exists while SubscriberID follows ChannelID.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	SubscriberID uuid.UUID `json:"subscriber"`
	ChannelID    uuid.UUID `json:"channel"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SubscriptionStatus answers whether the caller follows a channel.
type SubscriptionStatus struct {
	ChannelID    uuid.UUID `json:"channel"`
	IsSubscribed bool      `json:"isSubscribed"`
}
