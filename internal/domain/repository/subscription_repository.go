package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Find retrieves the subscription of subscriberID to channelID.
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)

	// Create persists a new subscription relationship.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes a subscription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
