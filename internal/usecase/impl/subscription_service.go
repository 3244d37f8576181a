package impl

import (
	"context"
	"log/slog"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	resolver         repository.RelationshipResolver
	logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	resolver repository.RelationshipResolver,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		resolver:         resolver,
		logger:           logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Toggle subscribes when absent and unsubscribes when present. Subscribing to yourself is rejected.
func (s *subscriptionService) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.ToggleResult, error) {
	if subscriberID == channelID {
		return nil, domainerrors.ErrSelfSubscription
	}

	if err := s.ensureChannel(ctx, channelID); err != nil {
		return nil, err
	}

	existing, err := s.subscriptionRepo.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := s.subscriptionRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(err, "failed to unsubscribe")
		}

		return &entity.ToggleResult{Active: false}, nil
	case !errors.Is(err, repository.ErrSubscriptionNotFound):
		return nil, errors.Wrap(err, "failed to find subscription")
	}

	err = s.subscriptionRepo.Create(ctx, &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID})
	if errors.Is(err, repository.ErrDuplicateSubscription) {
		s.log(ctx).Debug("Concurrent subscription detected, re-reading", slog.Any("channelID", channelID))

		if _, findErr := s.subscriptionRepo.Find(ctx, subscriberID, channelID); findErr != nil {
			return nil, errors.Wrap(findErr, "failed to re-read subscription")
		}

		return &entity.ToggleResult{Active: true}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe")
	}

	return &entity.ToggleResult{Active: true}, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error) {
	if err := s.ensureChannel(ctx, channelID); err != nil {
		return nil, err
	}

	subscribers, err := s.resolver.ChannelSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, subscriberID); err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find subscriber")
	}

	channels, err := s.resolver.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return channels, nil
}

func (s *subscriptionService) Status(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.SubscriptionStatus, error) {
	subscribed, err := s.resolver.IsSubscribed(ctx, subscriberID, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve subscription status")
	}

	return &entity.SubscriptionStatus{ChannelID: channelID, IsSubscribed: subscribed}, nil
}

func (s *subscriptionService) ensureChannel(ctx context.Context, channelID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, channelID); err != nil {
		return translate(err, repository.ErrUserNotFound, domainerrors.ErrChannelNotFound, "failed to find channel")
	}

	return nil
}
