package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriberID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair,priority:1"`
	Subscriber   *UserModel `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	ChannelID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_subscriptions_pair,priority:2"`
	Channel      *UserModel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
