// Package model holds the GORM table mappings. They are exported so the GORM Gen
// tool and the migrator can use them from other packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username            string    `gorm:"type:varchar(50);uniqueIndex;not null;check:chk_users_username_lower,username = lower(username)"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Fullname            string    `gorm:"type:varchar(100);not null;index"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	AvatarURL           string    `gorm:"type:text;not null"`
	AvatarStorageID     string    `gorm:"type:text;not null"`
	CoverImageURL       *string   `gorm:"type:text"`
	CoverImageStorageID *string   `gorm:"type:text"`
	RefreshToken        *string   `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
