// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account and, at the same time, the channel that owns videos, tweets and playlists.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"` // Unique, stored lowercase and trimmed.
	Email        string      `json:"email"`    // Unique, stored trimmed.
	Fullname     string      `json:"fullname"`
	PasswordHash string      `json:"-"` // bcrypt hash, never serialized.
	Avatar       MediaAsset  `json:"avatar"`
	CoverImage   *MediaAsset `json:"coverImage,omitempty"`
	RefreshToken *string     `json:"-"` // The single active refresh token, nil after logout.
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Identity is what an access token asserts about its bearer.
type Identity struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Fullname string    `json:"fullname"`
}

// IdentityOf extracts the token identity of a user.
func IdentityOf(u *User) Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Fullname: u.Fullname,
	}
}

// TokenPair is the output of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is returned by login.
type AuthResult struct {
	User *User `json:"user"`
	TokenPair
}

// UserPatch carries the mutable fields of a user. Nil fields are left untouched.
type UserPatch struct {
	Fullname     *string
	PasswordHash *string
	Avatar       *MediaAsset
	CoverImage   *MediaAsset
}
