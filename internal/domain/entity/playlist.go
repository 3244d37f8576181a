package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered set of videos curated by its owner.
type Playlist struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"owner"`
	VideoIDs    []uuid.UUID `json:"videos"`
	CoverImage  *MediaAsset `json:"coverImage,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Contains reports whether the video is already a member.
func (p *Playlist) Contains(videoID uuid.UUID) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}

	return false
}

// PlaylistPatch carries the mutable fields of a playlist. Nil fields are left untouched.
type PlaylistPatch struct {
	Name        *string
	Description *string
}
