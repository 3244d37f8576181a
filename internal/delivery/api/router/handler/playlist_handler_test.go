package handler

import (
	"net/http"
	"testing"

	"mytube/internal/domain/entity"
	mockUsecase "mytube/internal/mocks/usecase"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type playlistHandlerFixtures struct {
	*testServer
	playlistUC *mockUsecase.MockPlaylistUsecase
}

func createTestPlaylistHandler(t *testing.T) playlistHandlerFixtures {
	srv := newTestServer(t)
	f := playlistHandlerFixtures{testServer: srv, playlistUC: mockUsecase.NewMockPlaylistUsecase(t)}

	h := NewPlaylistHandler(f.playlistUC)

	playlists := srv.echo.Group("/api/v1/playlists")
	playlists.Use(srv.auth.Authenticate)
	playlists.POST("", h.Create)
	playlists.PATCH("/:playlistId", h.Update)
	playlists.PATCH("/:playlistId/name", h.UpdateName)
	playlists.PATCH("/:playlistId/description", h.UpdateDescription)
	playlists.PATCH("/add/:videoId/:playlistId", h.AddVideo)
	playlists.PATCH("/remove/:videoId/:playlistId", h.RemoveVideo)

	return f
}

func TestPlaylistHandler_Create(t *testing.T) {
	fx := createTestPlaylistHandler(t)
	owner := uuid.New()
	token := fx.as(owner)

	fx.playlistUC.EXPECT().
		Create(mock.Anything, owner, &usecase.PlaylistInput{Name: "mix", Description: "songs"}).
		Return(&entity.Playlist{ID: uuid.New(), Name: "mix"}, nil)

	rec, _ := fx.do(jsonRequest(http.MethodPost, "/api/v1/playlists", map[string]string{
		"name":        "mix",
		"description": "songs",
	}), token)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPlaylistHandler_Patches(t *testing.T) {
	name, description := "renamed", "new words"

	tests := []struct {
		name      string
		path      string
		body      map[string]string
		wantPatch entity.PlaylistPatch
	}{
		{
			name:      "name and description",
			path:      "",
			body:      map[string]string{"name": name, "description": description},
			wantPatch: entity.PlaylistPatch{Name: &name, Description: &description},
		},
		{
			name:      "name only",
			path:      "/name",
			body:      map[string]string{"name": name, "description": "ignored"},
			wantPatch: entity.PlaylistPatch{Name: &name},
		},
		{
			name:      "description only",
			path:      "/description",
			body:      map[string]string{"description": description},
			wantPatch: entity.PlaylistPatch{Description: &description},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlaylistHandler(t)
			owner := uuid.New()
			playlistID := uuid.New()
			token := fx.as(owner)

			fx.playlistUC.EXPECT().
				Update(mock.Anything, owner, playlistID, tt.wantPatch).
				Return(&entity.Playlist{ID: playlistID}, nil)

			target := "/api/v1/playlists/" + playlistID.String() + tt.path
			rec, _ := fx.do(jsonRequest(http.MethodPatch, target, tt.body), token)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPlaylistHandler_Update_RequiresBothFields(t *testing.T) {
	fx := createTestPlaylistHandler(t)
	token := fx.as(uuid.New())

	rec, body := fx.do(jsonRequest(http.MethodPatch, "/api/v1/playlists/"+uuid.NewString(), map[string]string{
		"name": "only a name",
	}), token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
}

func TestPlaylistHandler_Membership_ParsesBothIDs(t *testing.T) {
	fx := createTestPlaylistHandler(t)
	owner := uuid.New()
	playlistID, videoID := uuid.New(), uuid.New()
	token := fx.as(owner)

	fx.playlistUC.EXPECT().AddVideo(mock.Anything, owner, playlistID, videoID).
		Return(&entity.Playlist{ID: playlistID, VideoIDs: []uuid.UUID{videoID}}, nil)
	fx.playlistUC.EXPECT().RemoveVideo(mock.Anything, owner, playlistID, videoID).
		Return(&entity.Playlist{ID: playlistID, VideoIDs: []uuid.UUID{}}, nil)

	suffix := "/" + videoID.String() + "/" + playlistID.String()

	rec, body := fx.do(jsonRequest(http.MethodPatch, "/api/v1/playlists/add"+suffix, nil), token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Video added to playlist", body.Message)

	rec, body = fx.do(jsonRequest(http.MethodPatch, "/api/v1/playlists/remove"+suffix, nil), token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Video removed from playlist", body.Message)
}
