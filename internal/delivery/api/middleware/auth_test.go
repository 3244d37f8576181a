package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mytube/internal/delivery/api/response"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"
	mockService "mytube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whoAmI(c echo.Context) error {
	if userID, ok := GetUserID(c); ok {
		return c.String(http.StatusOK, userID.String())
	}

	return c.String(http.StatusOK, "anonymous")
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{Identity: entity.Identity{UserID: userID, Username: "alice"}}

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		setupMock  func(m *mockService.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer good")
			},
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constants.CookieAccessToken, Value: "from-cookie"})
				r.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
			},
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("from-cookie").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
		{
			name:       "missing token",
			prepare:    func(*http.Request) {},
			setupMock:  func(*mockService.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			prepare: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer expired")
			},
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			tt.setupMock(tokenSvc)
			mw := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw.Authenticate(whoAmI)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())

				return
			}

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		mw := NewAuthMiddleware(mockService.NewMockTokenService(t))
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, mw.OptionalAuthenticate(whoAmI)(c))
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("bad signature"))
		mw := NewAuthMiddleware(tokenSvc)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer bad")
		rec := httptest.NewRecorder()

		require.NoError(t, mw.OptionalAuthenticate(whoAmI)(e.NewContext(req, rec)))
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}
