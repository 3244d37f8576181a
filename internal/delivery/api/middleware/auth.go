package middleware

import (
	"log/slog"
	"strings"

	"mytube/internal/delivery/api/response"
	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyIdentity = "identity"
)

// AuthMiddleware authenticates requests with the access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects the request unless it carries a valid access token in the
// accessToken cookie or the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			return response.AppError(c, domainerrors.ErrAccessTokenInvalid)
		}

		setIdentity(c, claims.Identity)

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := accessToken(c); token != "" {
			if claims, err := m.tokenSvc.ValidateAccessToken(token); err == nil {
				setIdentity(c, claims.Identity)
			}
		}

		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(constants.CookieAccessToken); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	const bearerPrefix = "Bearer "
	if len(authHeader) > len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	return ""
}

func setIdentity(c echo.Context, identity entity.Identity) {
	c.Set(contextKeyUserID, identity.UserID)
	c.Set(contextKeyIdentity, identity)

	ctx := deliverycontext.WithUserID(c.Request().Context(), identity.UserID)
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetOptionalUserID returns nil for anonymous callers.
func GetOptionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := GetUserID(c); ok {
		return &userID
	}

	return nil
}

// GetIdentity returns the identity carried by the access token.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(entity.Identity)

	return identity, ok
}
