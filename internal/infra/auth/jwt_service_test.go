package auth

import (
	"testing"
	"time"

	"mytube/config"
	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	identity := entity.Identity{
		UserID:   uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Fullname: "Alice Liddell",
	}

	pair, err := jwtService.GenerateTokens(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity, accessClaims.Identity)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Username) // Refresh tokens only carry the id
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(entity.Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_SuccessiveRefreshTokensDiffer(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	identity := entity.Identity{UserID: uuid.New()}
	first, err := jwtService.GenerateTokens(identity)
	require.NoError(t, err)
	second, err := jwtService.GenerateTokens(identity)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }

	pair, err := impl.GenerateTokens(entity.Identity{UserID: uuid.New()})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, jwtService.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
