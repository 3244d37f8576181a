package handler

import (
	"net/http"
	"time"

	"mytube/config"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/entity"
)

func setTokenCookies(w http.ResponseWriter, cfg *config.AuthConfig, pair entity.TokenPair) {
	http.SetCookie(w, tokenCookie(constants.CookieAccessToken, pair.AccessToken, cfg.AccessTokenTTL, cfg.CookieSecure))
	http.SetCookie(w, tokenCookie(constants.CookieRefreshToken, pair.RefreshToken, cfg.RefreshTokenTTL, cfg.CookieSecure))
}

func clearTokenCookies(w http.ResponseWriter, cfg *config.AuthConfig) {
	for _, name := range []string{constants.CookieAccessToken, constants.CookieRefreshToken} {
		cookie := tokenCookie(name, "", 0, cfg.CookieSecure)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

func tokenCookie(name, value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
