package handler

import (
	"net/http"
	"time"

	"authgate/config"
)

// sessionCookie carries the session token. It lives exactly as long as the token.
func sessionCookie(cfg *config.Config, token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Cookie.Name,
		Value:    token,
		Path:     cfg.Cookie.Path,
		Domain:   cfg.Cookie.Domain,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   cfg.SecureCookie(),
		SameSite: http.SameSiteStrictMode,
	}
}

// clearedCookie instructs the browser to drop the session cookie.
func clearedCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Cookie.Name,
		Value:    "",
		Path:     cfg.Cookie.Path,
		Domain:   cfg.Cookie.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.SecureCookie(),
		SameSite: http.SameSiteStrictMode,
	}
}
