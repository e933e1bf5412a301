package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind distinguishes what a token may be used for.
type TokenKind string

const (
	// TokenKindPending is minted at registration. It never authorizes a request.
	TokenKindPending TokenKind = "pending"
	// TokenKindSession is minted at login and authorizes requests until it expires.
	TokenKindSession TokenKind = "session"
)

var (
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and unexpected algorithms.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when a well-signed token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	Kind      TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed, self-contained session tokens.
// No server-side state is kept; verification is purely cryptographic.
type TokenService interface {
	// Mint signs a token for the account that expires after ttl.
	Mint(accountID uuid.UUID, kind TokenKind, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	Verify(tokenString string) (*Claims, error)
}
