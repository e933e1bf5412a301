// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountState is the position of an account in the verification state machine.
type AccountState string

const (
	// AccountStatePendingVerification is the state of a registered account whose email is not confirmed yet.
	AccountStatePendingVerification AccountState = "pending_verification"
	// AccountStateVerified is the state of an account that confirmed its email with a one-time code.
	AccountStateVerified AccountState = "verified"
)

// String returns the string representation of the AccountState.
func (s AccountState) String() string {
	return string(s)
}

// Account is a registered identity together with its credential.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier for the account.
	Username     string    // Unique display handle chosen at registration.
	Email        string    // Unique login identifier, compared exactly as stored.
	PasswordHash string    // bcrypt hash of the password; the plaintext is never stored.
	IsVerified   bool      // Flipped once the emailed one-time code is confirmed.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// State reports the account's position in the verification state machine.
func (a *Account) State() AccountState {
	if a.IsVerified {
		return AccountStateVerified
	}

	return AccountStatePendingVerification
}

// Profile returns the public view of the account.
func (a *Account) Profile() Profile {
	return Profile{
		Username: a.Username,
		Email:    a.Email,
	}
}

// Profile is the minimal public projection of an account. It never carries the hash.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
