package service

import "time"

// TokenClaims carries the account data encoded in a session token at issuance
// time. Later changes to the account do not invalidate outstanding tokens.
type TokenClaims struct {
	UserID    uint64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the contract for issuing and verifying signed,
// time-bounded session tokens. Tokens are stateless; nothing is persisted
// server-side.
type TokenService interface {
	// Issue produces a signed token encoding the account id, email, and an
	// expiry of issuance time plus the configured TTL.
	Issue(userID uint64, email string) (string, error)

	// Validate parses and verifies a token, returning its claims. Failures are
	// classified: domainerrors.ErrTokenExpired for an elapsed expiry,
	// domainerrors.ErrTokenInvalid for everything else.
	Validate(tokenString string) (*TokenClaims, error)
}
