package types

import "github.com/google/uuid"

// TokenClaims carries the caller identity resolved from a JWT.
type TokenClaims struct {
	UserID uuid.UUID
}
