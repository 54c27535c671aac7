package tokenizer

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/citizenchain/citizenauth/core"
)

// SessionClaims combines standard claims with the session identity.
// Subject is the canonical public key and ID is the session id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role             core.Role `json:"role"`
	OrganizationName string    `json:"org"`
	Province         string    `json:"province,omitempty"`
}
