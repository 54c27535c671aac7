package tokenizer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
)

const AudienceAccess = "citizenauth:access"

// JWTTokenizer implements the Tokenizer interface using ES256 JWTs
type JWTTokenizer struct {
	signKey *ecdsa.PrivateKey
	now     func() time.Time
}

// NewJWTTokenizer creates a new JWT tokenizer
func NewJWTTokenizer(signKey *ecdsa.PrivateKey) *JWTTokenizer {
	return &JWTTokenizer{signKey: signKey, now: time.Now}
}

var _ ports.Tokenizer = (*JWTTokenizer)(nil)

// SessionToAccessToken converts a session to an access token valid for ttl
func (j *JWTTokenizer) SessionToAccessToken(session core.LoginSession, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.PublicKey,
			ID:        session.ID,
			ExpiresAt: jwt.NewNumericDate(j.now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			Audience:  jwt.ClaimStrings{AudienceAccess},
		},
		Role:             session.Role,
		OrganizationName: session.OrganizationName,
		Province:         session.Province,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(j.signKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signedToken, nil
}

// AccessTokenToSession parses an access token and returns the session it names
func (j *JWTTokenizer) AccessTokenToSession(tokenStr string) (core.LoginSession, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &j.signKey.PublicKey, nil
	}, jwt.WithAudience(AudienceAccess), jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return core.LoginSession{}, errors.Join(core.ErrInvalidToken, err)
	}

	if !token.Valid {
		return core.LoginSession{}, core.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return core.LoginSession{}, fmt.Errorf("%w: invalid claims type", core.ErrInvalidToken)
	}
	if claims.ID == "" || !claims.Role.Valid() {
		return core.LoginSession{}, fmt.Errorf("%w: incomplete claims", core.ErrInvalidToken)
	}

	session := core.LoginSession{
		ID:               claims.ID,
		Role:             claims.Role,
		PublicKey:        claims.Subject,
		Province:         claims.Province,
		OrganizationName: claims.OrganizationName,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}
