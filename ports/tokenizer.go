package ports

import (
	"time"

	"github.com/citizenchain/citizenauth/core"
)

// Tokenizer converts between sessions and bearer tokens
type Tokenizer interface {
	SessionToAccessToken(session core.LoginSession, ttl time.Duration) (string, error)
	AccessTokenToSession(token string) (core.LoginSession, error)
}
