package ports

import (
	"context"

	"github.com/citizenchain/citizenauth/core"
)

// SignatureVerifier checks a signature over message for the given canonical
// public key. An error means the check could not be run at all; a failed
// check is reported as (false, nil).
type SignatureVerifier interface {
	Verify(ctx context.Context, message, signature, publicKey string, scheme core.Scheme) (bool, error)
}
