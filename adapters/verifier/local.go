package verifier

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
)

// SigningContext is the sr25519 signing context used by substrate wallets
const SigningContext = "substrate"

const signatureSize = 64

var bareHex = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)

// Local verifies sr25519 and ed25519 signatures in process
type Local struct{}

// NewLocal creates an in-process verifier
func NewLocal() *Local {
	return &Local{}
}

var _ ports.SignatureVerifier = (*Local)(nil)

// Verify checks signature over message. Malformed keys or signatures fail the
// check rather than returning an error.
func (v *Local) Verify(_ context.Context, message, signature, publicKey string, scheme core.Scheme) (bool, error) {
	pub, err := core.PublicKeyBytes(publicKey)
	if err != nil {
		return false, nil
	}
	sig, ok := DecodeSignature(signature)
	if !ok {
		return false, nil
	}

	switch scheme {
	case core.SchemeEd25519:
		return ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig), nil
	case core.SchemeSr25519:
		return verifySr25519(pub, sig, []byte(message)), nil
	default:
		return false, fmt.Errorf("%w: %q", core.ErrUnsupportedScheme, scheme)
	}
}

func verifySr25519(pub, sig, message []byte) bool {
	var pubArr [core.PublicKeySize]byte
	var sigArr [signatureSize]byte
	copy(pubArr[:], pub)
	copy(sigArr[:], sig)

	pk := &schnorrkel.PublicKey{}
	if err := pk.Decode(pubArr); err != nil {
		return false
	}
	s := &schnorrkel.Signature{}
	if err := s.Decode(sigArr); err != nil {
		return false
	}

	ok, err := pk.Verify(s, schnorrkel.NewSigningContext([]byte(SigningContext), message))
	return err == nil && ok
}

// DecodeSignature accepts 0x-prefixed hex, bare hex or standard base64 and
// returns the 64-byte signature. A 65-byte input carries a leading type byte
// which is dropped.
func DecodeSignature(raw string) ([]byte, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var (
		sig []byte
		err error
	)
	switch {
	case strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X"):
		sig, err = hexutil.Decode(raw)
	case bareHex.MatchString(raw):
		sig, err = hexutil.Decode("0x" + raw)
	default:
		sig, err = base64.StdEncoding.DecodeString(raw)
	}
	if err != nil {
		return nil, false
	}

	if len(sig) == signatureSize+1 {
		sig = sig[1:]
	}
	if len(sig) != signatureSize {
		return nil, false
	}
	return sig, true
}
