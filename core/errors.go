package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAddressFormat = errors.New("invalid address format")
	ErrNoChallenge          = errors.New("no challenge has been issued")
	ErrChallengeExpired     = errors.New("challenge has expired")
	ErrPayloadFormat        = errors.New("malformed signed payload")
	ErrReplay               = errors.New("request id has already been used")
	ErrRequestMismatch      = errors.New("request id does not match the challenge")
	ErrUnknownSigner        = errors.New("signer is not a known organization admin")
	ErrSignerMismatch       = errors.New("signer does not match the challenged address")
	ErrNonceMismatch        = errors.New("nonce does not match the challenge")
	ErrVerifierUnavailable  = errors.New("signature verifier is unavailable")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrUnsupportedScheme    = errors.New("unsupported signature scheme")
	ErrUnknownProtocol      = errors.New("unknown protocol variant")
	ErrNoSession            = errors.New("no active session")
	ErrInvalidToken         = errors.New("invalid token")
	ErrForbidden            = errors.New("role is not allowed")
)

// Reason is a stable machine-readable code for a rejected login attempt
type Reason string

const (
	ReasonNoChallenge         Reason = "no_challenge"
	ReasonChallengeExpired    Reason = "challenge_expired"
	ReasonPayloadFormat       Reason = "payload_format"
	ReasonReplay              Reason = "replay"
	ReasonRequestMismatch     Reason = "request_mismatch"
	ReasonUnknownSigner       Reason = "unknown_signer"
	ReasonSignerMismatch      Reason = "signer_mismatch"
	ReasonNonceMismatch       Reason = "nonce_mismatch"
	ReasonVerifierUnavailable Reason = "verifier_unavailable"
	ReasonSignatureInvalid    Reason = "signature_invalid"
)

var reasonErrors = map[Reason]error{
	ReasonNoChallenge:         ErrNoChallenge,
	ReasonChallengeExpired:    ErrChallengeExpired,
	ReasonPayloadFormat:       ErrPayloadFormat,
	ReasonReplay:              ErrReplay,
	ReasonRequestMismatch:     ErrRequestMismatch,
	ReasonUnknownSigner:       ErrUnknownSigner,
	ReasonSignerMismatch:      ErrSignerMismatch,
	ReasonNonceMismatch:       ErrNonceMismatch,
	ReasonVerifierUnavailable: ErrVerifierUnavailable,
	ReasonSignatureInvalid:    ErrInvalidSignature,
}

// LoginError is returned for every rejected login attempt
type LoginError struct {
	Reason Reason
	Cause  error // underlying failure, may be nil
}

// NewLoginError builds a LoginError for reason with an optional cause
func NewLoginError(reason Reason, cause error) *LoginError {
	return &LoginError{Reason: reason, Cause: cause}
}

func (e *LoginError) Error() string {
	msg := reasonErrors[e.Reason].Error()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes both the reason sentinel and the cause to errors.Is
func (e *LoginError) Unwrap() []error {
	errs := []error{reasonErrors[e.Reason]}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// ReasonOf extracts the rejection reason from err, if it carries one
func ReasonOf(err error) (Reason, bool) {
	var le *LoginError
	if errors.As(err, &le) {
		return le.Reason, true
	}
	return "", false
}
