package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/citizenchain/citizenauth/core"
)

// receipt is the wire form of a signed login receipt
type receipt struct {
	Proto     string `json:"proto"`
	Version   int    `json:"version"`
	RequestID string `json:"request_id"`
	Pubkey    string `json:"pubkey"`
	SigAlg    string `json:"sig_alg"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
	SignedAt  int64  `json:"signed_at"`
}

// ParseSignedPayload parses a receipt for protocol. Any structural problem
// yields ok == false; the reason is deliberately not reported to callers.
func ParseSignedPayload(protocol core.Protocol, raw string) (core.SignedLoginPayload, bool) {
	payload, err := parseReceipt(protocol, raw)
	return payload, err == nil
}

// parseReceipt is ParseSignedPayload with the failing check kept for logs
func parseReceipt(protocol core.Protocol, raw string) (core.SignedLoginPayload, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return core.SignedLoginPayload{}, errors.New("empty payload")
	}

	var r receipt
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return core.SignedLoginPayload{}, fmt.Errorf("decode: %w", err)
	}

	if r.Proto != protocol.Tag {
		return core.SignedLoginPayload{}, fmt.Errorf("proto %q does not match %q", r.Proto, protocol.Tag)
	}
	if r.Version != protocol.Version {
		return core.SignedLoginPayload{}, fmt.Errorf("version %d does not match %d", r.Version, protocol.Version)
	}

	scheme := core.Scheme(r.SigAlg)
	if !scheme.Valid() {
		return core.SignedLoginPayload{}, fmt.Errorf("sig_alg %q is not supported", r.SigAlg)
	}

	required := map[string]string{
		"pubkey":    r.Pubkey,
		"nonce":     r.Nonce,
		"signature": r.Signature,
	}
	if protocol.RequestIDs {
		required["request_id"] = r.RequestID
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return core.SignedLoginPayload{}, fmt.Errorf("%s is empty", field)
		}
	}
	if r.SignedAt <= 0 {
		return core.SignedLoginPayload{}, errors.New("signed_at is missing")
	}

	return core.SignedLoginPayload{
		Tag:       r.Proto,
		Version:   r.Version,
		RequestID: strings.TrimSpace(r.RequestID),
		Signer:    strings.TrimSpace(r.Pubkey),
		Scheme:    scheme,
		Nonce:     strings.TrimSpace(r.Nonce),
		Signature: strings.TrimSpace(r.Signature),
		SignedAt:  time.Unix(r.SignedAt, 0),
	}, nil
}
