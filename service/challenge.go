package service

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/citizenchain/citizenauth/core"
)

const (
	nonceBytes     = 32
	requestIDBytes = 16

	challengeType = "login_challenge"
)

// ChallengeIssuer creates login challenges for one protocol profile
type ChallengeIssuer struct {
	protocol core.Protocol
	now      func() time.Time
	random   io.Reader
}

// NewChallengeIssuer creates an issuer using the system clock and crypto/rand
func NewChallengeIssuer(protocol core.Protocol) *ChallengeIssuer {
	return &ChallengeIssuer{
		protocol: protocol,
		now:      time.Now,
		random:   rand.Reader,
	}
}

// Issue generates a new challenge, optionally bound to an identity
func (i *ChallengeIssuer) Issue(binding *core.ChallengeBinding) (core.LoginChallenge, error) {
	nonce, err := randomHex(i.random, nonceBytes)
	if err != nil {
		return core.LoginChallenge{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	var requestID string
	if i.protocol.RequestIDs {
		requestID, err = randomHex(i.random, requestIDBytes)
		if err != nil {
			return core.LoginChallenge{}, fmt.Errorf("failed to generate request id: %w", err)
		}
	}

	// Second precision keeps the challenge equal to what its message carries.
	now := i.now().Truncate(time.Second)
	challenge := core.LoginChallenge{
		RequestID: requestID,
		Nonce:     nonce,
		IssuedAt:  now,
		ExpiresAt: now.Add(i.protocol.TTL),
	}

	if binding != nil {
		address, err := core.NormalizeAddress(binding.Address)
		if err != nil {
			return core.LoginChallenge{}, fmt.Errorf("invalid binding address: %w", err)
		}
		b := *binding
		b.Address = address
		challenge.Binding = &b
	}

	return challenge, nil
}

// challengeMessage fixes the field order of the signed challenge message
type challengeMessage struct {
	Proto     string `json:"proto"`
	Type      string `json:"type"`
	Version   int    `json:"version"`
	RequestID string `json:"request_id,omitempty"`
	Nonce     string `json:"nonce"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
	Role      string `json:"role,omitempty"`
	Address   string `json:"address,omitempty"`
	Province  string `json:"province,omitempty"`
}

// RenderChallengeMessage returns the exact string external signers sign and
// the QR code carries. The same challenge always renders identically.
func RenderChallengeMessage(protocol core.Protocol, challenge core.LoginChallenge) string {
	msg := challengeMessage{
		Proto:     protocol.Tag,
		Type:      challengeType,
		Version:   protocol.Version,
		RequestID: challenge.RequestID,
		Nonce:     challenge.Nonce,
		IssuedAt:  challenge.IssuedAt.Unix(),
		ExpiresAt: challenge.ExpiresAt.Unix(),
	}
	if b := challenge.Binding; b != nil {
		msg.Role = string(b.Role)
		msg.Address = b.Address
		msg.Province = b.Province
	}

	// Marshalling a struct of strings and integers cannot fail.
	out, _ := json.Marshal(msg)
	return string(out)
}

func randomHex(r io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
