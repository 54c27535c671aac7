package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
)

// Remote delegates verification to an HTTP service
type Remote struct {
	url    string
	client *http.Client
}

type remoteRequest struct {
	Payload   string      `json:"payload"`
	Signature string      `json:"signature"`
	PublicKey string      `json:"public_key"`
	Crypto    core.Scheme `json:"crypto"`
}

type remoteResponse struct {
	Verified *bool `json:"verified"`
}

// NewRemote creates a verifier that posts to url
func NewRemote(url string, timeout time.Duration) *Remote {
	return &Remote{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

var _ ports.SignatureVerifier = (*Remote)(nil)

// Verify asks the remote service to check signature. Transport failures,
// non-2xx statuses and unreadable responses are returned as errors.
func (v *Remote) Verify(ctx context.Context, message, signature, publicKey string, scheme core.Scheme) (bool, error) {
	body, err := json.Marshal(remoteRequest{
		Payload:   message,
		Signature: signature,
		PublicKey: publicKey,
		Crypto:    scheme,
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("verify request failed: status %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode verify response: %w", err)
	}
	if out.Verified == nil {
		return false, fmt.Errorf("verify response has no verified field")
	}

	return *out.Verified, nil
}
