package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citizenchain/citizenauth/core"
)

func validReceipt() map[string]any {
	return map[string]any{
		"proto":      "WUMINAPP_LOGIN_V1",
		"version":    1,
		"request_id": "req-1",
		"pubkey":     "0x9aa1e0672efcf2e186a6237da9fa706279e2c1d785212c48334bde7cae400215",
		"sig_alg":    "sr25519",
		"nonce":      "nonce-1",
		"signature":  "0xdeadbeef",
		"signed_at":  1_700_000_010,
	}
}

func encode(t *testing.T, m map[string]any) string {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func TestParseSignedPayload_Valid(t *testing.T) {
	p := protocolFor(t, core.VariantWuminapp)

	got, ok := ParseSignedPayload(p, "  \n"+encode(t, validReceipt())+"\t")
	require.True(t, ok)
	assert.Equal(t, core.SignedLoginPayload{
		Tag:       "WUMINAPP_LOGIN_V1",
		Version:   1,
		RequestID: "req-1",
		Signer:    "0x9aa1e0672efcf2e186a6237da9fa706279e2c1d785212c48334bde7cae400215",
		Scheme:    core.SchemeSr25519,
		Nonce:     "nonce-1",
		Signature: "0xdeadbeef",
		SignedAt:  time.Unix(1_700_000_010, 0),
	}, got)
}

func TestParseSignedPayload_TrimsFields(t *testing.T) {
	m := validReceipt()
	m["signature"] = "  0xdeadbeef "
	m["pubkey"] = " 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY "

	got, ok := ParseSignedPayload(protocolFor(t, core.VariantWuminapp), encode(t, m))
	require.True(t, ok)
	assert.Equal(t, "0xdeadbeef", got.Signature)
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", got.Signer)
}

func TestParseSignedPayload_Absent(t *testing.T) {
	p := protocolFor(t, core.VariantWuminapp)

	with := func(key string, value any) string {
		m := validReceipt()
		m[key] = value
		return encode(t, m)
	}
	without := func(key string) string {
		m := validReceipt()
		delete(m, key)
		return encode(t, m)
	}

	tests := map[string]string{
		"empty":              "",
		"whitespace":         "   \n",
		"invalid json":       "{not json",
		"json array":         "[]",
		"wrong proto":        with("proto", "fcrc.login.v1"),
		"wrong version":      with("version", 2),
		"missing version":    without("version"),
		"unknown sig_alg":    with("sig_alg", "ecdsa"),
		"missing sig_alg":    without("sig_alg"),
		"missing pubkey":     without("pubkey"),
		"blank pubkey":       with("pubkey", "  "),
		"missing nonce":      without("nonce"),
		"missing signature":  without("signature"),
		"missing request_id": without("request_id"),
		"missing signed_at":  without("signed_at"),
		"pubkey not string":  with("pubkey", 42),
		"version as string":  with("version", "1"),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := ParseSignedPayload(p, raw)
			assert.False(t, ok)
		})
	}
}

func TestParseSignedPayload_RequestIDOptionalWithoutRequestIDs(t *testing.T) {
	p := protocolFor(t, core.VariantCitizenNode)
	m := validReceipt()
	m["proto"] = p.Tag
	delete(m, "request_id")

	got, ok := ParseSignedPayload(p, encode(t, m))
	require.True(t, ok)
	assert.Empty(t, got.RequestID)
	assert.Equal(t, "nonce-1", got.Nonce)
}
