package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/registry"
)

const (
	nrcAdmin     = "0x9aa1e0672efcf2e186a6237da9fa706279e2c1d785212c48334bde7cae400215"
	gdPrcAdmin   = "0x9ef3f954efcadd7019c09d1648f9f00db94d31773281a764493a602107fab653"
	unregistered = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
)

type verifyCall struct {
	message, signature, publicKey string
	scheme                        core.Scheme
}

type stubVerifier struct {
	result bool
	err    error
	calls  []verifyCall
}

func (v *stubVerifier) Verify(_ context.Context, message, signature, publicKey string, scheme core.Scheme) (bool, error) {
	v.calls = append(v.calls, verifyCall{message, signature, publicKey, scheme})
	return v.result, v.err
}

type fakeReplayStore struct {
	mu       sync.Mutex
	consumed map[string]time.Duration
	err      error
}

func newFakeReplayStore() *fakeReplayStore {
	return &fakeReplayStore{consumed: map[string]time.Duration{}}
}

func (s *fakeReplayStore) MarkConsumed(_ context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.consumed[id] = ttl
	return nil
}

func (s *fakeReplayStore) IsConsumed(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.consumed[id]
	return ok, nil
}

type recordingPublisher struct {
	logins   []core.LoginSession
	rejected []core.Reason
	logouts  []core.LoginSession
	err      error
}

func (p *recordingPublisher) PublishLogin(_ context.Context, s core.LoginSession) error {
	p.logins = append(p.logins, s)
	return p.err
}

func (p *recordingPublisher) PublishLoginRejected(_ context.Context, r core.Reason) error {
	p.rejected = append(p.rejected, r)
	return p.err
}

func (p *recordingPublisher) PublishLogout(_ context.Context, s core.LoginSession) error {
	p.logouts = append(p.logouts, s)
	return p.err
}

type fixture struct {
	svc      *LoginService
	verifier *stubVerifier
	replay   *fakeReplayStore
	events   *recordingPublisher
	sessions *SessionHolder
	now      time.Time
}

func newFixture(t *testing.T, variant core.Variant) *fixture {
	t.Helper()

	f := &fixture{
		verifier: &stubVerifier{result: true},
		replay:   newFakeReplayStore(),
		events:   &recordingPublisher{},
		sessions: NewSessionHolder(),
		now:      time.Unix(1_700_000_000, 0),
	}

	svc, err := NewLoginService(
		protocolFor(t, variant),
		registry.Default(),
		f.verifier,
		f.sessions,
		WithReplayStore(f.replay, time.Hour),
		WithEventPublisher(f.events),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return f.now }),
	)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f *fixture) receipt(t *testing.T, c core.LoginChallenge, signer string, edit func(map[string]any)) string {
	t.Helper()
	p := f.svc.Protocol()
	m := map[string]any{
		"proto":      p.Tag,
		"version":    p.Version,
		"request_id": c.RequestID,
		"pubkey":     signer,
		"sig_alg":    "sr25519",
		"nonce":      c.Nonce,
		"signature":  "0x" + strings.Repeat("ab", 64),
		"signed_at":  c.IssuedAt.Unix() + 5,
	}
	if !p.RequestIDs {
		delete(m, "request_id")
	}
	if edit != nil {
		edit(m)
	}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func assertReason(t *testing.T, err error, want core.Reason) {
	t.Helper()
	require.Error(t, err)
	reason, ok := core.ReasonOf(err)
	require.True(t, ok, "error %v carries no reason", err)
	assert.Equal(t, want, reason)
}

func TestLogin_Accepted(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, core.StateChallengeIssued, f.svc.State())

	f.now = f.now.Add(10 * time.Second)
	session, err := f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	require.NoError(t, err)

	assert.Equal(t, core.RoleNationalReserveCommittee, session.Role)
	assert.Equal(t, "国家储备委员会", session.OrganizationName)
	assert.Equal(t, nrcAdmin, session.PublicKey)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, f.now, session.IssuedAt)

	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, session, current)

	assert.Equal(t, core.StateAccepted, f.svc.State())
	_, ok = f.svc.CurrentChallenge()
	assert.False(t, ok)

	require.Len(t, f.verifier.calls, 1)
	call := f.verifier.calls[0]
	assert.Equal(t, RenderChallengeMessage(f.svc.Protocol(), c), call.message)
	assert.Equal(t, nrcAdmin, call.publicKey)
	assert.Equal(t, core.SchemeSr25519, call.scheme)

	assert.Contains(t, f.replay.consumed, c.RequestID)
	assert.Equal(t, time.Hour, f.replay.consumed[c.RequestID])
	require.Len(t, f.events.logins, 1)
	assert.Equal(t, session, f.events.logins[0])
}

func TestLogin_SS58Signer(t *testing.T) {
	f := newFixture(t, core.VariantCitizenNode)
	ctx := context.Background()

	pub, err := core.PublicKeyBytes(gdPrcAdmin)
	require.NoError(t, err)
	ss58, err := core.EncodeSS58(pub, core.DefaultSS58Prefix)
	require.NoError(t, err)

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	session, err := f.svc.Login(ctx, f.receipt(t, c, ss58, nil))
	require.NoError(t, err)
	assert.Equal(t, core.RoleProvincialReserveCommittee, session.Role)
	assert.Equal(t, "广东", session.Province)
	assert.Equal(t, gdPrcAdmin, f.verifier.calls[0].publicKey)
}

func TestLogin_SignatureInvalid(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()
	f.verifier.result = false

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	assertReason(t, err, core.ReasonSignatureInvalid)
	assert.ErrorIs(t, err, core.ErrInvalidSignature)
	assert.NotErrorIs(t, err, core.ErrVerifierUnavailable)

	_, ok := f.sessions.Current()
	assert.False(t, ok)
	assert.Equal(t, core.StateRejected, f.svc.State())
	_, ok = f.svc.CurrentChallenge()
	assert.False(t, ok, "challenge is discarded after a bad signature")
	assert.Empty(t, f.replay.consumed)
	assert.Equal(t, []core.Reason{core.ReasonSignatureInvalid}, f.events.rejected)
}

func TestLogin_SignatureInvalidKeepsPriorSession(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	first, err := f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	require.NoError(t, err)

	f.verifier.result = false
	c, err = f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, f.receipt(t, c, gdPrcAdmin, nil))
	assertReason(t, err, core.ReasonSignatureInvalid)

	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, first, current)
}

func TestLogin_NonceMismatchSkipsVerifier(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, func(m map[string]any) {
		m["nonce"] = "another-nonce"
	}))
	assertReason(t, err, core.ReasonNonceMismatch)
	assert.Empty(t, f.verifier.calls)

	_, ok := f.svc.CurrentChallenge()
	assert.True(t, ok, "challenge survives a mismatched receipt")
}

func TestLogin_Expired(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	f.now = f.now.Add(61 * time.Second)
	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	assertReason(t, err, core.ReasonChallengeExpired)
	assert.Empty(t, f.verifier.calls)

	_, ok := f.svc.CurrentChallenge()
	assert.False(t, ok)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	assertReason(t, err, core.ReasonNoChallenge)
}

func TestLogin_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("at expiry is accepted", func(t *testing.T) {
		f := newFixture(t, core.VariantWuminapp)
		c, err := f.svc.IssueChallenge(ctx, nil)
		require.NoError(t, err)

		f.now = c.ExpiresAt
		_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
		assert.NoError(t, err)
	})

	t.Run("just after expiry is rejected", func(t *testing.T) {
		f := newFixture(t, core.VariantWuminapp)
		c, err := f.svc.IssueChallenge(ctx, nil)
		require.NoError(t, err)

		f.now = c.ExpiresAt.Add(time.Millisecond)
		_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
		assertReason(t, err, core.ReasonChallengeExpired)
	})
}

func TestLogin_Replay(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	receipt := f.receipt(t, c, nrcAdmin, nil)
	_, err = f.svc.Login(ctx, receipt)
	require.NoError(t, err)

	_, err = f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, receipt)
	assertReason(t, err, core.ReasonReplay)
	assert.Len(t, f.verifier.calls, 1)
}

func TestLogin_NoChallenge(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)

	_, err := f.svc.Login(context.Background(), "{}")
	assertReason(t, err, core.ReasonNoChallenge)
	assert.ErrorIs(t, err, core.ErrNoChallenge)
}

func TestLogin_PayloadFormat(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "not json")
	assertReason(t, err, core.ReasonPayloadFormat)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, func(m map[string]any) { m["sig_alg"] = "rsa" }))
	assertReason(t, err, core.ReasonPayloadFormat)
	assert.Empty(t, f.verifier.calls)
}

func TestLogin_RequestMismatch(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, func(m map[string]any) { m["request_id"] = "other" }))
	assertReason(t, err, core.ReasonRequestMismatch)
}

func TestLogin_NewChallengeReplacesOld(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	old, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	fresh, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	current, ok := f.svc.CurrentChallenge()
	require.True(t, ok)
	assert.Equal(t, fresh, current)

	_, err = f.svc.Login(ctx, f.receipt(t, old, nrcAdmin, nil))
	assertReason(t, err, core.ReasonRequestMismatch)
}

func TestLogin_UnknownSigner(t *testing.T) {
	f := newFixture(t, core.VariantCitizenNode)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, unregistered, nil))
	assertReason(t, err, core.ReasonUnknownSigner)

	_, err = f.svc.Login(ctx, f.receipt(t, c, "5Bogus", nil))
	assertReason(t, err, core.ReasonUnknownSigner)
	assert.ErrorIs(t, err, core.ErrInvalidAddressFormat)
	assert.Empty(t, f.verifier.calls)
}

func TestLogin_FallbackPolicy(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	session, err := f.svc.Login(ctx, f.receipt(t, c, "0x"+strings.ToUpper(unregistered[2:]), nil))
	require.NoError(t, err)
	assert.Equal(t, core.RoleFullAdmin, session.Role)
	assert.Equal(t, unregistered, session.PublicKey)
	assert.Equal(t, core.DefaultFallbackOrganization, session.OrganizationName)
	assert.Empty(t, session.Province)
}

func TestLogin_BoundChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("matching signer", func(t *testing.T) {
		f := newFixture(t, core.VariantFCRC)
		binding, err := f.svc.BindingFor(gdPrcAdmin)
		require.NoError(t, err)
		assert.Equal(t, core.RoleProvincialReserveCommittee, binding.Role)
		assert.Equal(t, "广东", binding.Province)

		c, err := f.svc.IssueChallenge(ctx, binding)
		require.NoError(t, err)

		session, err := f.svc.Login(ctx, f.receipt(t, c, gdPrcAdmin, nil))
		require.NoError(t, err)
		assert.Equal(t, gdPrcAdmin, session.PublicKey)
		assert.Contains(t, f.verifier.calls[0].message, `"address":"`+gdPrcAdmin+`"`)
	})

	t.Run("other registered signer", func(t *testing.T) {
		f := newFixture(t, core.VariantFCRC)
		binding, err := f.svc.BindingFor(gdPrcAdmin)
		require.NoError(t, err)
		c, err := f.svc.IssueChallenge(ctx, binding)
		require.NoError(t, err)

		_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
		assertReason(t, err, core.ReasonSignerMismatch)
		assert.Empty(t, f.verifier.calls)
	})

	t.Run("unknown binding address", func(t *testing.T) {
		f := newFixture(t, core.VariantFCRC)
		_, err := f.svc.BindingFor(unregistered)
		assert.ErrorIs(t, err, core.ErrUnknownSigner)

		_, err = f.svc.BindingFor("garbage")
		assert.ErrorIs(t, err, core.ErrInvalidAddressFormat)
	})
}

func TestLogin_VerifierUnavailable(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()
	cause := errors.New("connection refused")
	f.verifier.err = cause

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	assertReason(t, err, core.ReasonVerifierUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, core.ErrInvalidSignature)

	_, ok := f.svc.CurrentChallenge()
	assert.True(t, ok, "challenge is kept so the attempt can be retried")

	f.verifier.err = nil
	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	assert.NoError(t, err)
}

func TestLogin_ReplayStoreFailure(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	f.replay.err = errors.New("redis down")
	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	require.Error(t, err)
	_, ok := core.ReasonOf(err)
	assert.False(t, ok)

	_, ok = f.sessions.Current()
	assert.False(t, ok)
}

func TestLogin_PublisherFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()
	f.events.err = errors.New("broker down")

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	require.NoError(t, err)
	assert.NoError(t, f.svc.Logout(ctx))
}

func TestLogout(t *testing.T) {
	f := newFixture(t, core.VariantWuminapp)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Logout(ctx), core.ErrNoSession)

	c, err := f.svc.IssueChallenge(ctx, nil)
	require.NoError(t, err)
	session, err := f.svc.Login(ctx, f.receipt(t, c, nrcAdmin, nil))
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx))
	_, ok := f.sessions.Current()
	assert.False(t, ok)
	assert.Equal(t, []core.LoginSession{session}, f.events.logouts)
}

func TestNewLoginService_RequiresReplayStore(t *testing.T) {
	_, err := NewLoginService(protocolFor(t, core.VariantWuminapp), registry.Default(), &stubVerifier{}, NewSessionHolder())
	assert.Error(t, err)

	_, err = NewLoginService(protocolFor(t, core.VariantCitizenNode), registry.Default(), &stubVerifier{}, NewSessionHolder())
	assert.NoError(t, err)

	bad := protocolFor(t, core.VariantCitizenNode)
	bad.TTL = 0
	_, err = NewLoginService(bad, registry.Default(), &stubVerifier{}, NewSessionHolder())
	assert.Error(t, err)
}
