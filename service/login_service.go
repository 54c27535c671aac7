package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
)

// LoginService runs the challenge-response login state machine
type LoginService struct {
	protocol core.Protocol
	registry ports.Registry
	verifier ports.SignatureVerifier
	sessions *SessionHolder
	issuer   *ChallengeIssuer

	replay    ports.ReplayStore
	replayTTL time.Duration
	events    ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	mu        sync.Mutex
	challenge *core.LoginChallenge
	state     core.LoginState
}

// Option configures a LoginService
type Option func(*LoginService)

// WithReplayStore sets the store of consumed request ids and how long they are kept
func WithReplayStore(store ports.ReplayStore, ttl time.Duration) Option {
	return func(s *LoginService) {
		s.replay = store
		s.replayTTL = ttl
	}
}

// WithEventPublisher publishes login and logout events
func WithEventPublisher(pub ports.EventPublisher) Option {
	return func(s *LoginService) {
		s.events = pub
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *LoginService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *LoginService) {
		s.now = now
		s.issuer.now = now
	}
}

// WithRandom replaces the source of nonces and request ids
func WithRandom(r io.Reader) Option {
	return func(s *LoginService) {
		s.issuer.random = r
	}
}

// NewLoginService creates a login service for protocol
func NewLoginService(
	protocol core.Protocol,
	registry ports.Registry,
	verifier ports.SignatureVerifier,
	sessions *SessionHolder,
	opts ...Option,
) (*LoginService, error) {
	if err := protocol.Validate(); err != nil {
		return nil, err
	}

	s := &LoginService{
		protocol:  protocol,
		registry:  registry,
		verifier:  verifier,
		sessions:  sessions,
		issuer:    NewChallengeIssuer(protocol),
		replayTTL: 24 * time.Hour,
		logger:    slog.Default(),
		now:       time.Now,
		state:     core.StateNoChallenge,
	}
	for _, opt := range opts {
		opt(s)
	}

	if protocol.AntiReplay && s.replay == nil {
		return nil, fmt.Errorf("protocol %s requires a replay store", protocol.Variant)
	}

	s.logger = s.logger.With("component", "login", "protocol", string(protocol.Variant))
	return s, nil
}

// Protocol returns the protocol profile the service runs
func (s *LoginService) Protocol() core.Protocol {
	return s.protocol
}

// Sessions returns the session holder the service writes to
func (s *LoginService) Sessions() *SessionHolder {
	return s.sessions
}

// State returns the current state of the login state machine
func (s *LoginService) State() core.LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentChallenge returns the challenge awaiting a receipt, if any
func (s *LoginService) CurrentChallenge() (core.LoginChallenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.challenge == nil {
		return core.LoginChallenge{}, false
	}
	return *s.challenge, true
}

// BindingFor resolves address to the registered identity a challenge can be bound to
func (s *LoginService) BindingFor(address string) (*core.ChallengeBinding, error) {
	item, err := s.registry.ResolveByAddress(address)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownSigner, address)
	}

	return &core.ChallengeBinding{
		Role:     item.Role,
		Address:  item.AdminAddress,
		Province: item.Province,
	}, nil
}

// IssueChallenge creates a new challenge, replacing any previous one
func (s *LoginService) IssueChallenge(ctx context.Context, binding *core.ChallengeBinding) (core.LoginChallenge, error) {
	challenge, err := s.issuer.Issue(binding)
	if err != nil {
		return core.LoginChallenge{}, err
	}

	s.mu.Lock()
	s.challenge = &challenge
	s.state = core.StateChallengeIssued
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "challenge issued",
		"request_id", challenge.RequestID,
		"expires_at", challenge.ExpiresAt,
		"bound", challenge.Binding != nil,
	)
	return challenge, nil
}

// Message renders the signing message of challenge under the service's protocol
func (s *LoginService) Message(challenge core.LoginChallenge) string {
	return RenderChallengeMessage(s.protocol, challenge)
}

// Login verifies rawPayload against the current challenge and, on success,
// stores and returns the new session
func (s *LoginService) Login(ctx context.Context, rawPayload string) (core.LoginSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.verify(ctx, rawPayload)
	if err != nil {
		s.state = core.StateRejected
		if reason, ok := core.ReasonOf(err); ok {
			s.logger.WarnContext(ctx, "login rejected", "reason", string(reason), "error", err)
			s.publish(ctx, "login rejected", func(pub ports.EventPublisher) error {
				return pub.PublishLoginRejected(ctx, reason)
			})
		} else {
			s.logger.ErrorContext(ctx, "login failed", "error", err)
		}
		return core.LoginSession{}, err
	}

	s.challenge = nil
	s.state = core.StateAccepted
	s.sessions.set(session)

	s.logger.InfoContext(ctx, "login accepted",
		"role", string(session.Role),
		"public_key", session.PublicKey,
		"organization", session.OrganizationName,
	)
	s.publish(ctx, "login", func(pub ports.EventPublisher) error {
		return pub.PublishLogin(ctx, session)
	})
	return session, nil
}

// verify runs the ordered checks of a login attempt. It must be called with mu held.
func (s *LoginService) verify(ctx context.Context, rawPayload string) (core.LoginSession, error) {
	challenge := s.challenge
	if challenge == nil {
		return core.LoginSession{}, core.NewLoginError(core.ReasonNoChallenge, nil)
	}

	if challenge.Expired(s.now()) {
		s.challenge = nil
		return core.LoginSession{}, core.NewLoginError(core.ReasonChallengeExpired, nil)
	}

	payload, err := parseReceipt(s.protocol, rawPayload)
	if err != nil {
		s.logger.DebugContext(ctx, "receipt rejected by parser", "cause", err)
		return core.LoginSession{}, core.NewLoginError(core.ReasonPayloadFormat, nil)
	}

	if s.protocol.AntiReplay {
		consumed, err := s.replay.IsConsumed(ctx, payload.RequestID)
		if err != nil {
			return core.LoginSession{}, fmt.Errorf("check consumed request ids: %w", err)
		}
		if consumed {
			return core.LoginSession{}, core.NewLoginError(core.ReasonReplay, nil)
		}
	}

	if s.protocol.RequestIDs && payload.RequestID != challenge.RequestID {
		return core.LoginSession{}, core.NewLoginError(core.ReasonRequestMismatch, nil)
	}

	signer, err := core.NormalizeAddress(payload.Signer)
	if err != nil {
		return core.LoginSession{}, core.NewLoginError(core.ReasonUnknownSigner, err)
	}
	session, err := s.resolveSession(signer)
	if err != nil {
		return core.LoginSession{}, err
	}

	if challenge.Binding != nil && signer != challenge.Binding.Address {
		return core.LoginSession{}, core.NewLoginError(core.ReasonSignerMismatch, nil)
	}

	if payload.Nonce != challenge.Nonce {
		return core.LoginSession{}, core.NewLoginError(core.ReasonNonceMismatch, nil)
	}

	message := RenderChallengeMessage(s.protocol, *challenge)
	verified, err := s.verifier.Verify(ctx, message, payload.Signature, signer, payload.Scheme)
	if err != nil {
		return core.LoginSession{}, core.NewLoginError(core.ReasonVerifierUnavailable, err)
	}
	if !verified {
		s.challenge = nil
		return core.LoginSession{}, core.NewLoginError(core.ReasonSignatureInvalid, nil)
	}

	if s.protocol.AntiReplay {
		if err := s.replay.MarkConsumed(ctx, payload.RequestID, s.replayTTL); err != nil {
			return core.LoginSession{}, fmt.Errorf("record consumed request id: %w", err)
		}
	}

	session.ID = uuid.New().String()
	session.IssuedAt = s.now()
	return session, nil
}

// resolveSession maps a canonical signer address to a session template,
// applying the unknown-signer policy
func (s *LoginService) resolveSession(signer string) (core.LoginSession, error) {
	item, err := s.registry.ResolveByAddress(signer)
	if err != nil {
		return core.LoginSession{}, core.NewLoginError(core.ReasonUnknownSigner, err)
	}

	if item != nil {
		return core.LoginSession{
			Role:             item.Role,
			PublicKey:        item.AdminAddress,
			Province:         item.Province,
			OrganizationName: item.OrganizationName,
		}, nil
	}

	if s.protocol.UnknownSigner == core.PolicyFallback {
		return core.LoginSession{
			Role:             core.RoleFullAdmin,
			PublicKey:        signer,
			OrganizationName: s.protocol.FallbackOrganization,
		}, nil
	}
	return core.LoginSession{}, core.NewLoginError(core.ReasonUnknownSigner, nil)
}

// Logout clears the active session
func (s *LoginService) Logout(ctx context.Context) error {
	session, ok := s.sessions.clear()
	if !ok {
		return core.ErrNoSession
	}

	s.logger.InfoContext(ctx, "logged out", "session_id", session.ID, "public_key", session.PublicKey)
	s.publish(ctx, "logout", func(pub ports.EventPublisher) error {
		return pub.PublishLogout(ctx, session)
	})
	return nil
}

// publish sends an event if a publisher is configured. Failures are logged
// and never fail the calling operation.
func (s *LoginService) publish(ctx context.Context, what string, fn func(ports.EventPublisher) error) {
	if s.events == nil {
		return
	}
	if err := fn(s.events); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "failed to publish event", "event", what, "error", err)
	}
}
