package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
	"github.com/citizenchain/citizenauth/registry"
	"github.com/citizenchain/citizenauth/service"
)

// AuthHandlers contains HTTP handlers for auth endpoints
type AuthHandlers struct {
	loginService *service.LoginService
	tokenizer    ports.Tokenizer
	qr           ports.QRRenderer
	accessTTL    time.Duration
	logger       *slog.Logger
}

// NewAuthHandlers creates new auth handlers. qr may be nil to disable QR images.
func NewAuthHandlers(
	loginService *service.LoginService,
	tokenizer ports.Tokenizer,
	qr ports.QRRenderer,
	accessTTL time.Duration,
	logger *slog.Logger,
) *AuthHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandlers{
		loginService: loginService,
		tokenizer:    tokenizer,
		qr:           qr,
		accessTTL:    accessTTL,
		logger:       logger.With("component", "http"),
	}
}

type challengeResponse struct {
	RequestID string    `json:"request_id,omitempty"`
	Nonce     string    `json:"nonce"`
	IssuedAt  int64     `json:"issued_at"`
	ExpiresAt int64     `json:"expires_at"`
	Role      core.Role `json:"role,omitempty"`
	Address   string    `json:"address,omitempty"`
	Province  string    `json:"province,omitempty"`
	Message   string    `json:"message"`
	QRDataURL string    `json:"qr_data_url,omitempty"`
}

type sessionView struct {
	ID               string    `json:"id"`
	Role             core.Role `json:"role"`
	PublicKey        string    `json:"public_key"`
	Province         string    `json:"province,omitempty"`
	OrganizationName string    `json:"organization_name"`
	DisplayName      string    `json:"display_name"`
	IssuedAt         time.Time `json:"issued_at"`
}

func newSessionView(s core.LoginSession) sessionView {
	return sessionView{
		ID:               s.ID,
		Role:             s.Role,
		PublicKey:        s.PublicKey,
		Province:         s.Province,
		OrganizationName: s.OrganizationName,
		DisplayName:      registry.DisplayName(s.Role, s.OrganizationName),
		IssuedAt:         s.IssuedAt,
	}
}

// Challenge issues a new login challenge, bound to the requested address when
// the protocol binds identities
func (h *AuthHandlers) Challenge(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()

	var binding *core.ChallengeBinding
	if h.loginService.Protocol().BindIdentity {
		if req.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required"})
			return
		}

		var err error
		binding, err = h.loginService.BindingFor(req.Address)
		switch {
		case errors.Is(err, core.ErrInvalidAddressFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address format"})
			return
		case errors.Is(err, core.ErrUnknownSigner):
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "Address is not a registered organization admin",
				"reason": core.ReasonUnknownSigner,
			})
			return
		case err != nil:
			h.logger.ErrorContext(ctx, "failed to resolve binding", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
			return
		}
	}

	challenge, err := h.loginService.IssueChallenge(ctx, binding)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue challenge", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	resp := challengeResponse{
		RequestID: challenge.RequestID,
		Nonce:     challenge.Nonce,
		IssuedAt:  challenge.IssuedAt.Unix(),
		ExpiresAt: challenge.ExpiresAt.Unix(),
		Message:   h.loginService.Message(challenge),
	}
	if challenge.Binding != nil {
		resp.Role = challenge.Binding.Role
		resp.Address = challenge.Binding.Address
		resp.Province = challenge.Binding.Province
	}

	if h.qr != nil {
		img, err := h.qr.Render(ctx, resp.Message)
		if err != nil {
			h.logger.WarnContext(ctx, "qr rendering failed", "error", err)
		} else {
			resp.QRDataURL = img
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Login verifies a signed receipt and returns an access token for the new session
func (h *AuthHandlers) Login(c *gin.Context) {
	var req struct {
		Payload string `json:"payload" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()

	session, err := h.loginService.Login(ctx, req.Payload)
	if err != nil {
		reason, ok := core.ReasonOf(err)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}
		status, msg := reasonResponse(reason)
		c.JSON(status, gin.H{"error": msg, "reason": reason})
		return
	}

	accessToken, err := h.tokenizer.SessionToAccessToken(session, h.accessTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue access token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   int(h.accessTTL.Seconds()),
		"session":      newSessionView(session),
	})
}

// reasonResponse maps a rejection reason to its status code and message
func reasonResponse(reason core.Reason) (int, string) {
	switch reason {
	case core.ReasonNoChallenge:
		return http.StatusConflict, "No challenge has been issued"
	case core.ReasonChallengeExpired:
		return http.StatusGone, "Challenge expired, request a new one"
	case core.ReasonPayloadFormat:
		return http.StatusBadRequest, "Malformed signed payload"
	case core.ReasonReplay:
		return http.StatusConflict, "Request id has already been used"
	case core.ReasonRequestMismatch:
		return http.StatusUnprocessableEntity, "Request id does not match the challenge"
	case core.ReasonUnknownSigner:
		return http.StatusForbidden, "Signer is not a registered organization admin"
	case core.ReasonSignerMismatch:
		return http.StatusForbidden, "Signer does not match the challenged address"
	case core.ReasonNonceMismatch:
		return http.StatusUnprocessableEntity, "Nonce does not match the challenge"
	case core.ReasonVerifierUnavailable:
		return http.StatusServiceUnavailable, "Signature verifier is unavailable, try again"
	case core.ReasonSignatureInvalid:
		return http.StatusUnauthorized, "Invalid signature"
	}
	return http.StatusInternalServerError, "Authentication failed"
}

// Logout clears the active session
func (h *AuthHandlers) Logout(c *gin.Context) {
	err := h.loginService.Logout(c.Request.Context())
	if err != nil && !errors.Is(err, core.ErrNoSession) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// State reports the login state machine state
func (h *AuthHandlers) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.loginService.State()})
}

// Me returns the authenticated session
func (h *AuthHandlers) Me(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not found in context"})
		return
	}

	c.JSON(http.StatusOK, newSessionView(session))
}

// Dashboard returns the workspace header of a role-gated dashboard
func (h *AuthHandlers) Dashboard(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         session.Role,
		"display_name": registry.DisplayName(session.Role, session.OrganizationName),
		"province":     session.Province,
	})
}

// Health reports liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
