package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
)

const (
	TopicLogin         = "citizenauth.login"
	TopicLoginRejected = "citizenauth.login_rejected"
	TopicLogout        = "citizenauth.logout"
)

// SessionEvent is published when a session is created or cleared
type SessionEvent struct {
	SessionID        string    `json:"session_id"`
	Role             core.Role `json:"role"`
	PublicKey        string    `json:"public_key"`
	Province         string    `json:"province,omitempty"`
	OrganizationName string    `json:"organization_name"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// RejectedEvent is published when a login attempt is refused
type RejectedEvent struct {
	Reason     core.Reason `json:"reason"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
	now       func() time.Time
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) *WatermillPublisher {
	return &WatermillPublisher{
		publisher: publisher,
		now:       time.Now,
	}
}

var _ ports.EventPublisher = (*WatermillPublisher)(nil)

// PublishLogin publishes a login event
func (p *WatermillPublisher) PublishLogin(ctx context.Context, session core.LoginSession) error {
	return p.publish(ctx, TopicLogin, p.sessionEvent(session))
}

// PublishLoginRejected publishes a rejected login event
func (p *WatermillPublisher) PublishLoginRejected(ctx context.Context, reason core.Reason) error {
	return p.publish(ctx, TopicLoginRejected, RejectedEvent{
		Reason:     reason,
		OccurredAt: p.now().UTC(),
	})
}

// PublishLogout publishes a logout event
func (p *WatermillPublisher) PublishLogout(ctx context.Context, session core.LoginSession) error {
	return p.publish(ctx, TopicLogout, p.sessionEvent(session))
}

func (p *WatermillPublisher) sessionEvent(session core.LoginSession) SessionEvent {
	return SessionEvent{
		SessionID:        session.ID,
		Role:             session.Role,
		PublicKey:        session.PublicKey,
		Province:         session.Province,
		OrganizationName: session.OrganizationName,
		OccurredAt:       p.now().UTC(),
	}
}

func (p *WatermillPublisher) publish(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}

	return nil
}
