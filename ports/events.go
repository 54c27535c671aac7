package ports

import (
	"context"

	"github.com/citizenchain/citizenauth/core"
)

// EventPublisher publishes login lifecycle events to other components
type EventPublisher interface {
	PublishLogin(ctx context.Context, session core.LoginSession) error
	PublishLoginRejected(ctx context.Context, reason core.Reason) error
	PublishLogout(ctx context.Context, session core.LoginSession) error
}
