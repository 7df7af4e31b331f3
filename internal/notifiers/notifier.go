package notifiers

import (
	"context"
	"github.com/iotiq/account-deletion/internal/domain/model"
)

// Notifier defines the interface for the outbound mail transport.
// Implementations must be safe for concurrent use: one instance serves every request.
type Notifier interface {
	// Send delivers a single message.
	Send(ctx context.Context, msg *model.Message) error
}

// Verifier is implemented by transports that can check their connection without sending.
type Verifier interface {
	Verify(ctx context.Context) error
}
