package notifiers

import (
	"context"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/rs/zerolog"
)

// LogNotifier is a mock notifier that implements the Notifier interface.
// It simply logs the message details instead of sending them through SMTP.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new instance of LogNotifier.
func NewLogNotifier(logger *zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("component", "log_notifier").Logger(),
	}
}

// Send implements the Notifier interface.
func (n *LogNotifier) Send(_ context.Context, msg *model.Message) error {
	n.logger.Info().
		Stringer("message_id", msg.ID).
		Str("kind", string(msg.Kind)).
		Str("recipient", msg.To).
		Str("subject", msg.Subject).
		Msg(">>> MOCK SEND: email dispatched")

	return nil
}

// Verify always succeeds; there is nothing to connect to.
func (n *LogNotifier) Verify(context.Context) error {
	return nil
}
