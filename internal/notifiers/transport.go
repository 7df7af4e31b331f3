package notifiers

import (
	"context"
	"fmt"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/rs/zerolog"
)

// ModeLogOnly replaces SMTP delivery with the LogNotifier.
const ModeLogOnly = "log_only"

// UnavailableNotifier stands in for a transport that could not be constructed.
// Every call fails with model.ErrTransportUnavailable.
type UnavailableNotifier struct {
	reason error
}

// NewUnavailableNotifier creates a transport that refuses to send, remembering why.
func NewUnavailableNotifier(reason error) *UnavailableNotifier {
	return &UnavailableNotifier{reason: reason}
}

// Send implements the Notifier interface.
func (n *UnavailableNotifier) Send(context.Context, *model.Message) error {
	return n.Err()
}

// Verify reports the construction failure.
func (n *UnavailableNotifier) Verify(context.Context) error {
	return n.Err()
}

// Err returns the construction failure wrapped in model.ErrTransportUnavailable.
func (n *UnavailableNotifier) Err() error {
	return fmt.Errorf("%w: %v", model.ErrTransportUnavailable, n.reason)
}

// Unavailable returns a non-nil error when n cannot deliver anything.
func Unavailable(n Notifier) error {
	switch t := n.(type) {
	case nil:
		return model.ErrTransportUnavailable
	case *UnavailableNotifier:
		return t.Err()
	}
	return nil
}

// NewTransport builds the process-wide mail transport from configuration.
// It never fails: a transport that cannot be built is replaced by an UnavailableNotifier
// so the server still starts and the send endpoint reports the configuration error.
func NewTransport(cfg *config.Config, logger *zerolog.Logger) Notifier {
	log := logger.With().Str("component", "transport").Logger()
	log.Info().Str("mode", cfg.Notifiers.Mode).Msg("initializing mail transport")

	if cfg.Notifiers.Mode == ModeLogOnly {
		log.Warn().Msg("log_only mode: emails will be logged, not sent")
		return NewLogNotifier(logger)
	}

	host, port, err := ResolveServer(cfg.Notifiers.Email)
	if err != nil {
		log.Error().Err(err).Msg("email transport could not be constructed")
		return NewUnavailableNotifier(err)
	}

	log.Info().Str("host", host).Int("port", port).Msg("email notifier enabled")
	return NewEmailNotifier(cfg.Notifiers.Email, host, port, logger)
}
