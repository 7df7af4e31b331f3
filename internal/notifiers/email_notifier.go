package notifiers

import (
	"context"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// EmailNotifier sends messages via SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewEmailNotifier creates a new instance of EmailNotifier for the resolved SMTP server.
func NewEmailNotifier(cfg config.EmailConfig, host string, port int, logger *zerolog.Logger) *EmailNotifier {
	d := gomail.NewDialer(host, port, cfg.User, cfg.Pass)
	return &EmailNotifier{
		dialer: d,
		logger: logger.With().Str("component", "email_notifier").Logger(),
	}
}

// Send implements the Notifier interface for email.
func (n *EmailNotifier) Send(ctx context.Context, msg *model.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	// Sending on the dialed connection keeps net/smtp errors unwrapped for Classify.
	if err := n.deliver(msg, m); err != nil {
		n.logger.Error().Err(err).Stringer("message_id", msg.ID).Str("kind", string(msg.Kind)).Msg("failed to send email")
		return err
	}

	n.logger.Info().Stringer("message_id", msg.ID).Str("kind", string(msg.Kind)).Msg("email sent successfully")
	return nil
}

// deliver opens a connection, sends the email, and closes it.
func (n *EmailNotifier) deliver(msg *model.Message, m *gomail.Message) error {
	s, err := n.dialer.Dial()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Send(msg.From, []string{msg.To}, m)
}

// Verify dials the SMTP server, authenticates, and hangs up.
func (n *EmailNotifier) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s, err := n.dialer.Dial()
	if err != nil {
		return err
	}
	return s.Close()
}
