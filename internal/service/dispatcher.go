package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/iotiq/account-deletion/internal/metrics"
	"github.com/iotiq/account-deletion/internal/notifiers"
	"github.com/rs/zerolog"
	"sync"
	"time"
)

// Dispatcher turns an account-deletion request into outbound notifications.
// It holds only immutable configuration and the shared transport, so one
// instance serves all in-flight requests.
type Dispatcher struct {
	email     config.EmailConfig
	transport notifiers.Notifier
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewDispatcher creates a new Dispatcher around the process-wide transport.
func NewDispatcher(
	cfg *config.Config,
	transport notifiers.Notifier,
	m *metrics.Metrics,
	logger *zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		email:     cfg.Notifiers.Email,
		transport: transport,
		metrics:   m,
		logger:    logger.With().Str("layer", "service").Logger(),
	}
}

// Dispatch notifies the administrator about the deletion request and, when the
// contact is an email address, confirms receipt to the requester.
// Both sends must succeed for Dispatch to succeed. Nothing is retried or deduplicated.
func (d *Dispatcher) Dispatch(ctx context.Context, contact string) (model.SendOutcome, error) {
	req := model.NewDeletionRequest(contact)
	if !req.Valid() {
		d.metrics.ObserveRequest(outcomeOf(model.ErrMissingContact))
		return model.SendOutcome{}, model.ErrMissingContact
	}

	if !d.email.Operative() {
		d.logger.Error().Strs("missing", d.email.Missing()).Msg("email service not configured, refusing to send")
		d.metrics.ObserveRequest(outcomeOf(model.ErrNotConfigured))
		return model.SendOutcome{}, model.ErrNotConfigured
	}
	if err := notifiers.Unavailable(d.transport); err != nil {
		d.logger.Error().Err(err).Msg("email transport unavailable, refusing to send")
		d.metrics.ObserveRequest(outcomeOf(err))
		return model.SendOutcome{}, err
	}

	kind := req.Kind()
	messages, err := d.buildMessages(req, kind)
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to build messages")
		d.metrics.ObserveRequest(outcomeOf(err))
		return model.SendOutcome{}, fmt.Errorf("build messages: %w", err)
	}

	d.logger.Info().Str("contact_kind", string(kind)).Int("emails", len(messages)).Msg("dispatching deletion request")

	if err := d.sendAll(ctx, messages); err != nil {
		d.logger.Error().Err(err).Str("contact_kind", string(kind)).Msg("deletion request dispatch failed")
		d.metrics.ObserveRequest(outcomeOf(err))
		return model.SendOutcome{}, err
	}

	d.metrics.ObserveRequest("sent")
	return model.SendOutcome{EmailCount: len(messages)}, nil
}

func (d *Dispatcher) buildMessages(req model.DeletionRequest, kind model.ContactKind) ([]*model.Message, error) {
	admin, err := model.NewAdminNotice(d.email.User, d.email.AdminEmail, req.Contact)
	if err != nil {
		return nil, err
	}
	messages := []*model.Message{admin}

	if kind == model.ContactEmail {
		messages = append(messages, model.NewUserConfirmation(d.email.User, req.Contact))
	}
	return messages, nil
}

// sendAll starts every send before waiting on any of them and then joins on all.
// Each send owns one error slot; the first failed slot, in message order, is reported.
func (d *Dispatcher) sendAll(ctx context.Context, messages []*model.Message) error {
	if len(messages) == 1 {
		return d.send(ctx, messages[0])
	}

	errs := make([]error, len(messages))
	var wg sync.WaitGroup
	wg.Add(len(messages))
	for i, msg := range messages {
		go func(i int, msg *model.Message) {
			defer wg.Done()
			errs[i] = d.send(ctx, msg)
		}(i, msg)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, msg *model.Message) error {
	start := time.Now()
	err := d.transport.Send(ctx, msg)
	d.metrics.ObserveSend(string(msg.Kind), time.Since(start), err)

	if err != nil {
		return &model.DispatchError{Kind: notifiers.Classify(err), Err: err}
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingContact):
		return "invalid"
	case errors.Is(err, model.ErrNotConfigured), errors.Is(err, model.ErrTransportUnavailable):
		return "not_configured"
	case errors.Is(err, model.ErrAuthFailed):
		return "auth_failed"
	case errors.Is(err, model.ErrConnectionFailed):
		return "connection_failed"
	default:
		return "failed"
	}
}
