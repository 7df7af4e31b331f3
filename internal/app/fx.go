package app

import (
	"context"
	"errors"
	"github.com/iotiq/account-deletion/internal/config"
	deliveryHTTP "github.com/iotiq/account-deletion/internal/delivery/http"
	"github.com/iotiq/account-deletion/internal/logger"
	"github.com/iotiq/account-deletion/internal/metrics"
	"github.com/iotiq/account-deletion/internal/notifiers"
	"github.com/iotiq/account-deletion/internal/service"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"net/http"
	"time"
)

// verifyTimeout bounds the startup transport check.
const verifyTimeout = 30 * time.Second

// CoreModule provides the configuration, logging, transport and dispatcher.
var CoreModule = fx.Options(
	fx.Provide(
		config.NewConfig,
		logger.NewLogger,
		metrics.New,

		// The single long-lived transport shared by all requests.
		notifiers.NewTransport,

		service.NewDispatcher,
	),
	fx.Invoke(reportEnvironment, verifyTransport),
)

// APIModule defines the Fx module for the HTTP API application.
var APIModule = fx.Options(
	CoreModule,
	fx.Provide(
		deliveryHTTP.NewHandlers,
		deliveryHTTP.NewServer,
	),

	fx.Invoke(func(server *deliveryHTTP.Server, lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *zerolog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					logger.Info().Str("addr", server.Addr).Msg("server running")
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error().Err(err).Msg("http server stopped unexpectedly")
						_ = shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	}),
)

// reportEnvironment logs which email settings are present, never their values.
func reportEnvironment(cfg *config.Config, logger *zerolog.Logger) {
	email := cfg.Notifiers.Email
	event := logger.Info()
	for _, name := range []string{"EMAIL_SERVICE", "EMAIL_USER", "EMAIL_PASS", "ADMIN_EMAIL"} {
		state := "Missing"
		if email.Presence()[name] {
			state = "Set"
		}
		event = event.Str(name, state)
	}
	event.Msg("environment check")

	if !email.Operative() {
		logger.Warn().Strs("missing", email.Missing()).Msg("email sending disabled until configuration is complete")
	}
}

// verifyTransport pings the mail server in the background once the app starts.
// The result is logged only; a failed check never blocks requests.
func verifyTransport(transport notifiers.Notifier, lc fx.Lifecycle, logger *zerolog.Logger) {
	verifier, ok := transport.(notifiers.Verifier)
	if !ok {
		return
	}
	log := logger.With().Str("component", "transport_verify").Logger()

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
				defer cancel()
				if err := verifier.Verify(ctx); err != nil {
					log.Warn().Err(err).Msg("email configuration error")
					return
				}
				log.Info().Msg("email server is ready to send messages")
			}()
			return nil
		},
	})
}
