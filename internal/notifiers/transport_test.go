package notifiers

import (
	"context"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestResolveServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.EmailConfig
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"gmail", config.EmailConfig{Service: "gmail"}, "smtp.gmail.com", 465, false},
		{"case and spaces", config.EmailConfig{Service: "Outlook 365"}, "smtp.office365.com", 587, false},
		{"service with port override", config.EmailConfig{Service: "sendgrid", Port: 2525}, "smtp.sendgrid.net", 2525, false},
		{"explicit host", config.EmailConfig{Service: "whatever", Host: "mail.internal"}, "mail.internal", 587, false},
		{"explicit host and port", config.EmailConfig{Host: "mail.internal", Port: 25}, "mail.internal", 25, false},
		{"unknown service", config.EmailConfig{Service: "carrier-pigeon"}, "", 0, true},
		{"nothing", config.EmailConfig{}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := ResolveServer(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestNewTransport(t *testing.T) {
	log := zerolog.Nop()

	t.Run("smtp", func(t *testing.T) {
		cfg := &config.Config{Notifiers: config.NotifiersConfig{
			Mode:  "production",
			Email: config.EmailConfig{Service: "gmail", User: "u", Pass: "p", AdminEmail: "a@b.c"},
		}}
		n := NewTransport(cfg, &log)
		assert.IsType(t, &EmailNotifier{}, n)
		assert.NoError(t, Unavailable(n))
	})

	t.Run("log only", func(t *testing.T) {
		cfg := &config.Config{Notifiers: config.NotifiersConfig{Mode: ModeLogOnly}}
		n := NewTransport(cfg, &log)
		assert.IsType(t, &LogNotifier{}, n)
		assert.NoError(t, n.Send(context.Background(), model.NewUserConfirmation("bot@example.com", "alice@example.com")))
	})

	t.Run("unknown service", func(t *testing.T) {
		cfg := &config.Config{Notifiers: config.NotifiersConfig{
			Mode:  "production",
			Email: config.EmailConfig{Service: "carrier-pigeon"},
		}}
		n := NewTransport(cfg, &log)
		assert.IsType(t, &UnavailableNotifier{}, n)
		assert.ErrorIs(t, Unavailable(n), model.ErrTransportUnavailable)

		err := n.Send(context.Background(), model.NewUserConfirmation("bot@example.com", "alice@example.com"))
		assert.ErrorIs(t, err, model.ErrTransportUnavailable)
	})
}

func TestUnavailable_Nil(t *testing.T) {
	assert.ErrorIs(t, Unavailable(nil), model.ErrTransportUnavailable)
}
