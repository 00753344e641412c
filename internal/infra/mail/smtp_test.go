package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shipway/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMailer(t *testing.T, smtpCfg *config.SMTPConfig) *smtpMailer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mailer := NewSMTPMailer(Params{
		Config: &config.Config{SMTP: smtpCfg},
		Logger: logger,
	})

	concrete, ok := mailer.(*smtpMailer)
	require.True(t, ok)

	return concrete
}

func TestNewSMTPMailer_KeepsConfiguredEndpoint(t *testing.T) {
	mailer := createTestMailer(t, &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "465",
		Username: "notify@example.com",
		Password: "secret",
		FromName: "Shipway",
	})

	assert.Equal(t, "smtp.example.com", mailer.host)
	assert.Equal(t, "465", mailer.port)
	assert.Equal(t, "notify@example.com", mailer.username)
}

func TestNewSMTPMailer_NilSectionStillConstructs(t *testing.T) {
	mailer := createTestMailer(t, nil)

	err := mailer.Send(context.Background(), "shopper@example.com", "Subject", "<p>hello</p>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailer is not configured")
}
