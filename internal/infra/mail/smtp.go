// Package mail sends notification emails over SMTP with implicit TLS.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"shipway/config"
	"shipway/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the SMTP mailer, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
	logger   *slog.Logger
}

// NewSMTPMailer creates a Mailer that delivers over implicit TLS, as used by
// port 465 providers. An unconfigured mailer is still returned; Send reports
// the missing configuration so signups degrade instead of failing hard.
func NewSMTPMailer(params Params) service.Mailer {
	cfg := params.Config.SMTP
	if cfg == nil {
		cfg = &config.SMTPConfig{}
	}

	return &smtpMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		fromName: cfg.FromName,
		logger:   params.Logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.username == "" || m.password == "" {
		return errors.New("mailer is not configured")
	}

	msg := []byte(
		fmt.Sprintf("From: %q <%s>\r\n", m.fromName, m.username) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			htmlBody,
	)

	addr := net.JoinHostPort(m.host, m.port)

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: m.host}}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "dial smtp server")
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return errors.Wrap(err, "smtp handshake")
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return errors.Wrap(err, "smtp auth")
	}

	if err := client.Mail(m.username); err != nil {
		return errors.Wrap(err, "smtp mail from")
	}

	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data")
	}

	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "write smtp message")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close smtp message")
	}

	m.logger.Info("notification email sent", slog.String("to", to))

	return nil
}
