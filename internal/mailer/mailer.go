// Package mailer delivers reminder and admin mail over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
)

// adminSubject is fixed for all admin notifications so the admin can
// filter them.
const adminSubject = "Admin-bot-log-condition-email"

type smtpMailer struct {
	config contract.EmailConfigProvider
}

func New(config contract.EmailConfigProvider) contract.Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendReminder(ctx context.Context, to, subject, body string) error {
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) SendAdmin(ctx context.Context, body string) error {
	cfg := m.config()
	if cfg.AdminEmail == "" {
		return fmt.Errorf("%w: admin email is not configured", domain.ErrTransportFailure)
	}
	return m.send(ctx, cfg.AdminEmail, adminSubject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	cfg := m.config()

	msg := mail.NewMsg()
	if err := msg.From(cfg.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(cfg.SMTPServer,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SenderEmail),
		mail.WithPassword(cfg.SenderPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps an SMTP failure onto the domain sentinels so callers
// can tell a bad credential from a flaky network. Server replies carry
// an SMTP status code as a *textproto.Error when the error chain
// preserves it; the text match is a fallback for flattened errors.
func classify(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return fmt.Errorf("%w: %v", domain.ErrAuthFailure, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "535") || strings.Contains(msg, "authentication") || strings.Contains(msg, "auth failed") {
		return fmt.Errorf("%w: %v", domain.ErrAuthFailure, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
}
