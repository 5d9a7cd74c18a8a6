package contract

import (
	"context"

	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

// EmailConfigProvider hands the mailer a current snapshot of the SMTP
// settings. A fresh snapshot per send means a `set` command takes
// effect without restarting anything.
type EmailConfigProvider func() entity.EmailConfig

// Mailer sends the two outbound mail flows. Both share one SMTP
// account; retry policy belongs to the caller, not the mailer.
type Mailer interface {
	// SendReminder delivers a duty reminder to a member address.
	SendReminder(ctx context.Context, to, subject, body string) error

	// SendAdmin delivers an audit/error notice to the configured admin
	// address. Callers treat failures as best-effort and only log them.
	SendAdmin(ctx context.Context, body string) error
}
