package service

import (
	"context"

	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
)

var _ contract.DutyService = (*rosterService)(nil)

// Instance wires the roster service to its two timer loops. The mailer
// is attached afterwards because it needs the live email config, which
// only the roster service can provide.
type Instance struct {
	Roster contract.DutyService

	svc      *rosterService
	reminder *reminderScheduler
	indexer  *indexScheduler
}

func NewInstance(store contract.DocumentStore, history contract.HistoryRepo) (*Instance, error) {
	svc, err := newRoster(store, history)
	if err != nil {
		return nil, err
	}

	reminder := newReminderScheduler(svc, history)
	indexer := newIndexScheduler(svc, history)
	svc.setSchedulers(reminder, indexer)

	return &Instance{
		Roster:   svc,
		svc:      svc,
		reminder: reminder,
		indexer:  indexer,
	}, nil
}

// SetMailer must be called before Start.
func (i *Instance) SetMailer(m contract.Mailer) {
	i.reminder.mailer = m
	i.indexer.mailer = m
}

// EmailConfig exposes the current SMTP settings for the mailer.
func (i *Instance) EmailConfig() contract.EmailConfigProvider {
	return i.svc.EmailConfig
}

// Start launches both scheduler loops. They run until ctx is cancelled
// or Stop is called.
func (i *Instance) Start(ctx context.Context) {
	i.reminder.Start(ctx)
	i.indexer.Start(ctx)
}

func (i *Instance) Stop() {
	i.reminder.Stop()
	i.indexer.Stop()
}
