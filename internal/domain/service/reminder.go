package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

// reminderScheduler fires the daily reminder email at the configured
// HH:MM. The loop is a cancellable sleep rather than a cron entry so a
// config change can re-arm it immediately via Restart.
type reminderScheduler struct {
	svc     *rosterService
	mailer  contract.Mailer
	history contract.HistoryRepo

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	base   context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newReminderScheduler(svc *rosterService, history contract.HistoryRepo) *reminderScheduler {
	return &reminderScheduler{
		svc:     svc,
		history: history,
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

func (r *reminderScheduler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.base = ctx
	r.startLocked()
}

func (r *reminderScheduler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

// Restart cancels the running loop and arms a fresh one against the
// current config. A scheduler that was never started stays stopped.
func (r *reminderScheduler) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.base == nil {
		return
	}
	r.stopLocked()
	r.startLocked()
}

func (r *reminderScheduler) startLocked() {
	ctx, cancel := context.WithCancel(r.base)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	go r.loop(ctx, done)
}

func (r *reminderScheduler) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
		r.cancel = nil
		r.done = nil
	}
}

func (r *reminderScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	failures := 0
	for {
		cfg, _ := r.svc.snapshot()

		fireAt, err := nextDailyFire(r.now(), cfg.ReminderTime, "15:04")
		if err != nil {
			log.WithError(err).WithField("reminder_time", cfg.ReminderTime).
				Error("invalid reminder time in config, retrying in an hour")
			if r.sleep(ctx, loopCooldown) != nil {
				return
			}
			continue
		}

		log.WithField("fire_at", fireAt.Format(time.RFC3339)).Info("reminder scheduler armed")
		if r.sleep(ctx, fireAt.Sub(r.now())) != nil {
			log.Info("reminder scheduler stopped")
			return
		}

		if _, err := r.fire(ctx, false); err != nil && !isSkip(err) {
			failures++
			log.WithError(err).WithField("failures", failures).Error("reminder delivery failed")
			if failures >= maxLoopFailures {
				log.WithField("cooldown", loopCooldown.String()).Warn("too many reminder failures, cooling down")
				failures = 0
				if r.sleep(ctx, loopCooldown) != nil {
					return
				}
			} else {
				if r.sleep(ctx, time.Duration(failures)*time.Minute) != nil {
					return
				}
			}
			continue
		} else if err != nil {
			log.WithField("reason", err.Error()).Info("reminder skipped")
		}

		failures = 0
		if r.sleep(ctx, reminderGuardSleep) != nil {
			return
		}
	}
}

// forceSend triggers an immediate delivery, bypassing only the
// sent-today dedup. The enabled, silent and holiday gates still apply.
func (r *reminderScheduler) forceSend(ctx context.Context) (entity.Member, error) {
	return r.fire(ctx, true)
}

func (r *reminderScheduler) fire(ctx context.Context, force bool) (entity.Member, error) {
	cfg, roster := r.svc.snapshot()
	today := r.now()
	todayStr := today.Format("2006-01-02")

	if !cfg.Enabled {
		return entity.Member{}, domain.ErrRemindersDisabled
	}
	if cfg.SilentMode {
		return entity.Member{}, domain.ErrSilentMode
	}
	for _, d := range cfg.HolidayWhitelist {
		if d == today.Format("01-02") {
			return entity.Member{}, domain.ErrHolidayToday
		}
	}
	if !force && roster.LastReminderDate == todayStr {
		return entity.Member{}, domain.ErrAlreadySentToday
	}
	if len(roster.Members) == 0 {
		return entity.Member{}, domain.ErrEmptyRoster
	}

	idx := roster.CurrentIndex
	if idx >= len(roster.Members) {
		idx = 0
	}
	member := roster.Members[idx]

	tpl := cfg.MessageTemplates.Normal
	if !cfg.Enabled {
		tpl = cfg.MessageTemplates.Pause
	}
	body := renderTemplate(tpl, today, member.Name)

	if err := r.sendWithRetry(ctx, member.Email(), cfg.EmailConfig.Subject, body); err != nil {
		r.notifyAdmin(ctx, fmt.Sprintf("Reminder delivery to %s (ID: %d) failed: %v", member.Name, member.ID, err))
		return entity.Member{}, err
	}

	if err := r.svc.markReminderSent(todayStr); err != nil {
		log.WithError(err).Error("failed to record reminder delivery")
	}

	event := &entity.DutyEvent{
		Kind:       domain.EventReminderSent,
		MemberID:   member.ID,
		MemberName: member.Name,
		Detail:     "reminder email sent to " + member.Email(),
	}
	if err := r.history.Create(event); err != nil {
		log.WithError(err).Error("failed to record duty event")
	}

	report := fmt.Sprintf("Reminder sent to %s (ID: %d).", member.Name, member.ID)
	if next, err := nextDailyFire(r.now(), cfg.IndexUpdateTime, "15:04:05"); err == nil {
		report += fmt.Sprintf(" Next index update in %s.", next.Sub(r.now()).Round(time.Second))
	}
	r.notifyAdmin(ctx, report+"\n\n"+r.svc.Status())

	log.WithFields(log.Fields{"member": member.Name, "email": member.Email()}).Info("reminder sent")
	return member, nil
}

func (r *reminderScheduler) sendWithRetry(ctx context.Context, to, subject, body string) error {
	var err error
	backoff := initialSendBackoff
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		err = r.mailer.SendReminder(ctx, to, subject, body)
		if err == nil {
			return nil
		}
		log.WithError(err).WithField("attempt", attempt).Warn("reminder send attempt failed")
		if attempt < maxSendAttempts {
			if serr := r.sleep(ctx, backoff); serr != nil {
				return serr
			}
			backoff *= 2
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxSendAttempts, err)
}

// notifyAdmin is best effort: a lost admin mail must never fail the
// reminder itself.
func (r *reminderScheduler) notifyAdmin(ctx context.Context, body string) {
	if err := r.mailer.SendAdmin(ctx, body); err != nil {
		log.WithError(err).Warn("failed to send admin notification")
	}
}

// renderTemplate substitutes the {year} {month} {day} {weekday} {name}
// placeholders. Unknown placeholders pass through untouched.
func renderTemplate(tpl string, now time.Time, name string) string {
	return strings.NewReplacer(
		"{year}", strconv.Itoa(now.Year()),
		"{month}", strconv.Itoa(int(now.Month())),
		"{day}", strconv.Itoa(now.Day()),
		"{weekday}", now.Weekday().String(),
		"{name}", name,
	).Replace(tpl)
}
