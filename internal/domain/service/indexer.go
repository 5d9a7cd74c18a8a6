package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

// indexScheduler advances the rotation at the configured HH:MM:SS once
// per day, independently of whether the reminder went out.
type indexScheduler struct {
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

func newIndexScheduler(svc *rosterService, history contract.HistoryRepo) *indexScheduler {
	return &indexScheduler{
		svc:     svc,
		history: history,
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

func (x *indexScheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.base = ctx
	x.startLocked()
}

func (x *indexScheduler) Stop() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.stopLocked()
}

func (x *indexScheduler) Restart() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.base == nil {
		return
	}
	x.stopLocked()
	x.startLocked()
}

func (x *indexScheduler) startLocked() {
	ctx, cancel := context.WithCancel(x.base)
	done := make(chan struct{})
	x.cancel = cancel
	x.done = done
	go x.loop(ctx, done)
}

func (x *indexScheduler) stopLocked() {
	if x.cancel != nil {
		x.cancel()
		<-x.done
		x.cancel = nil
		x.done = nil
	}
}

func (x *indexScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	failures := 0
	for {
		cfg, _ := x.svc.snapshot()

		fireAt, err := nextDailyFire(x.now(), cfg.IndexUpdateTime, "15:04:05")
		if err != nil {
			log.WithError(err).WithField("index_update_time", cfg.IndexUpdateTime).
				Error("invalid index update time in config, retrying in an hour")
			if x.sleep(ctx, loopCooldown) != nil {
				return
			}
			continue
		}

		log.WithField("fire_at", fireAt.Format(time.RFC3339)).Info("index scheduler armed")
		if x.sleep(ctx, fireAt.Sub(x.now())) != nil {
			log.Info("index scheduler stopped")
			return
		}

		if err := x.fire(ctx); err != nil {
			failures++
			log.WithError(err).WithField("failures", failures).Error("index advance failed")
			if failures >= maxLoopFailures {
				log.WithField("cooldown", loopCooldown.String()).Warn("too many index advance failures, cooling down")
				failures = 0
				if x.sleep(ctx, loopCooldown) != nil {
					return
				}
			} else {
				if x.sleep(ctx, time.Duration(failures)*time.Minute) != nil {
					return
				}
			}
			continue
		}

		failures = 0
		if x.sleep(ctx, indexGuardSleep) != nil {
			return
		}
	}
}

func (x *indexScheduler) fire(ctx context.Context) error {
	oldIndex, newIndex, member, err := x.svc.advanceForSchedule()
	if errors.Is(err, domain.ErrEmptyRoster) {
		log.Warn("roster is empty, skipping index advance")
		return nil
	}
	if err != nil {
		return err
	}

	event := &entity.DutyEvent{
		Kind:       domain.EventIndexAdvanced,
		MemberID:   member.ID,
		MemberName: member.Name,
		Detail:     fmt.Sprintf("rotation advanced from position %d to %d", oldIndex+1, newIndex+1),
	}
	if err := x.history.Create(event); err != nil {
		log.WithError(err).Error("failed to record duty event")
	}

	x.notifyAdmin(ctx, fmt.Sprintf("Duty index advanced from position %d to %d. On duty now: %s (ID: %d).\n\n%s",
		oldIndex+1, newIndex+1, member.Name, member.ID, x.svc.Status()))

	log.WithFields(log.Fields{"member": member.Name, "index": newIndex}).Info("duty index advanced")
	return nil
}

func (x *indexScheduler) notifyAdmin(ctx context.Context, body string) {
	if err := x.mailer.SendAdmin(ctx, body); err != nil {
		log.WithError(err).Warn("failed to send admin notification")
	}
}
