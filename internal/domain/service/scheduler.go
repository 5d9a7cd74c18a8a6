package service

import (
	"context"
	"errors"
	"time"

	"github.com/dutybot/slack-duty-bot/internal/domain"
)

const (
	maxSendAttempts    = 3
	initialSendBackoff = 5 * time.Second

	maxLoopFailures = 3
	loopCooldown    = time.Hour

	// After firing, sleep past the scheduled instant so the loop does
	// not compute the same fire time again and trigger twice.
	reminderGuardSleep = time.Minute
	indexGuardSleep    = 2 * time.Minute
)

// sleepCtx blocks for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextDailyFire returns the next instant at or after now whose
// wall-clock time matches value (parsed with layout). If that time has
// already passed today the result is tomorrow.
func nextDailyFire(now time.Time, value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTime
	}

	fire := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location())
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire, nil
}

// isSkip reports whether a fire outcome is a clean no-send rather than
// a delivery failure.
func isSkip(err error) bool {
	return errors.Is(err, domain.ErrRemindersDisabled) ||
		errors.Is(err, domain.ErrSilentMode) ||
		errors.Is(err, domain.ErrHolidayToday) ||
		errors.Is(err, domain.ErrAlreadySentToday) ||
		errors.Is(err, domain.ErrEmptyRoster)
}
