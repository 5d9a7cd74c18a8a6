package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/storage/jsonstore"
	"github.com/dutybot/slack-duty-bot/mocks"
)

var testNow = time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

type reminderMocks struct {
	mailer  *mocks.MockMailer
	history *mocks.MockHistoryRepo
}

// setupReminder wires a reminder scheduler with mocked mail and
// history, a frozen clock and a no-op sleep so backoff is instant.
func setupReminder(t *testing.T) (*reminderScheduler, *rosterService, reminderMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := reminderMocks{
		mailer:  mocks.NewMockMailer(ctrl),
		history: mocks.NewMockHistoryRepo(ctrl),
	}

	dir := t.TempDir()
	store := jsonstore.New(filepath.Join(dir, "config.json"), filepath.Join(dir, "member.json"))

	svc, err := newRoster(store, m.history)
	require.NoError(t, err, "Failed to create roster service")

	reminder := newReminderScheduler(svc, m.history)
	reminder.mailer = m.mailer
	reminder.now = func() time.Time { return testNow }
	reminder.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	indexer := newIndexScheduler(svc, m.history)
	indexer.mailer = m.mailer
	indexer.now = reminder.now
	indexer.sleep = reminder.sleep

	svc.setSchedulers(reminder, indexer)
	svc.now = reminder.now

	return reminder, svc, m
}

func TestReminderFire_Success(t *testing.T) {
	reminder, svc, m := setupReminder(t)

	alice, err := svc.AddMember("Alice", "111")
	require.NoError(t, err)

	m.mailer.EXPECT().
		SendReminder(gomock.Any(), "111@qq.com", domain.DefaultMailSubject, gomock.Any()).
		Return(nil).Times(1)
	m.history.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	m.mailer.EXPECT().SendAdmin(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	member, err := reminder.fire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, alice, member)

	cfg, roster := svc.snapshot()
	assert.Equal(t, "2026-08-30", roster.LastReminderDate)
	assert.True(t, cfg.SenderFlag)
}

func TestReminderFire_DedupSameDay(t *testing.T) {
	reminder, svc, m := setupReminder(t)

	svc.AddMember("Alice", "111")

	m.mailer.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.history.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	m.mailer.EXPECT().SendAdmin(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := reminder.fire(context.Background(), false)
	require.NoError(t, err)

	// Second fire on the same calendar day short-circuits: exactly one
	// successful send.
	_, err = reminder.fire(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrAlreadySentToday)
}

func TestReminderFire_ForceBypassesDedupOnly(t *testing.T) {
	reminder, svc, m := setupReminder(t)

	svc.AddMember("Alice", "111")

	m.mailer.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.history.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
	m.mailer.EXPECT().SendAdmin(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := reminder.fire(context.Background(), false)
	require.NoError(t, err)

	// Force sends again despite last_reminder_date == today.
	_, err = reminder.forceSend(context.Background())
	require.NoError(t, err)
}

func TestReminderFire_Gates(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, svc *rosterService)
		force   bool
		wantErr error
	}{
		{
			name: "disabled",
			setup: func(t *testing.T, svc *rosterService) {
				_, err := svc.SetEnabled(false)
				require.NoError(t, err)
			},
			wantErr: domain.ErrRemindersDisabled,
		},
		{
			name: "disabled is not bypassed by force",
			setup: func(t *testing.T, svc *rosterService) {
				_, err := svc.SetEnabled(false)
				require.NoError(t, err)
			},
			force:   true,
			wantErr: domain.ErrRemindersDisabled,
		},
		{
			name: "silent mode",
			setup: func(t *testing.T, svc *rosterService) {
				_, err := svc.SetSilentMode(true)
				require.NoError(t, err)
			},
			wantErr: domain.ErrSilentMode,
		},
		{
			name: "holiday",
			setup: func(t *testing.T, svc *rosterService) {
				require.NoError(t, svc.AddHoliday("08-30"))
			},
			wantErr: domain.ErrHolidayToday,
		},
		{
			name: "holiday is not bypassed by force",
			setup: func(t *testing.T, svc *rosterService) {
				require.NoError(t, svc.AddHoliday("08-30"))
			},
			force:   true,
			wantErr: domain.ErrHolidayToday,
		},
		{
			name:    "empty roster",
			setup:   func(t *testing.T, svc *rosterService) {},
			wantErr: domain.ErrEmptyRoster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder, svc, _ := setupReminder(t)
			if tt.wantErr != domain.ErrEmptyRoster {
				svc.AddMember("Alice", "111")
			}
			tt.setup(t, svc)

			_, err := reminder.fire(context.Background(), tt.force)
			assert.ErrorIs(t, err, tt.wantErr)

			_, roster := svc.snapshot()
			assert.Empty(t, roster.LastReminderDate, "A skipped fire must not mark the day as sent")
		})
	}
}

func TestReminderFire_RetriesThenGivesUp(t *testing.T) {
	reminder, svc, m := setupReminder(t)

	svc.AddMember("Alice", "111")

	m.mailer.EXPECT().
		SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrTransportFailure).Times(3)
	// Final failure triggers a best-effort admin alert.
	m.mailer.EXPECT().SendAdmin(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := reminder.fire(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransportFailure)

	// No state change after exhausted retries.
	cfg, roster := svc.snapshot()
	assert.Empty(t, roster.LastReminderDate)
	assert.False(t, cfg.SenderFlag)
}

func TestReminderFire_RecoversOnSecondAttempt(t *testing.T) {
	reminder, svc, m := setupReminder(t)

	svc.AddMember("Alice", "111")

	failed := m.mailer.EXPECT().
		SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrTransportFailure).Times(1)
	m.mailer.EXPECT().
		SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1).After(failed)
	m.history.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	m.mailer.EXPECT().SendAdmin(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := reminder.fire(context.Background(), false)
	require.NoError(t, err)

	_, roster := svc.snapshot()
	assert.Equal(t, "2026-08-30", roster.LastReminderDate)
}

func TestRenderTemplate(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

	body := renderTemplate("Today ({year}-{month}-{day}, {weekday}) it is {name}'s turn", now, "Alice")
	assert.Equal(t, "Today (2026-8-30, Sunday) it is Alice's turn", body)

	// Unknown placeholders pass through untouched.
	body = renderTemplate("{name} {unknown}", now, "Bob")
	assert.Equal(t, "Bob {unknown}", body)
}

func TestNextDailyFire(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		value  string
		layout string
		want   time.Time
	}{
		{
			name:   "later today",
			value:  "09:30",
			layout: "15:04",
			want:   time.Date(2026, 8, 30, 9, 30, 0, 0, time.Local),
		},
		{
			name:   "already past rolls to tomorrow",
			value:  "07:00",
			layout: "15:04",
			want:   time.Date(2026, 8, 31, 7, 0, 0, 0, time.Local),
		},
		{
			name:   "exactly now rolls to tomorrow",
			value:  "08:00",
			layout: "15:04",
			want:   time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local),
		},
		{
			name:   "with seconds granularity",
			value:  "08:00:01",
			layout: "15:04:05",
			want:   time.Date(2026, 8, 30, 8, 0, 1, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextDailyFire(now, tt.value, tt.layout)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := nextDailyFire(now, "25:00", "15:04")
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}
