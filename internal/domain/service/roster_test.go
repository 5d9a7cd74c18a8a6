package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/storage/jsonstore"
)

// setupRoster builds a roster service over a real document store in a
// temp dir. Schedulers are attached unstarted so Restart is a no-op.
func setupRoster(t *testing.T) (*rosterService, *jsonstore.Store) {
	t.Helper()

	dir := t.TempDir()
	store := jsonstore.New(filepath.Join(dir, "config.json"), filepath.Join(dir, "member.json"))

	svc, err := newRoster(store, nil)
	require.NoError(t, err, "Failed to create roster service")

	svc.setSchedulers(newReminderScheduler(svc, nil), newIndexScheduler(svc, nil))
	return svc, store
}

func TestAddMember(t *testing.T) {
	svc, _ := setupRoster(t)

	alice, err := svc.AddMember("Alice", "111")
	require.NoError(t, err)
	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, "111@qq.com", alice.Email())

	bob, err := svc.AddMember("Bob", "222")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.ID)

	_, err = svc.AddMember("Alice again", "111")
	assert.ErrorIs(t, err, domain.ErrDuplicateMember)

	assert.Len(t, svc.ListMembers(), 2)
}

func TestAddMember_IDsNotReusedAfterRemoval(t *testing.T) {
	svc, _ := setupRoster(t)

	_, err := svc.AddMember("Alice", "111")
	require.NoError(t, err)
	bob, err := svc.AddMember("Bob", "222")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMemberByID(bob.ID))

	carol, err := svc.AddMember("Carol", "333")
	require.NoError(t, err)
	assert.Equal(t, 2, carol.ID, "Expected next ID after highest remaining")
}

func TestRemoveMemberByID(t *testing.T) {
	svc, _ := setupRoster(t)

	err := svc.RemoveMemberByID(99)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	alice, _ := svc.AddMember("Alice", "111")
	require.NoError(t, svc.RemoveMemberByID(alice.ID))
	assert.Empty(t, svc.ListMembers())
}

func TestRemoveMemberByID_CurrentIndexStaysInBounds(t *testing.T) {
	svc, _ := setupRoster(t)

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")
	carol, _ := svc.AddMember("Carol", "333")

	// Point the rotation at the last member, then remove them.
	_, err := svc.SetCurrentMember(carol.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMemberByID(carol.ID))

	current, err := svc.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, "Bob", current.Name, "Expected index clamped to last remaining member")

	// Removing everyone resets the index to zero.
	for _, m := range svc.ListMembers() {
		require.NoError(t, svc.RemoveMemberByID(m.ID))
	}
	_, err = svc.CurrentMember()
	assert.ErrorIs(t, err, domain.ErrEmptyRoster)
}

func TestAdvanceIndex_Cyclic(t *testing.T) {
	svc, _ := setupRoster(t)

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")
	svc.AddMember("Carol", "333")

	start, err := svc.CurrentMember()
	require.NoError(t, err)

	// Advancing len(members) times returns to the starting member.
	for i := 0; i < 3; i++ {
		_, err := svc.AdvanceIndex()
		require.NoError(t, err)
	}

	end, err := svc.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, start, end)
}

func TestAdvanceIndex_EmptyRoster(t *testing.T) {
	svc, _ := setupRoster(t)

	_, err := svc.AdvanceIndex()
	assert.ErrorIs(t, err, domain.ErrEmptyRoster)
}

func TestAdvanceAndReset(t *testing.T) {
	svc, _ := setupRoster(t)

	svc.AddMember("A", "111")
	svc.AddMember("B", "222")

	member, err := svc.AdvanceIndex()
	require.NoError(t, err)
	assert.Equal(t, "B", member.Name)

	require.NoError(t, svc.ResetRotation())

	current, err := svc.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, "A", current.Name)

	_, roster := svc.snapshot()
	assert.Zero(t, roster.CurrentIndex)
	assert.Empty(t, roster.LastReminderDate)
}

func TestCurrentMember_ReadDoesNotWrite(t *testing.T) {
	svc, store := setupRoster(t)

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")

	// Simulate a stale document left behind by an older writer.
	svc.mu.Lock()
	svc.roster.CurrentIndex = 5
	svc.mu.Unlock()

	current, err := svc.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, "Alice", current.Name, "Out-of-range index is read as the first member")

	// The read must not have persisted anything.
	persisted, err := store.LoadRoster()
	require.NoError(t, err)
	assert.Zero(t, persisted.CurrentIndex)
}

func TestNextMember_DoesNotMutate(t *testing.T) {
	svc, _ := setupRoster(t)

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")

	next, err := svc.NextMember()
	require.NoError(t, err)
	assert.Equal(t, "Bob", next.Name)

	current, err := svc.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, "Alice", current.Name)
}

func TestHolidays(t *testing.T) {
	svc, _ := setupRoster(t)

	err := svc.AddHoliday("02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDate, "February 30th is not a real date")

	err = svc.AddHoliday("13-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	require.NoError(t, svc.AddHoliday("12-25"))
	require.NoError(t, svc.AddHoliday("10-01"))

	err = svc.AddHoliday("12-25")
	assert.ErrorIs(t, err, domain.ErrDuplicateHoliday)

	assert.Equal(t, []string{"12-25", "10-01"}, svc.ListHolidays())

	require.NoError(t, svc.RemoveHoliday("12-25"))
	err = svc.RemoveHoliday("12-25")
	assert.ErrorIs(t, err, domain.ErrHolidayNotFound)
}

func TestSetReminderTime(t *testing.T) {
	svc, _ := setupRoster(t)

	err := svc.SetReminderTime("25:00")
	assert.ErrorIs(t, err, domain.ErrInvalidTime)

	cfg, _ := svc.snapshot()
	assert.Equal(t, domain.DefaultReminderTime, cfg.ReminderTime, "Config must be unchanged after rejected input")

	require.NoError(t, svc.SetReminderTime("08:30"))
	cfg, _ = svc.snapshot()
	assert.Equal(t, "08:30", cfg.ReminderTime)

	// HH:MM:SS is not accepted for the reminder time.
	err = svc.SetReminderTime("08:30:00")
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}

func TestSetIndexUpdateTime(t *testing.T) {
	svc, _ := setupRoster(t)

	err := svc.SetIndexUpdateTime("10:30")
	assert.ErrorIs(t, err, domain.ErrInvalidTime, "Index update time requires seconds")

	require.NoError(t, svc.SetIndexUpdateTime("23:59:59"))
	cfg, _ := svc.snapshot()
	assert.Equal(t, "23:59:59", cfg.IndexUpdateTime)
}

func TestSetEnabled_Idempotent(t *testing.T) {
	svc, _ := setupRoster(t)

	// Enabled by default.
	changed, err := svc.SetEnabled(true)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.SetEnabled(false)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.SetEnabled(false)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSetSilentMode_Idempotent(t *testing.T) {
	svc, _ := setupRoster(t)

	changed, err := svc.SetSilentMode(true)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.SetSilentMode(true)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStatus(t *testing.T) {
	svc, _ := setupRoster(t)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	}

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")
	svc.AddHoliday("10-01")

	status := svc.Status()
	assert.Contains(t, status, "Today: 2026-08-30")
	assert.Contains(t, status, "Reminders: enabled")
	assert.Contains(t, status, "Silent mode: off")
	assert.Contains(t, status, "Current duty: Alice (ID: 1)")
	assert.Contains(t, status, "Next duty: Bob (ID: 2)")
	assert.Contains(t, status, "Members: 2")
	assert.Contains(t, status, "Holidays: 1")
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	svc, store := setupRoster(t)

	svc.AddMember("Alice", "111")
	svc.AddMember("Bob", "222")
	svc.AdvanceIndex()
	svc.SetReminderTime("09:15")

	// A fresh service over the same files sees the same state.
	reloaded, err := newRoster(store, nil)
	require.NoError(t, err)

	current, err := reloaded.CurrentMember()
	require.NoError(t, err)
	assert.Equal(t, "Bob", current.Name)

	cfg, _ := reloaded.snapshot()
	assert.Equal(t, "09:15", cfg.ReminderTime)
}
