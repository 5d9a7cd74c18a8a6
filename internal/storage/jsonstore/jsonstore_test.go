package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	store := New(filepath.Join(dir, "config.json"), filepath.Join(dir, "member.json"))
	return store, dir
}

func TestLoadConfig_BootstrapsDefaults(t *testing.T) {
	store, dir := newTestStore(t)

	cfg, err := store.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultReminderTime, cfg.ReminderTime)
	assert.Equal(t, domain.DefaultIndexUpdateTime, cfg.IndexUpdateTime)
	assert.True(t, cfg.Enabled)
	assert.False(t, cfg.SilentMode)
	assert.Equal(t, domain.DefaultSMTPServer, cfg.EmailConfig.SMTPServer)

	// The defaults must have been written back to disk.
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
}

func TestLoadRoster_BootstrapsEmptyRoster(t *testing.T) {
	store, _ := newTestStore(t)

	roster, err := store.LoadRoster()
	require.NoError(t, err)

	assert.Empty(t, roster.Members)
	assert.Zero(t, roster.CurrentIndex)
	assert.Empty(t, roster.LastReminderDate)
}

func TestSaveAndLoadRoster_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	original := &entity.RosterState{
		Members: []entity.Member{
			{ID: 1, Name: "Alice", QQID: "111"},
			{ID: 2, Name: "小明", QQID: "222"},
		},
		CurrentIndex:     1,
		LastReminderDate: "2026-08-30",
	}

	err := store.SaveRoster(original)
	require.NoError(t, err)

	loaded, err := store.LoadRoster()
	require.NoError(t, err)

	assert.Equal(t, original, loaded)
}

func TestLoadConfig_CorruptFileReplacedWithDefaults(t *testing.T) {
	store, dir := newTestStore(t)

	path := filepath.Join(dir, "config.json")
	err := os.WriteFile(path, []byte("{not json"), 0o644)
	require.NoError(t, err)

	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReminderTime, cfg.ReminderTime)

	// The corrupt file must have been rewritten as valid JSON.
	reloaded, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestSave_HumanReadableOutput(t *testing.T) {
	store, dir := newTestStore(t)

	roster := &entity.RosterState{
		Members: []entity.Member{{ID: 1, Name: "小明", QQID: "111"}},
	}
	err := store.SaveRoster(roster)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "member.json"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.Contains(content, "\n  "), "expected indented output")
	assert.Contains(t, content, "小明", "expected non-ASCII to be preserved, not escaped")
}

func TestSave_CreatesDataDirectory(t *testing.T) {
	dir := t.TempDir()
	store := New(
		filepath.Join(dir, "data", "config.json"),
		filepath.Join(dir, "data", "member.json"),
	)

	err := store.SaveRoster(entity.DefaultRosterState())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "data", "member.json"))
	require.NoError(t, err)
}
