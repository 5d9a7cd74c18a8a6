package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

type rosterService struct {
	store   contract.DocumentStore
	history contract.HistoryRepo

	reminder *reminderScheduler
	indexer  *indexScheduler

	now func() time.Time

	// mu guards both documents for the full read-modify-persist span.
	// A command handler and a scheduler tick may otherwise interleave
	// between read, mutate and persist and clobber each other.
	mu     sync.Mutex
	config *entity.BotConfig
	roster *entity.RosterState
}

func newRoster(store contract.DocumentStore, history contract.HistoryRepo) (*rosterService, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config document: %w", err)
	}

	roster, err := store.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster document: %w", err)
	}

	// Repair an index left out of bounds by an older writer.
	if len(roster.Members) == 0 {
		roster.CurrentIndex = 0
	} else if roster.CurrentIndex >= len(roster.Members) || roster.CurrentIndex < 0 {
		roster.CurrentIndex = 0
	}

	return &rosterService{
		store:   store,
		history: history,
		now:     time.Now,
		config:  cfg,
		roster:  roster,
	}, nil
}

// setSchedulers is called after construction to avoid a circular
// dependency between the roster service and its timer loops.
func (s *rosterService) setSchedulers(reminder *reminderScheduler, indexer *indexScheduler) {
	s.reminder = reminder
	s.indexer = indexer
}

func (s *rosterService) AddMember(name, qqID string) (entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.roster.Members {
		if m.QQID == qqID {
			return entity.Member{}, domain.ErrDuplicateMember
		}
	}

	newID := 1
	for _, m := range s.roster.Members {
		if m.ID >= newID {
			newID = m.ID + 1
		}
	}

	member := entity.Member{ID: newID, Name: name, QQID: qqID}
	s.roster.Members = append(s.roster.Members, member)

	if err := s.store.SaveRoster(s.roster); err != nil {
		return entity.Member{}, fmt.Errorf("failed to persist roster: %w", err)
	}
	return member, nil
}

func (s *rosterService) RemoveMemberByID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := -1
	for i, m := range s.roster.Members {
		if m.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return domain.ErrMemberNotFound
	}

	s.roster.Members = append(s.roster.Members[:pos], s.roster.Members[pos+1:]...)

	if len(s.roster.Members) == 0 {
		s.roster.CurrentIndex = 0
	} else if s.roster.CurrentIndex > len(s.roster.Members)-1 {
		s.roster.CurrentIndex = len(s.roster.Members) - 1
	}

	if err := s.store.SaveRoster(s.roster); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}

func (s *rosterService) SetCurrentMember(id int) (entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.roster.Members {
		if m.ID == id {
			s.roster.CurrentIndex = i
			if err := s.store.SaveRoster(s.roster); err != nil {
				return entity.Member{}, fmt.Errorf("failed to persist roster: %w", err)
			}
			return m, nil
		}
	}
	return entity.Member{}, domain.ErrMemberNotFound
}

func (s *rosterService) AdvanceIndex() (entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, member, err := s.advanceLocked()
	if err != nil {
		return entity.Member{}, err
	}
	if err := s.store.SaveRoster(s.roster); err != nil {
		return entity.Member{}, fmt.Errorf("failed to persist roster: %w", err)
	}
	return member, nil
}

// advanceForSchedule is the index scheduler's tick: advance the
// rotation, clear the sent-today flag and persist both documents under
// one lock acquisition.
func (s *rosterService) advanceForSchedule() (oldIndex, newIndex int, member entity.Member, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldIndex, newIndex, member, err = s.advanceLocked()
	if err != nil {
		return 0, 0, entity.Member{}, err
	}

	s.config.SenderFlag = false

	if err := s.store.SaveRoster(s.roster); err != nil {
		return 0, 0, entity.Member{}, fmt.Errorf("failed to persist roster: %w", err)
	}
	if err := s.store.SaveConfig(s.config); err != nil {
		return 0, 0, entity.Member{}, fmt.Errorf("failed to persist config: %w", err)
	}
	return oldIndex, newIndex, member, nil
}

func (s *rosterService) advanceLocked() (oldIndex, newIndex int, member entity.Member, err error) {
	if len(s.roster.Members) == 0 {
		return 0, 0, entity.Member{}, domain.ErrEmptyRoster
	}
	oldIndex = s.roster.CurrentIndex
	newIndex = (oldIndex + 1) % len(s.roster.Members)
	s.roster.CurrentIndex = newIndex
	return oldIndex, newIndex, s.roster.Members[newIndex], nil
}

// CurrentMember is a pure read. An out-of-range index is repaired at
// load time and by every mutation, so here it is only clamped, never
// persisted.
func (s *rosterService) CurrentMember() (entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.roster.Members) == 0 {
		return entity.Member{}, domain.ErrEmptyRoster
	}
	idx := s.roster.CurrentIndex
	if idx < 0 || idx >= len(s.roster.Members) {
		idx = 0
	}
	return s.roster.Members[idx], nil
}

func (s *rosterService) NextMember() (entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.roster.Members) == 0 {
		return entity.Member{}, domain.ErrEmptyRoster
	}
	next := (s.roster.CurrentIndex + 1) % len(s.roster.Members)
	return s.roster.Members[next], nil
}

func (s *rosterService) ResetRotation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.CurrentIndex = 0
	s.roster.LastReminderDate = ""

	if err := s.store.SaveRoster(s.roster); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}

func (s *rosterService) ListMembers() []entity.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]entity.Member, len(s.roster.Members))
	copy(members, s.roster.Members)
	return members
}

func (s *rosterService) AddHoliday(date string) error {
	if _, err := time.Parse("01-02", date); err != nil {
		return domain.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.config.HolidayWhitelist {
		if d == date {
			return domain.ErrDuplicateHoliday
		}
	}
	s.config.HolidayWhitelist = append(s.config.HolidayWhitelist, date)

	if err := s.store.SaveConfig(s.config); err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}
	return nil
}

func (s *rosterService) RemoveHoliday(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.config.HolidayWhitelist {
		if d == date {
			s.config.HolidayWhitelist = append(s.config.HolidayWhitelist[:i], s.config.HolidayWhitelist[i+1:]...)
			if err := s.store.SaveConfig(s.config); err != nil {
				return fmt.Errorf("failed to persist config: %w", err)
			}
			return nil
		}
	}
	return domain.ErrHolidayNotFound
}

func (s *rosterService) ListHolidays() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	holidays := make([]string, len(s.config.HolidayWhitelist))
	copy(holidays, s.config.HolidayWhitelist)
	return holidays
}

func (s *rosterService) SetReminderTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("%w: use HH:MM", domain.ErrInvalidTime)
	}

	s.mu.Lock()
	s.config.ReminderTime = value
	err := s.store.SaveConfig(s.config)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}

	// Re-arm the timer so the new time takes effect today.
	s.reminder.Restart()
	return nil
}

func (s *rosterService) SetIndexUpdateTime(value string) error {
	if _, err := time.Parse("15:04:05", value); err != nil {
		return fmt.Errorf("%w: use HH:MM:SS", domain.ErrInvalidTime)
	}

	s.mu.Lock()
	s.config.IndexUpdateTime = value
	err := s.store.SaveConfig(s.config)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}

	s.indexer.Restart()
	return nil
}

func (s *rosterService) SetEnabled(enabled bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Enabled == enabled {
		return false, nil
	}
	s.config.Enabled = enabled

	if err := s.store.SaveConfig(s.config); err != nil {
		return false, fmt.Errorf("failed to persist config: %w", err)
	}
	return true, nil
}

func (s *rosterService) SetSilentMode(silent bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.SilentMode == silent {
		return false, nil
	}
	s.config.SilentMode = silent

	if err := s.store.SaveConfig(s.config); err != nil {
		return false, fmt.Errorf("failed to persist config: %w", err)
	}
	return true, nil
}

func (s *rosterService) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := "disabled"
	if s.config.Enabled {
		enabled = "enabled"
	}
	sent := "not sent"
	if s.config.SenderFlag {
		sent = "sent"
	}
	silent := "off"
	if s.config.SilentMode {
		silent = "on"
	}

	current := "none"
	next := "none"
	if len(s.roster.Members) > 0 {
		idx := s.roster.CurrentIndex
		if idx >= len(s.roster.Members) {
			idx = 0
		}
		cur := s.roster.Members[idx]
		nxt := s.roster.Members[(idx+1)%len(s.roster.Members)]
		current = fmt.Sprintf("%s (ID: %d)", cur.Name, cur.ID)
		next = fmt.Sprintf("%s (ID: %d)", nxt.Name, nxt.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Status:\n")
	fmt.Fprintf(&b, "Today: %s\n", s.now().Format("2006-01-02"))
	fmt.Fprintf(&b, "Reminders: %s (today: %s)\n", enabled, sent)
	fmt.Fprintf(&b, "Silent mode: %s\n", silent)
	fmt.Fprintf(&b, "Reminder time: %s\n", s.config.ReminderTime)
	fmt.Fprintf(&b, "Index update time: %s\n", s.config.IndexUpdateTime)
	fmt.Fprintf(&b, "Current duty: %s\n", current)
	fmt.Fprintf(&b, "Next duty: %s\n", next)
	fmt.Fprintf(&b, "Members: %d\n", len(s.roster.Members))
	fmt.Fprintf(&b, "Holidays: %d", len(s.config.HolidayWhitelist))
	return b.String()
}

func (s *rosterService) ForceSend(ctx context.Context) (entity.Member, error) {
	return s.reminder.forceSend(ctx)
}

func (s *rosterService) RestartSchedulers() {
	s.reminder.Restart()
	s.indexer.Restart()
}

func (s *rosterService) RecentHistory(limit int) ([]*entity.DutyEvent, error) {
	return s.history.ListRecent(limit)
}

// EmailConfig returns a snapshot of the current SMTP settings.
func (s *rosterService) EmailConfig() entity.EmailConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.EmailConfig
}

// snapshot returns copies of both documents for lock-free reads during
// slow operations (SMTP sends must not hold the state lock).
func (s *rosterService) snapshot() (entity.BotConfig, entity.RosterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := *s.config
	cfg.HolidayWhitelist = append([]string(nil), s.config.HolidayWhitelist...)

	roster := *s.roster
	roster.Members = append([]entity.Member(nil), s.roster.Members...)

	return cfg, roster
}

// markReminderSent records a successful delivery: dedup date on the
// roster document, sent-today flag on the config document.
func (s *rosterService) markReminderSent(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.LastReminderDate = date
	s.config.SenderFlag = true

	if err := s.store.SaveRoster(s.roster); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	if err := s.store.SaveConfig(s.config); err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}
	return nil
}
