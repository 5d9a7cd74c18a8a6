package contract

import (
	"context"

	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

// DutyService is the surface the command layer talks to. Every
// mutating operation persists the affected document before returning.
type DutyService interface {
	AddMember(name, qqID string) (entity.Member, error)
	RemoveMemberByID(id int) error
	SetCurrentMember(id int) (entity.Member, error)
	AdvanceIndex() (entity.Member, error)
	CurrentMember() (entity.Member, error)
	NextMember() (entity.Member, error)
	ResetRotation() error
	ListMembers() []entity.Member

	AddHoliday(date string) error
	RemoveHoliday(date string) error
	ListHolidays() []string

	SetReminderTime(value string) error
	SetIndexUpdateTime(value string) error
	SetEnabled(enabled bool) (changed bool, err error)
	SetSilentMode(silent bool) (changed bool, err error)

	Status() string

	// ForceSend triggers a reminder immediately, bypassing only the
	// once-per-day check. The enabled/silent/holiday gates still apply
	// and are reported as sentinel errors.
	ForceSend(ctx context.Context) (entity.Member, error)

	// RestartSchedulers cancels and re-arms both timer loops.
	RestartSchedulers()

	RecentHistory(limit int) ([]*entity.DutyEvent, error)
}
