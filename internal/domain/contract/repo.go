package contract

import "github.com/dutybot/slack-duty-bot/internal/domain/entity"

// DocumentStore persists the two JSON state documents. Documents are
// loaded once at startup and rewritten wholesale after every mutation;
// the last writer wins.
type DocumentStore interface {
	LoadConfig() (*entity.BotConfig, error)
	SaveConfig(cfg *entity.BotConfig) error
	LoadRoster() (*entity.RosterState, error)
	SaveRoster(roster *entity.RosterState) error
}

// HistoryRepo defines the contract for the duty history store.
type HistoryRepo interface {
	Create(event *entity.DutyEvent) error
	ListRecent(limit int) ([]*entity.DutyEvent, error)
}
