package database

import (
	"fmt"

	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
	"github.com/dutybot/slack-duty-bot/internal/domain/entity"
)

type historyRepo struct {
	db dbConn
}

// NewHistoryRepo returns the duty history repository backed by db.
func NewHistoryRepo(db *DB) contract.HistoryRepo {
	return &historyRepo{db: db.conn}
}

func (r *historyRepo) Create(event *entity.DutyEvent) error {
	query := `
		INSERT INTO duty_events (kind, member_id, member_name, detail)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		event.Kind,
		event.MemberID,
		event.MemberName,
		event.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to create duty event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	event.ID = id
	return nil
}

func (r *historyRepo) ListRecent(limit int) ([]*entity.DutyEvent, error) {
	query := `
		SELECT id, kind, member_id, member_name, detail, created_at
		FROM duty_events
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty events: %w", err)
	}
	defer rows.Close()

	var events []*entity.DutyEvent
	for rows.Next() {
		event := &entity.DutyEvent{}
		err := rows.Scan(
			&event.ID,
			&event.Kind,
			&event.MemberID,
			&event.MemberName,
			&event.Detail,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duty events: %w", err)
	}

	return events, nil
}
