package entity

import (
	"time"

	"github.com/dutybot/slack-duty-bot/internal/domain"
)

// Member is one entry in the duty rotation. IDs are allocated as
// max(existing)+1 and never reused after deletion.
type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	QQID string `json:"qq_id"`
}

// Email returns the notification address derived from the member's
// external contact identifier.
func (m Member) Email() string {
	return m.QQID + "@qq.com"
}

// RosterState is the persisted rotation document. CurrentIndex always
// addresses a valid member, or is 0 when the roster is empty.
// LastReminderDate is an ISO date (YYYY-MM-DD) or empty, compared only
// for equality against "today" in local time.
type RosterState struct {
	Members          []Member `json:"members"`
	CurrentIndex     int      `json:"current_index"`
	LastReminderDate string   `json:"last_reminder_date"`
}

// MessageTemplates holds the reminder body formats. Placeholders:
// {year} {month} {day} {weekday} {name}.
type MessageTemplates struct {
	Normal string `json:"normal"`
	Pause  string `json:"pause"`
}

type EmailConfig struct {
	SMTPServer     string `json:"smtp_server"`
	SMTPPort       int    `json:"smtp_port"`
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
	Subject        string `json:"subject"`
	AdminEmail     string `json:"admin_email"`
}

// BotConfig is the persisted configuration document.
type BotConfig struct {
	ReminderTime     string           `json:"reminder_time"`     // HH:MM
	IndexUpdateTime  string           `json:"index_update_time"` // HH:MM:SS
	Enabled          bool             `json:"enabled"`
	SilentMode       bool             `json:"silent_mode"`
	HolidayWhitelist []string         `json:"holiday_whitelist"` // MM-DD, recurring annually
	MessageTemplates MessageTemplates `json:"message_templates"`
	EmailConfig      EmailConfig      `json:"email_config"`
	SenderFlag       bool             `json:"sender_flag"` // did today's reminder already go out
}

// DefaultBotConfig returns the document written when no config file
// exists yet.
func DefaultBotConfig() *BotConfig {
	return &BotConfig{
		ReminderTime:    domain.DefaultReminderTime,
		IndexUpdateTime: domain.DefaultIndexUpdateTime,
		Enabled:         true,
		SilentMode:      false,
		MessageTemplates: MessageTemplates{
			Normal: domain.DefaultNormalTemplate,
			Pause:  domain.DefaultPauseTemplate,
		},
		EmailConfig: EmailConfig{
			SMTPServer: domain.DefaultSMTPServer,
			SMTPPort:   domain.DefaultSMTPPort,
			Subject:    domain.DefaultMailSubject,
		},
		HolidayWhitelist: []string{},
	}
}

// DefaultRosterState returns the document written when no roster file
// exists yet.
func DefaultRosterState() *RosterState {
	return &RosterState{Members: []Member{}}
}

// DutyEvent is one row of the duty history store.
type DutyEvent struct {
	ID         int64     `json:"id" db:"id"`
	Kind       string    `json:"kind" db:"kind"`
	MemberID   int       `json:"member_id" db:"member_id"`
	MemberName string    `json:"member_name" db:"member_name"`
	Detail     string    `json:"detail" db:"detail"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
