package domain

import "errors"

// Sentinel errors returned by the roster engine, holiday calendar and
// notifier. The command layer maps these to user-visible replies, so
// the messages are written for humans.
var (
	ErrDuplicateMember  = errors.New("member already exists")
	ErrMemberNotFound   = errors.New("member not found")
	ErrDuplicateHoliday = errors.New("date already in holiday whitelist")
	ErrHolidayNotFound  = errors.New("date not in holiday whitelist")
	ErrInvalidDate      = errors.New("invalid date, use MM-DD")
	ErrInvalidTime      = errors.New("invalid time format")
	ErrEmptyRoster      = errors.New("no members in rotation")

	// Reminder gates. A forced send bypasses only the once-per-day
	// check, never these.
	ErrRemindersDisabled = errors.New("reminders are disabled")
	ErrSilentMode        = errors.New("silent mode is enabled")
	ErrHolidayToday      = errors.New("today is a holiday")
	ErrAlreadySentToday  = errors.New("reminder already sent today")

	// Email send failures, both retryable by the caller.
	ErrAuthFailure      = errors.New("smtp authentication failed")
	ErrTransportFailure = errors.New("smtp transport failure")
)

// Defaults used to bootstrap a missing config document.
const (
	DefaultReminderTime    = "08:00"
	DefaultIndexUpdateTime = "00:00:00"
	DefaultMailSubject     = "Duty reminder"
	DefaultSMTPServer      = "smtp.qq.com"
	DefaultSMTPPort        = 465

	DefaultNormalTemplate = "Today ({year}-{month}-{day}, {weekday}) it is {name}'s turn on duty"
	DefaultPauseTemplate  = "Today ({year}-{month}-{day}, {weekday}) would be {name}'s duty day, but the rotation is paused"
)

// Duty event kinds recorded in the history store.
const (
	EventReminderSent  = "reminder_sent"
	EventIndexAdvanced = "index_advanced"
)
