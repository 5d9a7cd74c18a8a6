package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/dutybot/slack-duty-bot/internal/domain"
	"github.com/dutybot/slack-duty-bot/internal/domain/contract"
	slackcmd "github.com/dutybot/slack-duty-bot/internal/slack"
)

const defaultHistoryLimit = 10

type SlackHandler struct {
	dutyService   contract.DutyService
	signingSecret string
	adminUserIDs  map[string]bool
}

// New builds the slash command handler. An empty admins list means
// every caller may use admin verbs.
func New(dutyService contract.DutyService, signingSecret string, admins []string) *SlackHandler {
	adminSet := make(map[string]bool, len(admins))
	for _, id := range admins {
		if id != "" {
			adminSet[id] = true
		}
	}
	return &SlackHandler{
		dutyService:   dutyService,
		signingSecret: signingSecret,
		adminUserIDs:  adminSet,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	if cmd.AdminRequired() && !h.isAdmin(s.UserID) {
		h.respondWithError(w, "You are not allowed to run this command")
		return
	}

	response := h.handleCommand(r, cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) isAdmin(userID string) bool {
	if len(h.adminUserIDs) == 0 {
		return true
	}
	return h.adminUserIDs[userID]
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdHelp:
		return h.handleHelp()
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdCurrent:
		return h.handleCurrent()
	case slackcmd.CmdList:
		return h.handleList()
	case slackcmd.CmdAddm:
		return h.handleAddMember(cmd)
	case slackcmd.CmdAddh:
		return h.handleAddHoliday(cmd)
	case slackcmd.CmdRm:
		return h.handleRemove(cmd)
	case slackcmd.CmdSet:
		return h.handleSet(cmd)
	case slackcmd.CmdOn:
		return h.handleEnable(true)
	case slackcmd.CmdOff:
		return h.handleEnable(false)
	case slackcmd.CmdSilent:
		return h.handleSilent(cmd)
	case slackcmd.CmdSend:
		return h.handleSend(r)
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdReset:
		return h.handleReset()
	case slackcmd.CmdRestart:
		return h.handleRestart()
	case slackcmd.CmdHistory:
		return h.handleHistory(cmd)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         h.dutyService.Status(),
	}
}

func (h *SlackHandler) handleCurrent() *slack.Msg {
	member, err := h.dutyService.CurrentMember()
	if errors.Is(err, domain.ErrEmptyRoster) {
		return h.createErrorResponse("The roster is empty. Use `addm <name> <qq_id>` to add a member.")
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to read current member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("On duty today: *%s* (ID: %d)", member.Name, member.ID),
	}
}

func (h *SlackHandler) handleList() *slack.Msg {
	members := h.dutyService.ListMembers()
	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The roster is empty. Use `addm <name> <qq_id>` to add a member.",
		}
	}

	var list strings.Builder
	list.WriteString("*Rotation roster:*\n")
	for i, m := range members {
		list.WriteString(fmt.Sprintf("%d. %s (ID: %d)\n", i+1, m.Name, m.ID))
	}

	holidays := h.dutyService.ListHolidays()
	if len(holidays) > 0 {
		list.WriteString(fmt.Sprintf("*Holidays:* %s", strings.Join(holidays, ", ")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleAddMember(cmd *slackcmd.Command) *slack.Msg {
	name, qqID := cmd.Args[0], cmd.Args[1]

	member, err := h.dutyService.AddMember(name, qqID)
	if errors.Is(err, domain.ErrDuplicateMember) {
		return h.createErrorResponse(fmt.Sprintf("A member with qq_id %s already exists", qqID))
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to add member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s (ID: %d) has been added to the rotation!", member.Name, member.ID),
	}
}

func (h *SlackHandler) handleAddHoliday(cmd *slackcmd.Command) *slack.Msg {
	date := cmd.Args[0]

	err := h.dutyService.AddHoliday(date)
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse("Invalid date, expected MM-DD (for example 10-01)")
	case errors.Is(err, domain.ErrDuplicateHoliday):
		return h.createErrorResponse(fmt.Sprintf("%s is already a holiday", date))
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Failed to add holiday: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s added to the holiday list. No reminder will be sent that day.", date),
	}
}

// handleRemove accepts either a numeric member ID or an MM-DD holiday.
func (h *SlackHandler) handleRemove(cmd *slackcmd.Command) *slack.Msg {
	arg := cmd.Args[0]

	if id, err := strconv.Atoi(arg); err == nil {
		err := h.dutyService.RemoveMemberByID(id)
		if errors.Is(err, domain.ErrMemberNotFound) {
			return h.createErrorResponse(fmt.Sprintf("No member with ID %d", id))
		}
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to remove member: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Member with ID %d has been removed from the rotation.", id),
		}
	}

	err := h.dutyService.RemoveHoliday(arg)
	if errors.Is(err, domain.ErrHolidayNotFound) {
		return h.createErrorResponse(fmt.Sprintf("%s is not a member ID or a listed holiday", arg))
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove holiday: %v", err))
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s removed from the holiday list.", arg),
	}
}

func (h *SlackHandler) handleSet(cmd *slackcmd.Command) *slack.Msg {
	target, value := cmd.Args[0], cmd.Args[1]

	var err error
	switch target {
	case "reminder":
		err = h.dutyService.SetReminderTime(value)
	case "index":
		err = h.dutyService.SetIndexUpdateTime(value)
	case "current":
		return h.handleSetCurrent(value)
	default:
		return h.createErrorResponse("Use: `set reminder HH:MM`, `set index HH:MM:SS` or `set current <member_id>`")
	}

	if errors.Is(err, domain.ErrInvalidTime) {
		return h.createErrorResponse(fmt.Sprintf("Invalid time: %v", err))
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update %s time: %v", target, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s time set to %s. Scheduler re-armed.", target, value),
	}
}

func (h *SlackHandler) handleSetCurrent(value string) *slack.Msg {
	id, err := strconv.Atoi(value)
	if err != nil {
		return h.createErrorResponse("Use: `set current <member_id>` with a numeric ID")
	}

	member, err := h.dutyService.SetCurrentMember(id)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return h.createErrorResponse(fmt.Sprintf("No member with ID %d", id))
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to set current member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Rotation now points at %s (ID: %d).", member.Name, member.ID),
	}
}

func (h *SlackHandler) handleEnable(enabled bool) *slack.Msg {
	changed, err := h.dutyService.SetEnabled(enabled)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update reminder state: %v", err))
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	if !changed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Reminders are already %s.", state),
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Reminders %s.", state),
	}
}

func (h *SlackHandler) handleSilent(cmd *slackcmd.Command) *slack.Msg {
	var silent bool
	switch cmd.Args[0] {
	case "on":
		silent = true
	case "off":
		silent = false
	default:
		return h.createErrorResponse("Use: `silent on` or `silent off`")
	}

	changed, err := h.dutyService.SetSilentMode(silent)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update silent mode: %v", err))
	}

	state := "off"
	if silent {
		state = "on"
	}
	if !changed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Silent mode is already %s.", state),
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Silent mode %s.", state),
	}
}

func (h *SlackHandler) handleSend(r *http.Request) *slack.Msg {
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	member, err := h.dutyService.ForceSend(ctx)
	switch {
	case errors.Is(err, domain.ErrRemindersDisabled):
		return h.createErrorResponse("Reminders are disabled. Use `on` first.")
	case errors.Is(err, domain.ErrSilentMode):
		return h.createErrorResponse("Silent mode is on. Use `silent off` first.")
	case errors.Is(err, domain.ErrHolidayToday):
		return h.createErrorResponse("Today is a holiday, no reminder will be sent.")
	case errors.Is(err, domain.ErrEmptyRoster):
		return h.createErrorResponse("The roster is empty, nothing to send.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Failed to send reminder: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Reminder sent to %s (ID: %d).", member.Name, member.ID),
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	member, err := h.dutyService.AdvanceIndex()
	if errors.Is(err, domain.ErrEmptyRoster) {
		return h.createErrorResponse("The roster is empty, nothing to advance.")
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to advance rotation: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏭️ Rotation advanced. On duty now: *%s* (ID: %d)", member.Name, member.ID),
	}
}

func (h *SlackHandler) handleReset() *slack.Msg {
	if err := h.dutyService.ResetRotation(); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to reset rotation: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Rotation reset to the first member.",
	}
}

func (h *SlackHandler) handleRestart() *slack.Msg {
	h.dutyService.RestartSchedulers()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Both schedulers restarted.",
	}
}

func (h *SlackHandler) handleHistory(cmd *slackcmd.Command) *slack.Msg {
	limit := defaultHistoryLimit
	if len(cmd.Args) == 1 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n <= 0 {
			return h.createErrorResponse("Use: `history [count]` with a positive count")
		}
		limit = n
	}

	events, err := h.dutyService.RecentHistory(limit)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to load history: %v", err))
	}
	if len(events) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No duty events recorded yet.",
		}
	}

	var list strings.Builder
	list.WriteString("*Recent duty events:*\n")
	for _, e := range events {
		list.WriteString(fmt.Sprintf("• [%s] %s: %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Detail))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
