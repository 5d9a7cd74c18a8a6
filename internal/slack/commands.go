package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdHelp    CommandType = "help"
	CmdStatus  CommandType = "status"
	CmdCurrent CommandType = "current"
	CmdList    CommandType = "list"
	CmdAddm    CommandType = "addm"
	CmdAddh    CommandType = "addh"
	CmdRm      CommandType = "rm"
	CmdSet     CommandType = "set"
	CmdOn      CommandType = "on"
	CmdOff     CommandType = "off"
	CmdSilent  CommandType = "silent"
	CmdSend    CommandType = "send"
	CmdNext    CommandType = "next"
	CmdReset   CommandType = "reset"
	CmdRestart CommandType = "restart"
	CmdHistory CommandType = "history"
)

// commandSpec declares each verb's argument count and permission
// requirement so arity is checked once, before dispatch.
type commandSpec struct {
	minArgs int
	maxArgs int
	admin   bool
	usage   string
}

var commandSpecs = map[CommandType]commandSpec{
	CmdHelp:    {minArgs: 0, maxArgs: 0},
	CmdStatus:  {minArgs: 0, maxArgs: 0},
	CmdCurrent: {minArgs: 0, maxArgs: 0},
	CmdList:    {minArgs: 0, maxArgs: 0},
	CmdAddm:    {minArgs: 2, maxArgs: 2, admin: true, usage: "addm <name> <qq_id>"},
	CmdAddh:    {minArgs: 1, maxArgs: 1, admin: true, usage: "addh <MM-DD>"},
	CmdRm:      {minArgs: 1, maxArgs: 1, admin: true, usage: "rm <member_id|MM-DD>"},
	CmdSet:     {minArgs: 2, maxArgs: 2, admin: true, usage: "set reminder <HH:MM> | set index <HH:MM:SS> | set current <member_id>"},
	CmdOn:      {minArgs: 0, maxArgs: 0, admin: true},
	CmdOff:     {minArgs: 0, maxArgs: 0, admin: true},
	CmdSilent:  {minArgs: 1, maxArgs: 1, admin: true, usage: "silent <on|off>"},
	CmdSend:    {minArgs: 0, maxArgs: 0, admin: true},
	CmdNext:    {minArgs: 0, maxArgs: 0, admin: true},
	CmdReset:   {minArgs: 0, maxArgs: 0, admin: true},
	CmdRestart: {minArgs: 0, maxArgs: 0, admin: true},
	CmdHistory: {minArgs: 0, maxArgs: 1, usage: "history [count]"},
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// AdminRequired reports whether the verb mutates state and needs an
// admin caller.
func (c *Command) AdminRequired() bool {
	return commandSpecs[c.Type].admin
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmdType := CommandType(strings.ToLower(parts[0]))
	spec, ok := commandSpecs[cmdType]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}
	if len(args) < spec.minArgs || len(args) > spec.maxArgs {
		if spec.usage != "" {
			return nil, fmt.Errorf("usage: %s", spec.usage)
		}
		return nil, fmt.Errorf("command %s takes no arguments", cmdType)
	}

	return &Command{
		Type: cmdType,
		Args: args,
		Raw:  text,
	}, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Roster:*
• ` + "`/duty list`" + ` - List all members in rotation order
• ` + "`/duty current`" + ` - Show who is on duty today
• ` + "`/duty addm <name> <qq_id>`" + ` - Add a member
• ` + "`/duty rm <member_id|MM-DD>`" + ` - Remove a member or a holiday
• ` + "`/duty next`" + ` - Advance the rotation to the next member
• ` + "`/duty reset`" + ` - Reset the rotation to the first member

*Schedule:*
• ` + "`/duty set reminder HH:MM`" + ` - Set the daily reminder time
• ` + "`/duty set index HH:MM:SS`" + ` - Set the daily index advance time
• ` + "`/duty set current <member_id>`" + ` - Point the rotation at a member
• ` + "`/duty addh MM-DD`" + ` - Add a recurring holiday (no reminder that day)
• ` + "`/duty restart`" + ` - Re-arm both timer loops

*Control:*
• ` + "`/duty on`" + ` / ` + "`/duty off`" + ` - Enable or disable reminders
• ` + "`/duty silent on|off`" + ` - Suppress sending without disabling
• ` + "`/duty send`" + ` - Send today's reminder now

*Info:*
• ` + "`/duty status`" + ` - Show bot status
• ` + "`/duty history [count]`" + ` - Show recent duty events
• ` + "`/duty help`" + ` - Show this message`
}
