package session

import "strings"

// PromptText lists the commands available at a checkpoint.
const PromptText = "[Enter=continue, m=more, t=trace, c=copy, s=skip all, q=quit, h=help]"

// Command is a parsed checkpoint command.
type Command int

const (
	CmdContinue Command = iota
	CmdQuit
	CmdSkip
	CmdMore
	CmdTrace
	CmdCopy
	CmdHelp
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdSkip:
		return "skip"
	case CmdMore:
		return "more"
	case CmdTrace:
		return "trace"
	case CmdCopy:
		return "copy"
	case CmdHelp:
		return "help"
	default:
		return "continue"
	}
}

// ParseCommand maps a line of input to a command. Anything unrecognised,
// including an empty line, continues.
func ParseCommand(line string) Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit":
		return CmdQuit
	case "s", "skip":
		return CmdSkip
	case "m", "more":
		return CmdMore
	case "t", "trace":
		return CmdTrace
	case "c", "copy":
		return CmdCopy
	case "h", "?", "help":
		return CmdHelp
	default:
		return CmdContinue
	}
}

// reprompts reports whether the loop asks again after running c.
func (c Command) reprompts() bool {
	switch c {
	case CmdMore, CmdTrace, CmdCopy, CmdHelp:
		return true
	}
	return false
}
