package shell

// Command identifies one of the built-in commands.
type Command int

const (
	CmdLs Command = iota
	CmdCd
	CmdPwd
	CmdEcho
	CmdCls
	CmdTree
	CmdTac
	CmdScript
	CmdVfs
	CmdExit

	numCommands
)

var commandNames = [numCommands]string{
	CmdLs:     "ls",
	CmdCd:     "cd",
	CmdPwd:    "pwd",
	CmdEcho:   "echo",
	CmdCls:    "cls",
	CmdTree:   "tree",
	CmdTac:    "tac",
	CmdScript: "script",
	CmdVfs:    "vfs",
	CmdExit:   "exit",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, numCommands)
	for c, name := range commandNames {
		m[name] = Command(c)
	}
	return m
}()

// String returns the name typed to invoke the command.
func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand maps a command name to its Command.
func ParseCommand(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

// Commands returns every command in declaration order.
func Commands() []Command {
	cmds := make([]Command, numCommands)
	for i := range cmds {
		cmds[i] = Command(i)
	}
	return cmds
}

// Result is the outcome of one command line.
type Result struct {
	// Lines are appended to the output log in order.
	Lines []string
	// Clear asks the display to empty its log before appending Lines.
	Clear bool
	// Exit ends the session after Lines are shown.
	Exit bool
	// Err is the error behind a diagnostic line in Lines, if any.
	Err error
}

// handler runs a command with its arguments, excluding the command name.
type handler func(s *Shell, args []string) (Result, error)

var handlers map[Command]handler

func init() {
	handlers = map[Command]handler{
		CmdLs:     (*Shell).cmdLs,
		CmdCd:     (*Shell).cmdCd,
		CmdPwd:    (*Shell).cmdPwd,
		CmdEcho:   (*Shell).cmdEcho,
		CmdCls:    (*Shell).cmdCls,
		CmdTree:   (*Shell).cmdTree,
		CmdTac:    (*Shell).cmdTac,
		CmdScript: (*Shell).cmdScript,
		CmdVfs:    (*Shell).cmdVfs,
		CmdExit:   (*Shell).cmdExit,
	}
}
