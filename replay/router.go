package replay

import "strings"

var cmdTable = make(map[string]*command)

// ExeFunc runs one command against the session. Arguments exclude the name.
type ExeFunc func(s *Session, args []string) error

type command struct {
	cmdName string
	exeFunc ExeFunc
	minArgs int
	// maxArgs < 0 means no upper bound
	maxArgs int
}

func registerCmd(cmdName string, exeFunc ExeFunc, minArgs, maxArgs int) {
	lower := strings.ToLower(cmdName)
	cmdTable[lower] = &command{
		cmdName: lower,
		exeFunc: exeFunc,
		minArgs: minArgs,
		maxArgs: maxArgs,
	}
}

func getCommand(cmdName string) *command {
	cmd, ok := cmdTable[cmdName]
	if ok {
		return cmd
	}
	return nil
}

func (c *command) acceptsArgs(n int) bool {
	return n >= c.minArgs && (c.maxArgs < 0 || n <= c.maxArgs)
}
