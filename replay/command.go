package replay

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Command is one parsed script line.
type Command struct {
	// Line is the 1-based line number in the script, 0 when built by hand.
	Line int
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Parse reads one command per line. Blank lines and lines starting with '#'
// are skipped. Command names are case insensitive and argument counts are
// checked, so a parsed script only fails at execution time.
func Parse(src io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		cmd := Command{Line: lineNo, Name: strings.ToLower(fields[0]), Args: fields[1:]}
		if err := check(cmd); err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return cmds, nil
}

func check(cmd Command) error {
	c := getCommand(cmd.Name)
	if c == nil {
		return errors.WithMessagef(ErrUnknownCommand, "line %d: %q", cmd.Line, cmd.Name)
	}
	if !c.acceptsArgs(len(cmd.Args)) {
		return errors.WithMessagef(ErrSyntax, "line %d: wrong number of arguments for %q", cmd.Line, cmd.Name)
	}
	return nil
}
