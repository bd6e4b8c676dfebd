package shell

import (
	"fmt"
	"sort"
	"strings"
)

// HelpSystem is the `help` built-in's backing store, adapted from the
// teacher's llmsh help system and scoped down to the commands this
// shell actually implements.
type HelpSystem struct {
	commands map[string]*CommandHelp
}

// CommandHelp documents one command for `help NAME`.
type CommandHelp struct {
	Name        string
	Usage       string
	Description string
	Examples    []Example
}

// Example pairs a command line with what it demonstrates.
type Example struct {
	Command     string
	Description string
}

// NewHelpSystem populates the help table for every control and
// text-processing built-in this shell ships.
func NewHelpSystem() *HelpSystem {
	h := &HelpSystem{commands: make(map[string]*CommandHelp)}

	add := func(name, usage, desc string, examples ...Example) {
		h.commands[name] = &CommandHelp{Name: name, Usage: usage, Description: desc, Examples: examples}
	}

	add("cd", "cd dir", "change the working directory")
	add("exit", "exit [status]", "terminate the shell process")
	add("help", "help [command]", "list commands, or show one command's usage")
	add("set", "set [NAME=value ...]", "assign variables, or list the environment")
	add("unset", "unset NAME ...", "remove variables from the environment")
	add("source", "source FILE ...", "run each file's lines as shell input")
	add("eval", "eval WORD ...", "re-join, re-quote, expand, and run the arguments")

	add("cat", "cat [file...]", "concatenate files and print on stdout")
	add("echo", "echo [-n] [string...]", "display a line of text",
		Example{Command: `echo "hi there"`, Description: "print a line"})
	add("wc", "wc [-l] [-w] [-c] [file...]", "count lines, words, and bytes")
	add("tr", "tr set1 set2 | tr -d set1", "translate or delete characters")
	add("cut", "cut -f fields [-d delimiter] [file...]", "extract selected fields")
	add("head", "head [-N] [file...]", "print the first N lines (default 10)")
	add("tail", "tail [-N] [file...]", "print the last N lines (default 10)")
	add("grep", "grep [-v] [-i] [-n] pattern [file...]", "filter lines matching a pattern")
	add("sort", "sort [-r] [-n] [-u] [file...]", "sort lines")
	add("uniq", "uniq [-c] [file...]", "collapse adjacent duplicate lines")
	add("rev", "rev [file...]", "reverse each line's characters")
	add("nl", "nl [-b] [file...]", "number lines")
	add("tee", "tee [file...]", "copy stdin to stdout and to files")

	return h
}

// GetHelp returns the help entry for name.
func (h *HelpSystem) GetHelp(name string) (*CommandHelp, error) {
	if c, ok := h.commands[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no help available for command: %s", name)
}

// FormatHelp renders one command's help entry.
func (h *HelpSystem) FormatHelp(name string) (string, error) {
	c, err := h.GetHelp(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "NAME\n    %s - %s\n\n", c.Name, c.Description)
	fmt.Fprintf(&b, "USAGE\n    %s\n", c.Usage)
	if len(c.Examples) > 0 {
		b.WriteString("\nEXAMPLES\n")
		for _, ex := range c.Examples {
			fmt.Fprintf(&b, "    %s\n        %s\n", ex.Command, ex.Description)
		}
	}
	return b.String(), nil
}

// FormatCommandList renders the full command table for bare `help`.
func (h *HelpSystem) FormatCommandList() string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("mishell builtins\n\n")
	for i, name := range names {
		fmt.Fprintf(&b, "    %-10s", name)
		if (i+1)%4 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\nuse `help NAME` for details on one command\n")
	return b.String()
}
