package shell

import (
	"os"

	shellbuiltin "github.com/arata-dev/mishell/internal/shell/builtin"
)

// Shell is the top-level object wiring together the environment, the
// control built-in table, the text-processing built-in table, and the
// last-status register the expander and REPL both read.
type Shell struct {
	Env      Environment
	Pos      Positional
	Status   Status
	Help     *HelpSystem
	builtins map[string]BuiltinFunc
	textproc map[string]TextProcFunc
}

// NewShell builds a Shell whose positional parameters are pos (pos[0] is
// $0, the program name) and whose built-in tables are populated with the
// control built-ins and the text-processing built-in table.
func NewShell(pos Positional) *Shell {
	sh := &Shell{
		Pos:      pos,
		builtins: controlBuiltins(),
		textproc: make(map[string]TextProcFunc, len(shellbuiltin.Commands)),
	}
	sh.Help = NewHelpSystem()
	for name, fn := range shellbuiltin.Commands {
		sh.textproc[name] = TextProcFunc(fn)
	}
	return sh
}

// expander returns an Expander bound to this shell's environment,
// positional parameters, status register, and capture driver.
func (sh *Shell) expander() *Expander {
	return &Expander{Env: sh.Env, Pos: sh.Pos, Status: &sh.Status, Sub: &Capture{Shell: sh}}
}

// RunLine expands, parses, and executes one input line as a pipeline,
// driving the stages against in/out, and recording the resulting status
// in sh.Status. It returns the same status as the error-reporting
// convention used throughout this package: negative on a shell-internal
// failure, non-negative on a completed pipeline.
func (sh *Shell) RunLine(line string, in, out *os.File) (int, error) {
	line = stripComment(line)

	expanded, err := sh.expander().Expand(line)
	if err != nil {
		sh.Status.Set(-1)
		return -1, err
	}

	stages, err := Tokenize(expanded, "|", true)
	if err != nil {
		sh.Status.Set(-1)
		return -1, &ParseError{Context: expanded, Err: err}
	}
	if len(stages) == 0 {
		return sh.Status.Get(), nil
	}

	p := &pipeline{shell: sh, stages: stages}
	status, err := p.run(in, out)
	if err != nil {
		sh.Status.Set(-1)
		return -1, err
	}
	sh.Status.Set(status)
	return status, nil
}
