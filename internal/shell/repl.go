package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/arata-dev/mishell/internal/promptcfg"
)

// REPL drives one run of the read-eval-print loop: refresh PWD and USER,
// strip comments, expand, split on '|', execute, record $?, and repeat
// until EOF or a negative (fatal) status.
type REPL struct {
	Shell       *Shell
	Interactive bool
}

// Run reads lines from in and writes command output to out until EOF.
// When Interactive is set, in is not used: readline reads the process's
// own stdin, with history and line editing.
func (r *REPL) Run(in *os.File, out *os.File) int {
	if r.Interactive {
		return r.runInteractive(out)
	}
	return r.runScripted(in, out)
}

func (r *REPL) runScripted(in, out *os.File) int {
	scanner := bufio.NewScanner(in)
	status := 0
	for scanner.Scan() {
		status = r.runOneLine(scanner.Text(), in, out)
		if status < 0 {
			break
		}
	}
	return status
}

func (r *REPL) runInteractive(out *os.File) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptcfg.Resolve(0),
		HistoryFile:     os.ExpandEnv("$HOME/.mishell_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer rl.Close()

	status := 0
	for {
		rl.SetPrompt(promptcfg.Resolve(status))
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			break
		}
		if line == "" {
			continue
		}
		status = r.runOneLine(line, os.Stdin, out)
		if status < 0 {
			break
		}
	}
	return status
}

func (r *REPL) runOneLine(line string, in, out *os.File) int {
	r.Shell.Env.Set("PWD", getwd())
	if u := CurrentUser(); u != "" {
		r.Shell.Env.Set("USER", u)
	}

	status, err := r.Shell.RunLine(line, in, out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return status
}

func getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
