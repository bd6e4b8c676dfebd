// Package cli parses mishell's command-line surface and loads its
// small persisted config file.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sentinel control-flow errors, returned by ParseArgs instead of a
// Config when the caller should take a special action rather than run
// a shell.
var (
	ErrShowHelp = errors.New("show help")
)

// Config holds the parsed command-line surface: -c runs a single
// command string non-interactively, -i forces interactive mode even
// when stdin is not a terminal, and with neither flag the shell reads
// and runs lines from stdin until EOF.
type Config struct {
	Command     string // -c: run this string as one pipeline, then exit
	HasCommand  bool
	Interactive bool // -i: force readline-based interactive mode
	Verbose     bool // -v: verbose logging

	Args []string // remaining positional args become $1, $2, ...
}

// ParseArgs parses args (os.Args[1:]) into a Config.
func ParseArgs(args []string) (*Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mishell", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	// An unknown flag's usage goes to standard error; only an
	// explicit -h prints to standard output, via ErrShowHelp below.
	fs.Usage = func() { writeUsage(os.Stderr) }

	fs.StringVar(&cfg.Command, "c", "", "run STRING as a single pipeline and exit")
	fs.BoolVar(&cfg.Interactive, "i", false, "force interactive mode")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable verbose logging")

	var showHelp bool
	fs.BoolVar(&showHelp, "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showHelp {
		return nil, ErrShowHelp
	}

	cfg.HasCommand = fs.Lookup("c").Value.String() != ""
	cfg.Args = fs.Args()
	return &cfg, nil
}

// DefaultRCPath returns ~/.mishellrc, or "" if the home directory
// cannot be determined.
func DefaultRCPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mishellrc")
}

// ShowHelp prints mishell's usage summary to stdout, for an explicit -h.
func ShowHelp() {
	writeUsage(os.Stdout)
}

func writeUsage(w io.Writer) {
	fmt.Fprint(w, `mishell - a minimal POSIX-like pipeline shell

USAGE:
    mishell [OPTIONS] [ARGS...]

OPTIONS:
    -c STRING    run STRING as a single pipeline and exit
    -i           force interactive (readline) mode
    -v           enable verbose logging
    -h           show this help message

With no -c, mishell reads lines from stdin and runs each as a pipeline
until EOF; ARGS become $1, $2, ... for the duration of the run.

EXAMPLES:
    mishell -c 'echo hi | tr a-z A-Z'
    echo 'wc -l' | mishell
    mishell -i
`)
}
