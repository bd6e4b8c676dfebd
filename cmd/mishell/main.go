package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arata-dev/mishell/internal/cli"
	"github.com/arata-dev/mishell/internal/shell"
)

const (
	appName = "mishell"
)

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		switch err {
		case cli.ErrShowHelp:
			cli.ShowHelp()
			os.Exit(0)
		default:
			// ParseArgs's flag.FlagSet already wrote usage to standard
			// error via its Usage hook.
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			os.Exit(normalizeExit(-1))
		}
	}

	if cfg.Verbose {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}

	rc, err := cli.LoadRCFile(cli.DefaultRCPath())
	if err != nil {
		log.Printf("loading rc file: %v", err)
	} else {
		if rc.Prompt != "" {
			if _, set := os.LookupEnv("PROMPT"); !set {
				os.Setenv("PROMPT", rc.Prompt)
			}
		}
		if len(rc.SearchPath) > 0 {
			os.Setenv("PATH", strings.Join(rc.SearchPath, string(os.PathListSeparator))+string(os.PathListSeparator)+os.Getenv("PATH"))
		}
	}

	pos := shell.Positional(append([]string{appName}, cfg.Args...))
	sh := shell.NewShell(pos)

	status := run(sh, cfg)
	os.Exit(normalizeExit(status))
}

func run(sh *shell.Shell, cfg *cli.Config) int {
	if cfg.HasCommand {
		status, err := sh.RunLine(cfg.Command, os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return status
	}

	repl := &shell.REPL{Shell: sh, Interactive: cfg.Interactive || isTerminal(os.Stdin)}
	return repl.Run(os.Stdin, os.Stdout)
}

// normalizeExit clamps the shell's internal status convention (negative
// meaning a shell-level failure) to a valid process exit code.
func normalizeExit(status int) int {
	if status < 0 {
		return 1
	}
	return status & 0xFF
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
