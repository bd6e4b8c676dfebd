package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
)

// BuiltinFunc is the signature shared by every in-process control
// built-in: it receives the shell it runs inside of, its already
// -tokenized argument vector, and the stage's stdin/stdout pipe ends,
// and returns a non-negative status on success, negative on failure.
type BuiltinFunc func(sh *Shell, args []string, in, out *os.File) int

// TextProcFunc is the signature for the text-processing built-in table
// — functions that never need shell state or to recurse into the
// pipeline executor, only their argv and streams, so they take the
// plain io.Reader/io.Writer interfaces rather than *os.File.
type TextProcFunc func(args []string, in io.Reader, out io.Writer) error

type fdPair struct {
	r *os.File
	w *os.File
}

// pipeline is one parsed plan: an ordered, non-empty sequence of command
// strings (pipeline stages), executed against a caller-supplied outer
// {read, write} descriptor pair.
type pipeline struct {
	shell  *Shell
	stages Vector
}

// run wires stages through N+1 pipe ends, launches every stage, reaps all
// children, and returns the pipeline's status. Every descriptor opened
// here is closed on every return path, and no child is left alive once
// run returns.
func (p *pipeline) run(in, out *os.File) (int, error) {
	n := len(p.stages)
	if n == 0 {
		return 0, nil
	}

	pairs := make([]fdPair, n+1)
	r0, err := dupFile(in)
	if err != nil {
		return -1, &IOError{Op: "dup stdin", Err: err}
	}
	pairs[0].r = r0

	wN, err := dupFile(out)
	if err != nil {
		r0.Close()
		return -1, &IOError{Op: "dup stdout", Err: err}
	}
	pairs[n].w = wN

	for i := 1; i < n; i++ {
		r, w, perr := os.Pipe()
		if perr != nil {
			closePairs(pairs)
			return -1, &IOError{Op: "pipe", Err: perr}
		}
		pairs[i].r = r
		pairs[i].w = w
	}
	defer closePairs(pairs)

	var children []*exec.Cmd
	var childrenMu sync.Mutex
	firstFailure := 0
	noteFailure := func(status int, err error) {
		if status < 0 && firstFailure == 0 {
			firstFailure = status
		}
		if err != nil {
			reportStageError(err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	stop := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			childrenMu.Lock()
			for _, c := range children {
				if c.Process != nil {
					_ = c.Process.Kill()
				}
			}
			childrenMu.Unlock()
		case <-stop:
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(stop)
	}()

	for i, stage := range p.stages {
		argv, terr := Tokenize(stage, " \t\v\n;", false)
		if terr != nil {
			noteFailure(-1, &ParseError{Context: stage, Err: terr})
			closeStagePair(pairs, i, n)
			continue
		}
		if len(argv) == 0 {
			closeStagePair(pairs, i, n)
			continue
		}
		name := argv[0]
		stdin, stdout := pairs[i].r, pairs[i+1].w

		switch {
		case p.shell.builtins[name] != nil:
			status := p.shell.builtins[name](p.shell, argv[1:], stdin, stdout)
			closeStagePair(pairs, i, n)
			if status < 0 {
				noteFailure(status, &BuiltinError{Name: name, Err: errNonZero(status)})
			}

		case p.shell.textproc[name] != nil:
			terr := p.shell.textproc[name](argv[1:], stdin, stdout)
			closeStagePair(pairs, i, n)
			if terr != nil {
				noteFailure(-1, &BuiltinError{Name: name, Err: terr})
			}

		default:
			cmd, serr := spawnChild(argv, stdin, stdout)
			closeStagePair(pairs, i, n)
			if serr != nil {
				noteFailure(-1, serr)
				continue
			}
			childrenMu.Lock()
			children = append(children, cmd)
			childrenMu.Unlock()
		}
	}

	reaped := 0
	lastStatus := 0
	for _, c := range children {
		err := c.Wait()
		reaped++
		status := childStatus(err)
		if status < 0 && firstFailure == 0 {
			firstFailure = status
			break
		}
		lastStatus = status
	}
	// Sweep: unconditionally kill and reap any child not yet waited for
	// because of an early failure above.
	for _, c := range children[reaped:] {
		if c.Process != nil {
			_ = c.Process.Kill()
			_, _ = c.Process.Wait()
		}
	}

	if firstFailure != 0 {
		return firstFailure, nil
	}
	return lastStatus, nil
}

func errNonZero(status int) error {
	return fmt.Errorf("exited with status %d", status)
}

// reportStageError reports a per-stage failure that does not abort the
// rest of the pipeline. SpawnError and IOError are internal/operational
// failures and go through the standard logger; ParseError and
// BuiltinError are the user's own mistakes (a bad escape, a missing
// operand) and are written directly to standard error without log
// decoration.
func reportStageError(err error) {
	switch err.(type) {
	case *SpawnError, *IOError:
		log.Print(err)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}

// closeStagePair closes the descriptors a launched stage no longer needs
// in the parent: its own read end, and the write end of the pipe feeding
// the next stage. The last stage has no pairs[i+1].w beyond the outer
// descriptor, which is closed the same way.
func closeStagePair(pairs []fdPair, i, n int) {
	if pairs[i].r != nil {
		pairs[i].r.Close()
		pairs[i].r = nil
	}
	if i+1 <= n && pairs[i+1].w != nil {
		pairs[i+1].w.Close()
		pairs[i+1].w = nil
	}
}

func closePairs(pairs []fdPair) {
	for idx := range pairs {
		if pairs[idx].r != nil {
			pairs[idx].r.Close()
			pairs[idx].r = nil
		}
		if pairs[idx].w != nil {
			pairs[idx].w.Close()
			pairs[idx].w = nil
		}
	}
}

// dupFile returns an independent *os.File referring to the same
// underlying descriptor as f, so the pipeline can close its own copy on
// every exit path without affecting the caller's descriptor: the outer
// endpoints are duplicated on entry precisely so they can be closed
// uniformly alongside the pipeline's own internal pipes.
func dupFile(f *os.File) (*os.File, error) {
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(fd), f.Name()), nil
}
