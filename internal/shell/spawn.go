package shell

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// spawnChild creates a child process that replaces its standard input with
// in, its standard output with out, and execs argv[0] from the search path
// inheriting the current environment. Standard error is left
// connected to the shell's own, matching the teacher's stderr-passthrough
// convention for spawned stages.
//
// Go has no direct fork+exec-with-arbitrary-fds primitive exposed at this
// level; os/exec.Cmd with Stdin/Stdout set to the pipe's *os.File ends is
// the idiomatic rendering: the runtime does the fork/dup2/exec sequence
// itself. On exec failure, cmd.Start returns an error before any child
// exists, which this function reports as a SpawnError; the caller records
// that as a negative (shell-level) pipeline status, unlike a child that
// ran and then failed, whose exit code is its status.
func spawnChild(argv []string, in, out *os.File) (*exec.Cmd, error) {
	path, err := lookPath(argv[0])
	if err != nil {
		return nil, &SpawnError{Command: argv[0], Err: err}
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Command: argv[0], Err: err}
	}
	return cmd, nil
}

// lookPath resolves name against PATH, confirming the candidate is
// actually executable (via unix.Access) rather than trusting exec.LookPath
// alone — PATH entries that are not directories or that 404 mid-search are
// silently skipped by the standard search, same as a real shell.
func lookPath(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		if unix.Access(path, unix.X_OK) == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

// childStatus converts a child's wait result into this shell's status
// convention: non-negative values mirror the child's low-order exit byte,
// negative values signal the shell's own internal failure to launch or
// wait for the child.
func childStatus(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode() & 0xFF
	}
	return -1
}
