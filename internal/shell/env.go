package shell

import (
	"os"
	"os/user"
	"strconv"
)

// Environment is the process-wide name→value mapping the expander reads
// and the `set`/`unset`/`cd` built-ins mutate. It is backed directly by the
// host process environment: child processes inherit it at fork without any
// copy step on our side.
type Environment struct{}

// Get returns the value of name, or the empty string if unset.
func (Environment) Get(name string) string {
	return os.Getenv(name)
}

// Set assigns value to name.
func (Environment) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Unset removes name.
func (Environment) Unset(name string) error {
	return os.Unsetenv(name)
}

// All returns every entry as NAME=value strings, suitable for `set` with no
// arguments and for handing to a spawned child's environment.
func (Environment) All() []string {
	return os.Environ()
}

// CurrentUser returns the login name of the real UID, or the empty string
// if it cannot be determined.
func CurrentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

// Positional is a read-only view over the launcher's own argv, indexed by
// $0..$9. Index i outside [0, len) yields the empty string.
type Positional []string

// Get returns argument i, or "" if i is out of range.
func (p Positional) Get(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	return p[i]
}

// Status is the last-status register read by $? expansion. It holds
// the integer result of the most recently completed top-level pipeline;
// negative values are internal/fatal failures, non-negative values mirror
// a spawned child's low-order exit byte.
type Status struct {
	value int
}

// Set records status as the new last-status.
func (s *Status) Set(status int) {
	s.value = status
}

// Get returns the current last-status.
func (s *Status) Get() int {
	return s.value
}

// String renders the last-status as the decimal string $? expands to.
func (s *Status) String() string {
	return strconv.Itoa(s.value)
}
