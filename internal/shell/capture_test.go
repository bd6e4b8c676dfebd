package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureReturnsStdoutTrimmed(t *testing.T) {
	sh := NewShell(Positional{"mishell"})
	cap := &Capture{Shell: sh}

	out, err := cap.Capture("echo captured")
	require.NoError(t, err)
	require.Equal(t, "captured", out)
}

func TestCaptureNonZeroStatusYieldsEmptyString(t *testing.T) {
	sh := NewShell(Positional{"mishell"})
	cap := &Capture{Shell: sh}

	out, err := cap.Capture("this-command-does-not-exist-anywhere")
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestExpandDrivesCaptureForCommandSubstitution(t *testing.T) {
	sh := NewShell(Positional{"mishell"})
	e := sh.expander()

	got, err := e.Expand("value: $(echo nested)")
	require.NoError(t, err)
	require.Equal(t, "value: nested", got)
}
