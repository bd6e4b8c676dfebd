package builtin

import (
	"io"
	"strings"
	"testing"
)

func runCmd(t *testing.T, fn func(args []string, in io.Reader, out io.Writer) error, args []string, input string) string {
	t.Helper()
	var out strings.Builder
	if err := fn(args, strings.NewReader(input), &out); err != nil {
		t.Fatalf("command error: %v", err)
	}
	return out.String()
}

func TestEcho(t *testing.T) {
	if got := runCmd(t, Echo, []string{"hello", "world"}, ""); got != "hello world\n" {
		t.Errorf("Echo() = %q, want %q", got, "hello world\n")
	}
	if got := runCmd(t, Echo, []string{"-n", "no", "newline"}, ""); got != "no newline" {
		t.Errorf("Echo(-n) = %q, want %q", got, "no newline")
	}
}

func TestCat(t *testing.T) {
	got := runCmd(t, Cat, nil, "line one\nline two\n")
	want := "line one\nline two\n"
	if got != want {
		t.Errorf("Cat() = %q, want %q", got, want)
	}
}

func TestWc(t *testing.T) {
	got := runCmd(t, Wc, []string{"-l"}, "a\nb\nc\n")
	if got != "3\n" {
		t.Errorf("Wc(-l) = %q, want %q", got, "3\n")
	}
}

func TestTrDeletes(t *testing.T) {
	// -d's set is matched literally, character by character: no a-z
	// range expansion, matching the teacher's tr.go.
	got := runCmd(t, Tr, []string{"-d", "123"}, "a1b2c3\n")
	want := "abc\n"
	if got != want {
		t.Errorf("Tr(-d) = %q, want %q", got, want)
	}
}

func TestTrTranslates(t *testing.T) {
	got := runCmd(t, Tr, []string{"HELO", "helo"}, "HELLO\n")
	want := "hello\n"
	if got != want {
		t.Errorf("Tr() = %q, want %q", got, want)
	}
}

func TestCut(t *testing.T) {
	got := runCmd(t, Cut, []string{"-f", "1,3", "-d", ","}, "a,b,c\n")
	if got != "a,c\n" {
		t.Errorf("Cut() = %q, want %q", got, "a,c\n")
	}
}

func TestHeadTail(t *testing.T) {
	input := "1\n2\n3\n4\n5\n"
	if got := runCmd(t, Head, []string{"-2"}, input); got != "1\n2\n" {
		t.Errorf("Head(-2) = %q, want %q", got, "1\n2\n")
	}
	if got := runCmd(t, Tail, []string{"-2"}, input); got != "4\n5\n" {
		t.Errorf("Tail(-2) = %q, want %q", got, "4\n5\n")
	}
}

func TestGrep(t *testing.T) {
	input := "apple\nbanana\ncherry\n"
	if got := runCmd(t, Grep, []string{"an"}, input); got != "banana\n" {
		t.Errorf("Grep() = %q, want %q", got, "banana\n")
	}
	if got := runCmd(t, Grep, []string{"-v", "an"}, input); got != "apple\ncherry\n" {
		t.Errorf("Grep(-v) = %q, want %q", got, "apple\ncherry\n")
	}
}

func TestSort(t *testing.T) {
	input := "banana\napple\ncherry\n"
	want := "apple\nbanana\ncherry\n"
	if got := runCmd(t, Sort, nil, input); got != want {
		t.Errorf("Sort() = %q, want %q", got, want)
	}
}

func TestUniq(t *testing.T) {
	input := "a\na\nb\nb\nb\nc\n"
	want := "a\nb\nc\n"
	if got := runCmd(t, Uniq, nil, input); got != want {
		t.Errorf("Uniq() = %q, want %q", got, want)
	}
}

func TestRev(t *testing.T) {
	if got := runCmd(t, Rev, nil, "hello\n"); got != "olleh\n" {
		t.Errorf("Rev() = %q, want %q", got, "olleh\n")
	}
}

func TestNl(t *testing.T) {
	got := runCmd(t, Nl, nil, "a\nb\n")
	want := "     1\ta\n     2\tb\n"
	if got != want {
		t.Errorf("Nl() = %q, want %q", got, want)
	}
}
