package shell

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// controlBuiltins returns the shell's control built-in table: cd, exit,
// help, set, unset, source, eval. These run inline in the parent process
// and share BuiltinFunc's *os.File-based signature, since source and
// eval need real descriptors to recurse into RunLine.
func controlBuiltins() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{
		"cd":     builtinCd,
		"exit":   builtinExit,
		"help":   builtinHelp,
		"set":    builtinSet,
		"unset":  builtinUnset,
		"source": builtinSource,
		"eval":   builtinEval,
	}
}

// builtinCd changes the working directory to args[0]. With no argument
// it returns -1 rather than falling back to $HOME.
func builtinCd(sh *Shell, args []string, in, out *os.File) int {
	if len(args) == 0 {
		reportStageError(&BuiltinError{Name: "cd", Err: fmt.Errorf("missing directory operand")})
		return -1
	}
	if err := os.Chdir(args[0]); err != nil {
		reportStageError(&BuiltinError{Name: "cd", Err: err})
		return -1
	}
	return 0
}

// builtinExit terminates the process with the given status, or 0. This
// built-in ends the shell outright rather than returning to its caller.
func builtinExit(sh *Shell, args []string, in, out *os.File) int {
	os.Exit(parseExitCode(args))
	return 0 // unreachable
}

// parseExitCode extracts exit's numeric argument, defaulting to 0 for
// no argument or one that does not parse as decimal. Split out of
// builtinExit so the parsing rule is testable without invoking os.Exit.
func parseExitCode(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0
	}
	return n
}

// builtinHelp prints the command list, or one command's usage when
// named.
func builtinHelp(sh *Shell, args []string, in, out *os.File) int {
	if len(args) == 0 {
		fmt.Fprint(out, sh.Help.FormatCommandList())
		return 0
	}
	text, err := sh.Help.FormatHelp(args[0])
	if err != nil {
		fmt.Fprintf(out, "no help available for command: %s\n", args[0])
		return -1
	}
	fmt.Fprint(out, text)
	return 0
}

// builtinSet assigns NAME=value for every argument of that form, or
// lists the whole environment with no arguments.
func builtinSet(sh *Shell, args []string, in, out *os.File) int {
	if len(args) == 0 {
		for _, kv := range sh.Env.All() {
			fmt.Fprintln(out, kv)
		}
		return 0
	}
	status := 0
	for _, a := range args {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			reportStageError(&BuiltinError{Name: "set", Err: fmt.Errorf("%q: not NAME=value", a)})
			status = -1
			continue
		}
		if err := sh.Env.Set(name, value); err != nil {
			reportStageError(&BuiltinError{Name: "set", Err: err})
			status = -1
		}
	}
	return status
}

// builtinUnset removes each named variable.
func builtinUnset(sh *Shell, args []string, in, out *os.File) int {
	status := 0
	for _, name := range args {
		if err := sh.Env.Unset(name); err != nil {
			reportStageError(&BuiltinError{Name: "unset", Err: err})
			status = -1
		}
	}
	return status
}

// builtinSource reads each named file and runs its lines through
// RunLine in turn, as if they had been typed at the REPL, using the
// caller's own in/out descriptors for any commands that read or write.
func builtinSource(sh *Shell, args []string, in, out *os.File) int {
	if len(args) == 0 {
		reportStageError(&BuiltinError{Name: "source", Err: fmt.Errorf("missing file operand")})
		return -1
	}
	status := 0
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			reportStageError(&BuiltinError{Name: "source", Err: err})
			status = -1
			continue
		}
		status = sourceLines(sh, f, in, out)
		f.Close()
	}
	return status
}

func sourceLines(sh *Shell, f *os.File, in, out *os.File) int {
	scanner := bufio.NewScanner(f)
	status := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var err error
		status, err = sh.RunLine(line, in, out)
		if err != nil {
			reportStageError(err)
		}
	}
	return status
}

// builtinEval re-quotes each argument individually, space-joins the
// result, expands that, and runs it through RunLine. Quoting each word
// on its own keeps eval's arguments as separate words once the tokenizer
// re-splits the rejoined line: wrapping the whole joined string in one
// pair of quotes (the earlier approach) made the entire line a single
// atomic token, so `eval echo hi` never reached `echo` with `hi` as its
// argument. A literal `"` or `\` inside an argument is backslash-escaped
// so it decodes back to itself rather than closing the quote early.
func builtinEval(sh *Shell, args []string, in, out *os.File) int {
	if len(args) == 0 {
		return 0
	}
	line := quoteWords(args)
	expanded, err := sh.expander().Expand(line)
	if err != nil {
		reportStageError(&BuiltinError{Name: "eval", Err: err})
		return -1
	}
	status, err := sh.RunLine(expanded, in, out)
	if err != nil {
		reportStageError(err)
		return -1
	}
	return status
}

// quoteWords quotes each of args individually and joins the results
// with a single space, so each argument re-tokenizes as one word
// regardless of embedded whitespace.
func quoteWords(args []string) string {
	words := make([]string, len(args))
	for i, a := range args {
		words[i] = quoteWord(a)
	}
	return strings.Join(words, " ")
}

// quoteWord wraps s in double quotes, backslash-escaping any byte that
// would otherwise be significant to the tokenizer's quote scan (`"` and
// `\`) so the word decodes back to s exactly.
func quoteWord(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
