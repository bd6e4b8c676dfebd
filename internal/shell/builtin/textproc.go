// Package builtin provides the text-processing command table that runs
// in-process alongside the external-exec path of the pipeline executor.
// Each command has the shape shell.TextProcFunc: it never forks, so it
// shares the same inline-execution branch as the control built-ins
// (cd, set, unset, ...) defined in the parent shell package.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/arata-dev/mishell/internal/utils"
)

// Commands maps a command word to its implementation. The pipeline
// executor consults this table before falling back to an external exec.
var Commands = map[string]func(args []string, stdin io.Reader, stdout io.Writer) error{
	"cat":   Cat,
	"echo":  Echo,
	"wc":    Wc,
	"tr":    Tr,
	"cut":   Cut,
	"head":  Head,
	"tail":  Tail,
	"grep":  Grep,
	"sort":  Sort,
	"uniq":  Uniq,
	"rev":   Rev,
	"nl":    Nl,
	"tee":   Tee,
}

// processInput runs fn over the concatenation of every named file in
// args, or over stdin when args contains no bare filename (every
// argument in args is assumed to already have its flags stripped by the
// caller). A named file that cannot be opened is reported and skipped,
// matching cat(1)'s behavior of continuing with the remaining operands.
func processInput(files []string, stdin io.Reader, fn func(io.Reader) error) error {
	if len(files) == 0 {
		return fn(stdin)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			continue
		}
		err = fn(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// Cat copies every named file, or stdin if none, to stdout.
func Cat(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, _ := HandleHelp(args, stdout, `cat - concatenate files and print on stdout

Usage: cat [file...]
`); handled {
		return nil
	}
	return processInput(args, stdin, func(input io.Reader) error {
		_, err := io.Copy(stdout, input)
		return err
	})
}

// Echo writes its arguments, space-joined, followed by a newline. -n
// suppresses the trailing newline.
func Echo(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, _ := HandleHelp(args, stdout, `echo - display a line of text

Usage: echo [-n] [string...]
`); handled {
		return nil
	}
	noNewline := false
	if len(args) > 0 && args[0] == "-n" {
		noNewline = true
		args = args[1:]
	}
	out := strings.Join(args, " ")
	if noNewline {
		fmt.Fprint(stdout, out)
	} else {
		fmt.Fprintln(stdout, out)
	}
	return nil
}

// Wc counts lines, words, and bytes. -l/-w/-c restrict to a single count;
// with none given all three are printed.
func Wc(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `wc - print newline, word, and byte counts

Usage: wc [-l] [-w] [-c] [file...]
`); handled {
		return nil
	} else {
		args = rest
	}

	var showLines, showWords, showBytes bool
	var files []string
	for _, a := range args {
		switch a {
		case "-l":
			showLines = true
		case "-w":
			showWords = true
		case "-c":
			showBytes = true
		default:
			files = append(files, a)
		}
	}
	if !showLines && !showWords && !showBytes {
		showLines, showWords, showBytes = true, true, true
	}

	lines, words, bytes := 0, 0, 0
	err := processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			text := scanner.Text()
			lines++
			bytes += len(text) + 1
			words += len(strings.Fields(text))
		}
		return scanner.Err()
	})
	if err != nil {
		return err
	}

	var parts []string
	if showLines {
		parts = append(parts, strconv.Itoa(lines))
	}
	if showWords {
		parts = append(parts, strconv.Itoa(words))
	}
	if showBytes {
		parts = append(parts, strconv.Itoa(bytes))
	}
	fmt.Fprintln(stdout, strings.Join(parts, " "))
	return nil
}

// Tr translates or deletes characters. tr -d set1 deletes every
// character in set1; tr set1 set2 maps set1[i] to set2[i] for the
// overlapping prefix of the two sets.
func Tr(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `tr - translate or delete characters

Usage: tr set1 set2
       tr -d set1
`); handled {
		return nil
	} else {
		args = rest
	}

	if len(args) < 1 {
		return fmt.Errorf("tr: missing operand")
	}

	if args[0] == "-d" {
		if len(args) < 2 {
			return fmt.Errorf("tr: missing character set")
		}
		del := make(map[rune]bool)
		for _, r := range args[1] {
			del[r] = true
		}
		return processInput(nil, stdin, func(input io.Reader) error {
			scanner := bufio.NewScanner(input)
			for scanner.Scan() {
				var b strings.Builder
				for _, r := range scanner.Text() {
					if !del[r] {
						b.WriteRune(r)
					}
				}
				fmt.Fprintln(stdout, b.String())
			}
			return scanner.Err()
		})
	}

	if len(args) < 2 {
		return fmt.Errorf("tr: missing operand")
	}
	from, to := []rune(args[0]), []rune(args[1])
	table := make(map[rune]rune, len(from))
	for i := 0; i < len(from) && i < len(to); i++ {
		table[from[i]] = to[i]
	}
	return processInput(nil, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			var b strings.Builder
			for _, r := range scanner.Text() {
				if rep, ok := table[r]; ok {
					b.WriteRune(rep)
				} else {
					b.WriteRune(r)
				}
			}
			fmt.Fprintln(stdout, b.String())
		}
		return scanner.Err()
	})
}

// Cut extracts the fields named by -f (1-indexed, comma-separated) from
// each line, splitting on -d (default tab).
func Cut(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `cut - extract selected fields from each line

Usage: cut -f fields [-d delimiter] [file...]
`); handled {
		return nil
	} else {
		args = rest
	}

	var fields []int
	delim := "\t"
	var files []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f":
			i++
			if i >= len(args) {
				return fmt.Errorf("cut: -f requires an argument")
			}
			for _, s := range strings.Split(args[i], ",") {
				if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
					fields = append(fields, n-1)
				}
			}
		case "-d":
			i++
			if i >= len(args) {
				return fmt.Errorf("cut: -d requires an argument")
			}
			delim = args[i]
		default:
			files = append(files, args[i])
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("cut: you must specify a list of fields")
	}

	return processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			parts := strings.Split(scanner.Text(), delim)
			var selected []string
			for _, f := range fields {
				if f < len(parts) {
					selected = append(selected, parts[f])
				}
			}
			fmt.Fprintln(stdout, strings.Join(selected, delim))
		}
		return scanner.Err()
	})
}

// Head prints the first n lines (default 10). n is given as -N or
// -n N.
func Head(args []string, stdin io.Reader, stdout io.Writer) error {
	n, files, err := utils.ParseLineCountArgument(args, 10)
	if err != nil {
		return fmt.Errorf("head: %w", err)
	}
	return processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for i := 0; i < n && scanner.Scan(); i++ {
			fmt.Fprintln(stdout, scanner.Text())
		}
		return scanner.Err()
	})
}

// Tail prints the last n lines (default 10). n is given as -N or
// -n N.
func Tail(args []string, stdin io.Reader, stdout io.Writer) error {
	n, files, err := utils.ParseLineCountArgument(args, 10)
	if err != nil {
		return fmt.Errorf("tail: %w", err)
	}
	var lines []string
	err = processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		return scanner.Err()
	})
	if err != nil {
		return err
	}
	start := len(lines) - n
	if start < 0 {
		start = 0
	}
	for _, l := range lines[start:] {
		fmt.Fprintln(stdout, l)
	}
	return nil
}

// Grep filters lines matching pattern (a Go regexp). -v inverts, -i
// ignores case, -n prefixes the 1-based line number.
func Grep(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("grep: missing pattern")
	}
	var invert, ignoreCase, lineNumber bool
	var pattern string
	var files []string
	for _, a := range args {
		switch {
		case a == "-v":
			invert = true
		case a == "-i":
			ignoreCase = true
		case a == "-n":
			lineNumber = true
		case pattern == "":
			pattern = a
		default:
			files = append(files, a)
		}
	}
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("grep: %w", err)
	}
	return processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		lineNum := 1
		for scanner.Scan() {
			line := scanner.Text()
			if re.MatchString(line) != invert {
				if lineNumber {
					fmt.Fprintf(stdout, "%d:%s\n", lineNum, line)
				} else {
					fmt.Fprintln(stdout, line)
				}
			}
			lineNum++
		}
		return scanner.Err()
	})
}

// Sort orders lines lexically, or numerically with -n; -r reverses, -u
// drops adjacent-after-sort duplicates.
func Sort(args []string, stdin io.Reader, stdout io.Writer) error {
	var reverse, numeric, unique bool
	var files []string
	for _, a := range args {
		switch a {
		case "-r":
			reverse = true
		case "-n":
			numeric = true
		case "-u":
			unique = true
		default:
			files = append(files, a)
		}
	}

	var lines []string
	err := processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		return scanner.Err()
	})
	if err != nil {
		return err
	}

	less := func(i, j int) bool { return lines[i] < lines[j] }
	if numeric {
		less = func(i, j int) bool {
			a, errA := strconv.ParseFloat(strings.TrimSpace(lines[i]), 64)
			b, errB := strconv.ParseFloat(strings.TrimSpace(lines[j]), 64)
			if errA != nil || errB != nil {
				return lines[i] < lines[j]
			}
			return a < b
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		r := less(i, j)
		if reverse {
			return !r
		}
		return r
	})

	if unique {
		var out []string
		for i, l := range lines {
			if i == 0 || l != lines[i-1] {
				out = append(out, l)
			}
		}
		lines = out
	}

	for _, l := range lines {
		fmt.Fprintln(stdout, l)
	}
	return nil
}

// Uniq collapses runs of adjacent identical lines to one; -c prefixes
// the run's occurrence count.
func Uniq(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `uniq - collapse adjacent duplicate lines

Usage: uniq [-c] [file...]
`); handled {
		return nil
	} else {
		args = rest
	}

	var count bool
	var files []string
	for _, a := range args {
		if a == "-c" {
			count = true
		} else {
			files = append(files, a)
		}
	}

	emit := func(line string, n int) {
		if count {
			fmt.Fprintf(stdout, "%6d %s\n", n, line)
		} else {
			fmt.Fprintln(stdout, line)
		}
	}

	return processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		var last string
		n := 0
		for scanner.Scan() {
			line := scanner.Text()
			if n > 0 && line != last {
				emit(last, n)
				n = 0
			}
			last = line
			n++
		}
		if n > 0 {
			emit(last, n)
		}
		return scanner.Err()
	})
}

// Rev reverses each line's characters.
func Rev(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `rev - reverse each line character by character

Usage: rev [file...]
`); handled {
		return nil
	} else {
		args = rest
	}
	return processInput(args, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			runes := []rune(scanner.Text())
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			fmt.Fprintln(stdout, string(runes))
		}
		return scanner.Err()
	})
}

// Nl numbers lines; -b restricts numbering to non-blank lines.
func Nl(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `nl - number lines

Usage: nl [-b] [file...]
`); handled {
		return nil
	} else {
		args = rest
	}
	var nonEmptyOnly bool
	var files []string
	for _, a := range args {
		if a == "-b" {
			nonEmptyOnly = true
		} else {
			files = append(files, a)
		}
	}
	return processInput(files, stdin, func(input io.Reader) error {
		scanner := bufio.NewScanner(input)
		n := 1
		for scanner.Scan() {
			line := scanner.Text()
			if nonEmptyOnly && strings.TrimSpace(line) == "" {
				fmt.Fprintln(stdout, line)
				continue
			}
			fmt.Fprintf(stdout, "%6d\t%s\n", n, line)
			n++
		}
		return scanner.Err()
	})
}

// Tee copies stdin to stdout and to every named file, truncating each
// first. Unlike its POSIX namesake's -a flag this has no append mode,
// matching the scope this table commits to.
func Tee(args []string, stdin io.Reader, stdout io.Writer) error {
	if handled, rest := HandleHelp(args, stdout, `tee - copy stdin to stdout and to files

Usage: tee [file...]
`); handled {
		return nil
	} else {
		args = rest
	}

	writers := []io.Writer{stdout}
	var files []*os.File
	for _, name := range args {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("tee: %w", err)
		}
		files = append(files, f)
		writers = append(writers, f)
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	_, err := io.Copy(io.MultiWriter(writers...), stdin)
	return err
}
