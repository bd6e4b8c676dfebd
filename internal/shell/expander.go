package shell

import "strconv"

// Capturer runs a command string through the pipeline executor and returns
// its captured standard output. It is satisfied by *Capture; kept as
// an interface so the expander and the capture driver can be tested in
// isolation from each other despite being mutually recursive at runtime.
type Capturer interface {
	Capture(command string) (string, error)
}

// Expander substitutes $?, $N, ${NAME}, and $(...) constructs in a line.
type Expander struct {
	Env    Environment
	Pos    Positional
	Status *Status
	Sub    Capturer
}

// Expand returns a copy of line with every $-construct resolved. It is
// idempotent on any line containing no '$': such a line is returned
// byte-identical.
func (e *Expander) Expand(line string) (string, error) {
	if !containsDollar(line) {
		return line, nil
	}

	frags := splitOnDollar(line)

	var out []byte
	out = append(out, frags[0]...)

	for i := 1; i < len(frags); {
		frag := frags[i]

		if frag == "" {
			i++
			continue
		}

		switch {
		case frag[0] == '(':
			end := matchingParen(frag)
			if end == -1 {
				if i+1 >= len(frags) {
					// Unbalanced with no more fragments to recover from:
					// abort expansion of the remainder.
					out = append(out, '$')
					out = append(out, frag...)
					return string(out), nil
				}
				frags[i+1] = frag + "$" + frags[i+1]
				i++
				continue
			}

			cmd := frag[1:end]
			result, err := e.Sub.Capture(cmd)
			if err != nil {
				return "", err
			}
			out = append(out, result...)
			out = append(out, frag[end+1:]...)
			i++

		case frag[0] == '{':
			key, tail, ok := splitBrace(frag)
			if !ok {
				out = append(out, e.Env.Get(frag[1:])...)
				i++
				continue
			}
			out = append(out, e.Env.Get(key)...)
			out = append(out, tail...)
			i++

		case frag[0] >= '0' && frag[0] <= '9':
			n, _ := strconv.Atoi(string(frag[0]))
			out = append(out, e.Pos.Get(n)...)
			out = append(out, frag[1:]...)
			i++

		case frag[0] == '?':
			out = append(out, e.Status.String()...)
			out = append(out, frag[1:]...)
			i++

		default:
			out = append(out, e.Env.Get(frag)...)
			i++
		}
	}

	return string(out), nil
}

func containsDollar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '$' {
			return true
		}
	}
	return false
}

func splitOnDollar(s string) []string {
	var frags []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '$' {
			frags = append(frags, s[start:i])
			start = i + 1
		}
	}
	frags = append(frags, s[start:])
	return frags
}

// matchingParen scans frag (which begins with '(') counting nested
// parentheses and returns the index of the matching ')', or -1 if frag
// does not close its own leading '(' (the nested-$(...) case, recovered by
// the caller via fragment re-merging).
func matchingParen(frag string) int {
	depth := 0
	for i := 0; i < len(frag); i++ {
		switch frag[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitBrace splits a "{NAME}..." fragment into the key and the bytes
// following the closing brace. ok is false when no closing brace exists.
func splitBrace(frag string) (key, tail string, ok bool) {
	for i := 1; i < len(frag); i++ {
		if frag[i] == '}' {
			return frag[1:i], frag[i+1:], true
		}
	}
	return "", "", false
}
