package shell

import (
	"errors"
	"strings"
)

// ErrUnterminatedString reports a double-quoted region with no matching
// closing quote.
var ErrUnterminatedString = errors.New("shell: unterminated string literal")

// Tokenize splits line into words on any byte in delims, treating
// double-quoted regions as atomic. When keepQuotes is true the quote
// characters and any escapes inside them are copied through verbatim
// (used for the top-level '|' split, so inner quoting survives for the
// per-stage pass); when false, quotes are stripped and escapes decoded
// (used for the per-stage whitespace split that produces argv).
func Tokenize(line string, delims string, keepQuotes bool) (Vector, error) {
	var tokens Vector
	var cur []byte
	haveCur := false

	flush := func() {
		if haveCur {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
			haveCur = false
		}
	}

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '"':
			haveCur = true
			if keepQuotes {
				cur = append(cur, '"')
			}
			i++
			for i < len(line) && line[i] != '"' {
				if line[i] == '\\' {
					var err error
					if keepQuotes {
						cur, i = PassthroughEscape(cur, line, i+1)
					} else {
						cur, i, err = DecodeEscape(cur, line, i+1)
						if err != nil {
							return nil, err
						}
					}
					continue
				}
				cur = append(cur, line[i])
				i++
			}
			if i >= len(line) {
				return nil, ErrUnterminatedString
			}
			if keepQuotes {
				cur = append(cur, '"')
			}
			i++ // skip closing quote

		case strings.IndexByte(delims, c) >= 0:
			flush()
			i++

		default:
			haveCur = true
			cur = append(cur, c)
			i++
		}
	}
	flush()

	return tokens, nil
}

// stripComment truncates line at the first '#' that occurs outside a
// double-quoted region: a '#' outside quotes starts a comment running to
// end-of-line.
func stripComment(line string) string {
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case '\\':
			if inQuotes {
				i++ // skip the escaped byte, it cannot close the quote
			}
		case '#':
			if !inQuotes {
				return line[:i]
			}
		}
	}
	return line
}
