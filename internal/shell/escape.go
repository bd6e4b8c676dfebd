package shell

import (
	"errors"
	"strconv"
)

// ErrInvalidEscape reports an unrecognized escape letter or a malformed
// numeric escape.
var ErrInvalidEscape = errors.New("shell: invalid escape sequence")

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'?':  '?',
	'n':  '\n',
	't':  '\t',
	'a':  0x07,
	'b':  0x08,
	'e':  0x1B,
	'f':  0x0C,
	'r':  0x0D,
	'v':  0x0B,
}

// DecodeEscape decodes one escape sequence starting at s[pos] (the byte
// immediately after the backslash) and appends the decoded byte(s) to out.
// It returns the index of the first byte past the consumed sequence. On
// failure it returns ErrInvalidEscape with pos advanced to len(s), so the
// caller can treat the rest of the string as consumed.
func DecodeEscape(out []byte, s string, pos int) ([]byte, int, error) {
	if pos >= len(s) {
		return out, len(s), ErrInvalidEscape
	}
	c := s[pos]

	// \0' is a special two-character form for NUL.
	if c == '0' && pos+1 < len(s) && s[pos+1] == '\'' {
		return append(out, 0x00), pos + 2, nil
	}

	if c == 'z' {
		return append(out, zEndOfStream), pos + 1, nil
	}

	if c == 'x' {
		if pos+2 >= len(s) {
			return out, len(s), ErrInvalidEscape
		}
		n, err := strconv.ParseUint(s[pos+1:pos+3], 16, 8)
		if err != nil {
			return out, len(s), ErrInvalidEscape
		}
		return append(out, byte(n)), pos + 3, nil
	}

	if c >= '0' && c <= '7' {
		if pos+2 >= len(s) {
			return out, len(s), ErrInvalidEscape
		}
		n, err := strconv.ParseUint(s[pos:pos+3], 8, 8)
		if err != nil {
			return out, len(s), ErrInvalidEscape
		}
		return append(out, byte(n)), pos + 3, nil
	}

	if decoded, ok := simpleEscapes[c]; ok {
		return append(out, decoded), pos + 1, nil
	}

	return out, len(s), ErrInvalidEscape
}

// zEndOfStream is the decoded byte standing in for the "\z" end-of-stream
// marker: a NUL byte, the same byte the "\0'" form decodes to.
const zEndOfStream = 0x00

// PassthroughEscape copies the backslash and the bytes it would otherwise
// decode, verbatim, without interpreting them. Used when a later pass (the
// quote-preserving top-level split) must see the original source shape.
// It returns the index just past the copied sequence.
func PassthroughEscape(out []byte, s string, pos int) ([]byte, int) {
	out = append(out, '\\')
	if pos >= len(s) {
		return out, pos
	}
	n := 1
	switch {
	case s[pos] == '0' && pos+1 < len(s) && s[pos+1] == '\'':
		n = 2
	case s[pos] == 'x':
		n = 3
	case s[pos] >= '0' && s[pos] <= '7':
		n = 3
	}
	end := pos + n
	if end > len(s) {
		end = len(s)
	}
	out = append(out, s[pos:end]...)
	return out, end
}
