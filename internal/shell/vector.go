// Package shell implements the line-level parser/expander, the pipeline
// executor, and the command-substitution engine described by the project's
// interpreter core.
package shell

import "strings"

// Vector is an ordered sequence of independently owned strings, the
// word-level representation produced by Split and consumed by Join.
type Vector []string

// Split breaks input into a Vector on any byte in delims. Consecutive
// delimiter bytes collapse: no empty tokens are produced, matching the
// tokenizer's own whitespace handling.
func Split(input string, delims string) Vector {
	if delims == "" {
		if input == "" {
			return nil
		}
		return Vector{input}
	}
	return Vector(strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	}))
}

// Join concatenates v with sep between elements, optionally wrapping the
// result with head and tail. An empty Vector yields head+tail (the empty
// string when both are unset).
func Join(v Vector, sep, head, tail string) string {
	var b strings.Builder
	b.WriteString(head)
	b.WriteString(strings.Join([]string(v), sep))
	b.WriteString(tail)
	return b.String()
}

// Len reports the number of elements in v.
func Len(v Vector) int {
	return len(v)
}

// Release drops v's backing storage. The host runtime is garbage collected,
// so this only clears the caller's reference; it exists to mark the points
// in the core where the C rendering would free a vector.
func Release(v *Vector) {
	*v = nil
}
