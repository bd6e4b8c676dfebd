package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		delims     string
		keepQuotes bool
		want       Vector
		wantErr    bool
	}{
		{
			name:   "plain words",
			line:   "cat file.txt",
			delims: " \t",
			want:   Vector{"cat", "file.txt"},
		},
		{
			name:       "quoted word strips quotes",
			line:       `echo "hello world"`,
			delims:     " \t",
			keepQuotes: false,
			want:       Vector{"echo", "hello world"},
		},
		{
			name:       "quoted word keeps quotes",
			line:       `echo "hello world"`,
			delims:     " \t",
			keepQuotes: true,
			want:       Vector{"echo", `"hello world"`},
		},
		{
			name:   "pipe split",
			line:   "cat file.txt | grep foo",
			delims: "|",
			want:   Vector{"cat file.txt ", " grep foo"},
		},
		{
			name:    "unterminated quote",
			line:    `echo "oops`,
			delims:  " ",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Tokenize(test.line, test.delims, test.keepQuotes)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Tokenize(%q) expected error, got none", test.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", test.line, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", test.line, diff)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"echo hi # trailing comment", "echo hi "},
		{`echo "a # b"`, `echo "a # b"`},
		{"no comment here", "no comment here"},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			if got := stripComment(test.line); got != test.want {
				t.Errorf("stripComment(%q) = %q, want %q", test.line, got, test.want)
			}
		})
	}
}
