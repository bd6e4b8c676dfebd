package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		delims   string
		expected Vector
	}{
		{"a b c", " ", Vector{"a", "b", "c"}},
		{"a:b::c", ":", Vector{"a", "b", "c"}},
		{"", " ", nil},
		{"solo", "", Vector{"solo"}},
		{"", "", nil},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := Split(test.input, test.delims)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Split(%q, %q) mismatch (-want +got):\n%s", test.input, test.delims, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	v := Vector{"a", "b", "c"}
	got := Join(v, ",", "[", "]")
	want := "[a,b,c]"
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestLen(t *testing.T) {
	if got := Len(Vector{"a", "b"}); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := Len(nil); got != 0 {
		t.Errorf("Len(nil) = %d, want 0", got)
	}
}

func TestRelease(t *testing.T) {
	v := Vector{"a", "b"}
	Release(&v)
	if v != nil {
		t.Errorf("Release() left v = %v, want nil", v)
	}
}
