package cli

import "testing"

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     error
		wantCommand string
		wantHas     bool
		wantInter   bool
	}{
		{
			name:        "command flag",
			args:        []string{"-c", "echo hi"},
			wantCommand: "echo hi",
			wantHas:     true,
		},
		{
			name:      "interactive flag",
			args:      []string{"-i"},
			wantInter: true,
		},
		{
			name:    "help flag",
			args:    []string{"-h"},
			wantErr: ErrShowHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if err != tt.wantErr {
				t.Fatalf("ParseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Command != tt.wantCommand || got.HasCommand != tt.wantHas {
				t.Errorf("ParseArgs() Command=%q HasCommand=%v, want %q/%v", got.Command, got.HasCommand, tt.wantCommand, tt.wantHas)
			}
			if got.Interactive != tt.wantInter {
				t.Errorf("ParseArgs() Interactive = %v, want %v", got.Interactive, tt.wantInter)
			}
		})
	}
}

func TestParseArgsPositional(t *testing.T) {
	got, err := ParseArgs([]string{"arg1", "arg2"})
	if err != nil {
		t.Fatalf("ParseArgs() error: %v", err)
	}
	if len(got.Args) != 2 || got.Args[0] != "arg1" || got.Args[1] != "arg2" {
		t.Errorf("ParseArgs() Args = %v, want [arg1 arg2]", got.Args)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	if _, err := ParseArgs([]string{"-bogus"}); err == nil {
		t.Fatal("ParseArgs(-bogus) expected error, got none")
	}
}
