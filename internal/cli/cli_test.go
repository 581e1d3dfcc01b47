package cli

import "testing"

func TestCommandTree(t *testing.T) {
	want := map[string]bool{"generate": false, "serve": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestGenerateFlagDefaults(t *testing.T) {
	cmd := newGenerateCmd()

	tests := []struct {
		flag string
		want string
	}{
		{"type", "general"},
		{"difficulty", "intermediate"},
		{"name", ""},
		{"max-tokens", "1500"},
		{"temperature", "0.9"},
		{"output", "projects"},
		{"git-init", "false"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag --%s missing", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestServeFlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	f := cmd.Flags().Lookup("addr")
	if f == nil {
		t.Fatal("flag --addr missing")
	}
	if f.DefValue != ":8080" {
		t.Errorf("--addr default = %q, want :8080", f.DefValue)
	}
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"log-level", "log-format"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s missing", name)
		}
	}
}
