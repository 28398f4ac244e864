package tui

import "testing"

func TestIsInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	for _, env := range ciEnvVars {
		t.Setenv(env, "")
	}

	tests := []struct {
		name     string
		terminal bool
		ciEnv    string
		want     bool
	}{
		{"terminal outside CI", true, "", true},
		{"not a terminal", false, "", false},
		{"terminal in GitHub Actions", true, "GITHUB_ACTIONS", false},
		{"terminal with generic CI", true, "CI", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isTerminal = func(int) bool { return tt.terminal }
			if tt.ciEnv != "" {
				t.Setenv(tt.ciEnv, "true")
			}
			if got := IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}
