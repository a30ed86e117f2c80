package tui

import (
	"context"
	"errors"
	"testing"
)

func TestInCI(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"github actions", map[string]string{"GITHUB_ACTIONS": "true"}, true},
		{"gitlab", map[string]string{"GITLAB_CI": "true"}, true},
		{"jenkins", map[string]string{"JENKINS_URL": "http://jenkins.local"}, true},
		{"generic", map[string]string{"CI": "1"}, true},
		{"developer shell", map[string]string{"TERM": "xterm-256color"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := InCI(getenv); got != tt.want {
				t.Errorf("InCI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldPrompt_DisabledInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if ShouldPrompt() {
		t.Error("ShouldPrompt() should be false in CI")
	}
}

func TestPromptForSelect_NoOptions(t *testing.T) {
	if _, err := PromptForSelect(context.Background(), "Plan", nil); err == nil {
		t.Error("expected an error without options")
	}
}

func TestErrAborted(t *testing.T) {
	if !errors.Is(ErrAborted, context.Canceled) {
		t.Error("ErrAborted should match context.Canceled")
	}
}
