package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrAborted is returned when the user leaves a form with ctrl+c or esc.
// It matches context.Canceled so the process exits as interrupted.
var ErrAborted = fmt.Errorf("form aborted: %w", context.Canceled)

// Option is one entry of a PromptForSelect list.
type Option struct {
	Label string
	Value string
}

// PromptForSelect asks the user to pick one option; the first is preselected.
func PromptForSelect(ctx context.Context, title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", stderrors.New("select prompt needs at least one option")
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	picked := options[0].Value
	field := huh.NewSelect[string]().Title(title).Options(opts...).Value(&picked)
	if err := runForm(ctx, huh.NewForm(huh.NewGroup(field))); err != nil {
		return "", err
	}
	return picked, nil
}

func runForm(ctx context.Context, form *huh.Form) error {
	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, huh.ErrUserAborted):
		return ErrAborted
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}

// ciMarkers are variables set by common CI runners.
var ciMarkers = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS", "CIRCLECI", "BUILDKITE"}

// InCI reports whether getenv shows a CI runner.
func InCI(getenv func(string) string) bool {
	for _, name := range ciMarkers {
		if getenv(name) != "" {
			return true
		}
	}
	return false
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldPrompt reports whether forms may be shown: stdin and stdout are
// terminals and no CI runner is detected.
func ShouldPrompt() bool {
	return !InCI(os.Getenv) && isTerminal()
}
