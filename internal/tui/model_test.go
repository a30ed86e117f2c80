package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, load StatusLoader) ProfileModel {
	t.Helper()
	tr := i18n.New(i18n.English)
	r := NewRenderer(tr, theme.New(theme.Dark, true))
	return NewProfileModel(context.Background(), r, tr, ProfileOptions{
		User:       &domain.UserRecord{ID: "42", Name: "Jane Doe", Email: "jane@example.com"},
		Mode:       theme.Dark,
		Lang:       i18n.English,
		LoadStatus: load,
	})
}

func update(t *testing.T, m ProfileModel, msg tea.Msg) (ProfileModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(ProfileModel), cmd
}

func TestProfileModel_InitialView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "Jane Doe <jane@example.com>")
	assert.Contains(t, view, "Personal information")
	assert.Equal(t, TabProfile, m.ActiveTab())
	assert.Nil(t, m.Init(), "no loader means nothing to fetch")
}

func TestProfileModel_TabNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, TabSecurity, m.ActiveTab())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, TabPremium, m.ActiveTab(), "wraps around")

	m, _ = update(t, m, runes("3"))
	assert.Equal(t, TabPreferences, m.ActiveTab())
	assert.Contains(t, m.View(), "Dark mode")

	m, _ = update(t, m, runes("9"))
	assert.Equal(t, TabPreferences, m.ActiveTab(), "out of range digit is ignored")
}

func TestProfileModel_LoadsStatus(t *testing.T) {
	calls := 0
	m := newTestModel(t, func(context.Context) (*domain.SubscriptionStatus, error) {
		calls++
		return &domain.SubscriptionStatus{Status: domain.StatusTrial, PlanName: "Pro"}, nil
	})
	m, _ = update(t, m, runes("4"))
	assert.Contains(t, m.View(), "Loading subscription status")

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, calls)
	assert.Contains(t, m.View(), "Pro")

	m, _ = update(t, m, runes("5"))
	assert.Contains(t, m.View(), "Trial Plan", "premium tab shows the trial chip")
}

func TestProfileModel_StatusError(t *testing.T) {
	m := newTestModel(t, func(context.Context) (*domain.SubscriptionStatus, error) {
		return nil, errors.New("boom")
	})
	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, runes("5"))

	assert.Contains(t, m.View(), "Failed to load subscription status")
}

func TestProfileModel_Refresh(t *testing.T) {
	calls := 0
	m := newTestModel(t, func(context.Context) (*domain.SubscriptionStatus, error) {
		calls++
		return nil, nil
	})
	m, _ = update(t, m, m.Init()())

	m, cmd := update(t, m, runes("r"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 2, calls)

	m, _ = update(t, m, runes("4"))
	assert.Contains(t, m.View(), "No active subscription")
}

func TestProfileModel_Actions(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"e", ActionEditProfile},
		{"p", ActionChangePassword},
		{"t", ActionToggleTheme},
		{"l", ActionSwitchLanguage},
		{"q", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t, nil)
			m, cmd := update(t, m, runes(tt.key))

			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, m.Action())
			assert.Empty(t, m.View())
		})
	}
}

func TestProfileModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, ActionNone, m.Action())
}

func TestParseTab(t *testing.T) {
	for name, want := range map[string]Tab{
		"":             TabProfile,
		"security":     TabSecurity,
		"Preferences":  TabPreferences,
		"subscription": TabSubscription,
		"premium":      TabPremium,
	} {
		got, ok := ParseTab(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseTab("billing-history")
	assert.False(t, ok)
}

func TestProfileModel_PolishLabels(t *testing.T) {
	tr := i18n.New(i18n.Polish)
	m := NewProfileModel(context.Background(), NewRenderer(tr, theme.New(theme.Light, true)), tr, ProfileOptions{})

	view := m.View()
	assert.True(t, strings.Contains(view, tr.T("profile.tabs.security")))
	assert.Contains(t, view, tr.T("profile.loading"))
}
