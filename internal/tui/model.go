package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
)

// Tab is a section of the profile view
type Tab int

const (
	TabProfile Tab = iota
	TabSecurity
	TabPreferences
	TabSubscription
	TabPremium
)

var tabTitles = []string{
	TabProfile:      "profile.tabs.personalInfo",
	TabSecurity:     "profile.tabs.security",
	TabPreferences:  "profile.tabs.preferences",
	TabSubscription: "profile.tabs.subscription",
	TabPremium:      "profile.tabs.premium",
}

// ParseTab maps a tab name such as "security" to a Tab.
func ParseTab(name string) (Tab, bool) {
	switch strings.ToLower(name) {
	case "", "profile", "personal":
		return TabProfile, true
	case "security", "password":
		return TabSecurity, true
	case "preferences", "prefs":
		return TabPreferences, true
	case "subscription", "billing":
		return TabSubscription, true
	case "premium":
		return TabPremium, true
	}
	return TabProfile, false
}

// Action is what the user asked for when leaving the profile view. Forms
// run outside the bubbletea program, so the caller performs the action
// and reopens the view.
type Action int

const (
	ActionNone Action = iota
	ActionEditProfile
	ActionChangePassword
	ActionToggleTheme
	ActionSwitchLanguage
)

// StatusLoader fetches the current subscription status.
type StatusLoader func(context.Context) (*domain.SubscriptionStatus, error)

// statusMsg carries a finished subscription status request
type statusMsg struct {
	status *domain.SubscriptionStatus
	err    error
}

// keyMap defines the keyboard shortcuts
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Edit     key.Binding
	Password key.Binding
	Theme    key.Binding
	Language key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→", "next tab"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "shift+tab"),
		key.WithHelp("←", "previous tab"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit profile"),
	),
	Password: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "change password"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Language: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "switch language"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload subscription"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ProfileOptions seeds the profile view.
type ProfileOptions struct {
	User       *domain.UserRecord
	Mode       theme.Mode
	Lang       i18n.Lang
	Tab        Tab
	LoadStatus StatusLoader
}

// ProfileModel is the tabbed profile view.
type ProfileModel struct {
	ctx      context.Context
	renderer *Renderer
	tr       *i18n.Translator
	opts     ProfileOptions

	active   Tab
	status   *domain.SubscriptionStatus
	loading  bool
	loadErr  error
	action   Action
	quitting bool
	width    int
}

// NewProfileModel creates the profile view.
func NewProfileModel(ctx context.Context, r *Renderer, tr *i18n.Translator, opts ProfileOptions) ProfileModel {
	return ProfileModel{
		ctx:      ctx,
		renderer: r,
		tr:       tr,
		opts:     opts,
		active:   opts.Tab,
		loading:  opts.LoadStatus != nil,
	}
}

// Init starts loading the subscription status (required by Bubble Tea)
func (m ProfileModel) Init() tea.Cmd {
	return m.fetchStatus()
}

func (m ProfileModel) fetchStatus() tea.Cmd {
	if m.opts.LoadStatus == nil {
		return nil
	}
	load, ctx := m.opts.LoadStatus, m.ctx
	return func() tea.Msg {
		st, err := load(ctx)
		return statusMsg{status: st, err: err}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case statusMsg:
		m.loading = false
		m.status, m.loadErr = msg.status, msg.err
		return m, nil
	}

	return m, nil
}

func (m ProfileModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Next):
		m.active = (m.active + 1) % Tab(len(tabTitles))

	case key.Matches(msg, keys.Prev):
		m.active = (m.active + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))

	case key.Matches(msg, keys.Refresh):
		if m.opts.LoadStatus != nil && !m.loading {
			m.loading = true
			return m, m.fetchStatus()
		}

	case key.Matches(msg, keys.Edit):
		return m.finish(ActionEditProfile)
	case key.Matches(msg, keys.Password):
		return m.finish(ActionChangePassword)
	case key.Matches(msg, keys.Theme):
		return m.finish(ActionToggleTheme)
	case key.Matches(msg, keys.Language):
		return m.finish(ActionSwitchLanguage)

	default:
		if n := msg.String(); len(n) == 1 && n[0] >= '1' && int(n[0]-'1') < len(tabTitles) {
			m.active = Tab(n[0] - '1')
		}
	}
	return m, nil
}

func (m ProfileModel) finish(a Action) (tea.Model, tea.Cmd) {
	m.action = a
	m.quitting = true
	return m, tea.Quit
}

// View renders the tab bar and the active tab (required by Bubble Tea)
func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.renderer.Styles()

	var b strings.Builder
	b.WriteString(s.Title.Render(m.tr.T("profile.title")))
	if u := m.opts.User; u != nil {
		b.WriteString("  " + s.Muted.Render(fmt.Sprintf("%s <%s>", u.Name, u.Email)))
	}
	b.WriteString("\n\n")

	for i, titleKey := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, m.tr.T(titleKey))
		if Tab(i) == m.active {
			b.WriteString(s.ActiveTab.Render(label))
		} else {
			b.WriteString(s.Tab.Render(label))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTab())
	b.WriteString("\n")
	b.WriteString(s.Help.Render(m.tr.T("profile.tabs.help")))
	return b.String()
}

func (m ProfileModel) renderTab() string {
	switch m.active {
	case TabSecurity:
		return m.renderer.Security()
	case TabPreferences:
		return m.renderer.Preferences(m.opts.Mode, m.opts.Lang)
	case TabSubscription:
		if body, ok := m.statusPending(); !ok {
			return body
		}
		return m.renderer.SubscriptionManagement(m.status)
	case TabPremium:
		if body, ok := m.statusPending(); !ok {
			return body
		}
		return m.renderer.Premium(m.status)
	default:
		return m.renderer.Profile(m.opts.User)
	}
}

// statusPending returns the loading or error notice while the status is
// not usable.
func (m ProfileModel) statusPending() (string, bool) {
	s := m.renderer.Styles()
	if m.loading {
		return s.Muted.Render("⟳ "+m.tr.T("subscription.status.loading")) + "\n", false
	}
	if m.loadErr != nil {
		return s.Error.Render("✗ "+m.tr.T("subscription.status.error")) + "\n", false
	}
	return "", true
}

// Action returns what the user chose when the view closed.
func (m ProfileModel) Action() Action {
	return m.action
}

// ActiveTab returns the selected tab, so a reopened view can restore it.
func (m ProfileModel) ActiveTab() Tab {
	return m.active
}

// RunProfile shows the profile view until the user quits or picks an
// action.
func RunProfile(ctx context.Context, m ProfileModel) (ProfileModel, error) {
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return m, fmt.Errorf("profile view: %w", err)
	}
	return final.(ProfileModel), nil
}
