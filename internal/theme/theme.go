// Package theme holds the light and dark terminal styles and the rules for
// picking one.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/notify"
)

// Mode is a color theme
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// PreferenceKey is the token store key holding the chosen theme.
const PreferenceKey = "theme"

// Preferences is the slice of the token store the theme needs.
type Preferences interface {
	Preference(key string) (string, bool)
	SetPreference(key, value string)
}

// Parse validates a theme name.
func Parse(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", errors.NewInvalidChoiceError("theme", s, string(Light), string(Dark))
}

// Toggle returns the other theme.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Detect picks the theme: explicit flag, then the stored preference, then
// the terminal background.
func Detect(flag string, prefs Preferences, darkBackground func() bool) Mode {
	if m, err := Parse(flag); err == nil {
		return m
	}
	if prefs != nil {
		if stored, ok := prefs.Preference(PreferenceKey); ok {
			if m, err := Parse(stored); err == nil {
				return m
			}
		}
	}
	if darkBackground == nil {
		darkBackground = lipgloss.HasDarkBackground
	}
	if darkBackground() {
		return Dark
	}
	return Light
}

// Save stores m as the preferred theme.
func Save(prefs Preferences, m Mode) {
	prefs.SetPreference(PreferenceKey, string(m))
}

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Accent  lipgloss.Color
}

var palettes = map[Mode]Palette{
	Light: {
		Primary: lipgloss.Color("#2563eb"),
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#6b7280"),
		Success: lipgloss.Color("#15803d"),
		Warning: lipgloss.Color("#b45309"),
		Error:   lipgloss.Color("#b91c1c"),
		Accent:  lipgloss.Color("#7c3aed"),
	},
	Dark: {
		Primary: lipgloss.Color("#60a5fa"),
		Text:    lipgloss.Color("#f3f4f6"),
		Muted:   lipgloss.Color("#9ca3af"),
		Success: lipgloss.Color("#4ade80"),
		Warning: lipgloss.Color("#fbbf24"),
		Error:   lipgloss.Color("#f87171"),
		Accent:  lipgloss.Color("#c084fc"),
	},
}

// Styles contains the lipgloss styles used by pages and forms
type Styles struct {
	Mode Mode

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Price       lipgloss.Style
	Badge       lipgloss.Style
	Card        lipgloss.Style
	Highlighted lipgloss.Style
	ActiveTab   lipgloss.Style
	Tab         lipgloss.Style
	Help        lipgloss.Style
}

// New returns the styles for m. With noColor every style renders plain
// text apart from borders and layout.
func New(m Mode, noColor bool) Styles {
	p, ok := palettes[m]
	if !ok {
		m, p = Light, palettes[Light]
	}
	if noColor {
		return plain(m)
	}

	return Styles{
		Mode: m,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Text:    lipgloss.NewStyle().Foreground(p.Text),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Badge: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Accent).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 2),
		Highlighted: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Underline(true).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

func plain(m Mode) Styles {
	s := lipgloss.NewStyle()
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	return Styles{
		Mode:        m,
		Title:       s,
		Subtitle:    s,
		Text:        s,
		Muted:       s,
		Success:     s,
		Warning:     s,
		Error:       s,
		Price:       s,
		Badge:       s,
		Card:        box,
		Highlighted: box,
		ActiveTab:   lipgloss.NewStyle().Padding(0, 1).Underline(true),
		Tab:         lipgloss.NewStyle().Padding(0, 1),
		Help:        s,
	}
}

// Notification colors a console notification line by its kind.
func (s Styles) Notification(k notify.Kind, line string) string {
	switch k {
	case notify.KindSuccess:
		return s.Success.Render(line)
	case notify.KindError:
		return s.Error.Render(line)
	case notify.KindWarning:
		return s.Warning.Render(line)
	default:
		return s.Text.Render(line)
	}
}
