package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
	"github.com/felixgeelhaar/accountctl/internal/tokenstore"
)

type prefsData struct {
	Theme    theme.Mode `json:"theme" yaml:"theme"`
	Language i18n.Lang  `json:"language" yaml:"language"`
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change theme and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			return app.printPrefs()
		},
	}
	cmd.AddCommand(newPrefsThemeCmd(), newPrefsLanguageCmd())
	return cmd
}

func newPrefsThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Set the color theme",
		Long:      "Set the color theme. Without an argument the current theme is printed.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if len(args) == 0 {
				return app.printPrefs()
			}

			mode := app.Mode.Toggle()
			if args[0] != "toggle" {
				m, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				mode = m
			}
			app.setTheme(mode)
			app.say("prefs.themeSet", mode)
			return app.printPrefsStructured()
		},
	}
}

func newPrefsLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "language [en|pl]",
		Aliases:   []string{"lang"},
		Short:     "Set the interface language",
		Long:      "Set the interface language. Without an argument the current language is printed.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: supportedLanguages(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if len(args) == 0 {
				return app.printPrefs()
			}

			lang, ok := i18n.Parse(args[0])
			if !ok {
				return errors.NewInvalidChoiceError("language", args[0], supportedLanguages()...)
			}
			app.setLanguage(lang)
			app.say("prefs.languageSet", app.Tr.T("language."+string(lang)))
			return app.printPrefsStructured()
		},
	}
}

func supportedLanguages() []string {
	out := make([]string, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		out = append(out, string(l))
	}
	return out
}

// nextLanguage cycles through the supported languages.
func nextLanguage(current i18n.Lang) i18n.Lang {
	for i, l := range i18n.Supported {
		if l == current {
			return i18n.Supported[(i+1)%len(i18n.Supported)]
		}
	}
	return i18n.Default
}

func (a *App) printPrefs() error {
	return a.output(prefsData{Theme: a.Mode, Language: a.Lang}, func() string {
		return a.Renderer.Preferences(a.Mode, a.Lang)
	})
}

// printPrefsStructured echoes the new preferences for json and yaml; text
// mode has already printed a confirmation.
func (a *App) printPrefsStructured() error {
	if !a.structured() {
		return nil
	}
	return a.printPrefs()
}

func (a *App) setTheme(m theme.Mode) {
	theme.Save(a.Store, m)
	a.Mode = m
	a.restyle()
	a.Logger.Debug("theme changed", "theme", m)
}

func (a *App) setLanguage(l i18n.Lang) {
	a.Store.SetPreference(tokenstore.KeyLanguage, string(l))
	a.Lang = l
	a.restyle()
	a.Logger.Debug("language changed", "lang", l)
}
