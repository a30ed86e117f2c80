package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/account"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/tui"
	"github.com/felixgeelhaar/accountctl/internal/validate"
)

func newProfileCmd() *cobra.Command {
	var tabName string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit your profile",
		Long: `Open the tabbed profile view: personal information, security,
preferences, subscription and premium features.

Without an interactive terminal the profile is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			tab, ok := tui.ParseTab(tabName)
			if !ok {
				return errors.NewInvalidChoiceError("tab", tabName, "profile", "security", "preferences", "subscription", "premium")
			}
			if !app.Interactive() {
				return app.printProfile()
			}
			return app.runProfileView(tab)
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "tab to open: profile, security, preferences, subscription or premium")

	cmd.AddCommand(
		newProfileShowCmd(),
		newProfileUpdateCmd(),
		newProfilePasswordCmd(),
	)
	return cmd
}

// runProfileView shows the tabs until the user quits. Actions picked in
// the view run here and the view reopens on the same tab.
func (a *App) runProfileView(tab tui.Tab) error {
	for {
		snap := a.Session.Snapshot()
		m := tui.NewProfileModel(a.ctx, a.Renderer, a.Tr, tui.ProfileOptions{
			User:       snap.User,
			Mode:       a.Mode,
			Lang:       a.Lang,
			Tab:        tab,
			LoadStatus: a.Subscriptions.Status,
		})

		final, err := tui.RunProfile(a.ctx, m)
		if err != nil {
			return err
		}
		tab = final.ActiveTab()

		var actionErr error
		switch final.Action() {
		case tui.ActionNone:
			return nil
		case tui.ActionEditProfile:
			actionErr = a.updateProfile(tui.ProfileInput{}, false)
		case tui.ActionChangePassword:
			actionErr = a.changePassword(tui.PasswordInput{})
		case tui.ActionToggleTheme:
			a.setTheme(a.Mode.Toggle())
		case tui.ActionSwitchLanguage:
			a.setLanguage(nextLanguage(a.Lang))
		}

		if actionErr != nil {
			if stderrors.Is(actionErr, tui.ErrAborted) {
				continue
			}
			if !a.Session.Snapshot().IsAuthenticated {
				return actionErr
			}
			fmt.Fprintln(a.env.Err, a.Styles.Error.Render(actionErr.Error()))
		}
	}
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			return app.printProfile()
		},
	}
}

func (a *App) printProfile() error {
	user := a.Session.Snapshot().User
	return a.output(user, func() string { return a.Renderer.Profile(user) })
}

func newProfileUpdateCmd() *cobra.Command {
	var in tui.ProfileInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change your name or email",
		Long: `Change your display name and/or email address. Fields you leave out keep
their current value. Without flags an interactive form is shown.`,
		Example: `  accountctl profile update --name "Jane Doe"
  accountctl profile update --email jane@example.org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			changed := cmd.Flags().Changed("name") || cmd.Flags().Changed("email")
			if err := app.updateProfile(in, changed); err != nil {
				return err
			}
			return app.printProfile()
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "new display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "new email address")
	return cmd
}

// updateProfile saves in, filling omitted fields from the current user.
// With fromFlags false the form is shown prefilled.
func (a *App) updateProfile(in tui.ProfileInput, fromFlags bool) error {
	current := a.Session.Snapshot().User
	if current != nil {
		if in.Name == "" {
			in.Name = current.Name
		}
		if in.Email == "" {
			in.Email = current.Email
		}
	}

	if !fromFlags {
		if !a.Interactive() {
			return errors.NewValidationError(a.Tr.T("profile.nothingToUpdate"))
		}
		if err := a.Forms.EditProfile(a.ctx, &in); err != nil {
			return err
		}
	}

	if errs := validate.ProfileUpdate(in.Name, in.Email); len(errs) > 0 {
		return errs.Err(a.Tr)
	}

	updated, err := a.Profiles.Update(a.ctx, account.ProfileUpdate{Name: in.Name, Email: in.Email})
	if err != nil {
		return err
	}
	a.Session.SetUser(*updated)
	return nil
}

func newProfilePasswordCmd() *cobra.Command {
	var in tui.PasswordInput

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			return app.changePassword(in)
		},
	}
	cmd.Flags().StringVar(&in.Current, "current", "", "current password")
	cmd.Flags().StringVar(&in.New, "new", "", "new password, at least 8 characters")
	cmd.Flags().StringVar(&in.Confirmation, "confirm", "", "the new password again")
	return cmd
}

func (a *App) changePassword(in tui.PasswordInput) error {
	errs := validate.PasswordChange(in.Current, in.New, in.Confirmation)
	if len(errs) > 0 && a.Interactive() {
		if err := a.Forms.ChangePassword(a.ctx, &in); err != nil {
			return err
		}
		errs = validate.PasswordChange(in.Current, in.New, in.Confirmation)
	}
	if len(errs) > 0 {
		return errs.Err(a.Tr)
	}

	return a.Profiles.ChangePassword(a.ctx, account.PasswordChange{
		Current:      in.Current,
		New:          in.New,
		Confirmation: in.Confirmation,
	})
}
