package cmd

import (
	"bufio"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/tui"
	"github.com/felixgeelhaar/accountctl/internal/validate"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up and recover your account",
		Long: `Manage your session with the account API.

The session token is stored in the accountctl home directory and sent
with every request until you log out or the server rejects it.`,
	}
	cmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newForgotPasswordCmd(),
		newResetPasswordCmd(),
		newAuthStatusCmd(),
	)
	return cmd
}

func newLoginCmd() *cobra.Command {
	var in tui.LoginInput
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Example: `  accountctl auth login
  accountctl auth login --email jane@example.com --password-stdin < secret.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if passwordStdin {
				in.Password = readSecret(cmd.InOrStdin())
			}

			errs := validate.Login(in.Email, in.Password)
			if len(errs) > 0 && app.Interactive() {
				if err := app.Forms.Login(app.ctx, &in); err != nil {
					return err
				}
				errs = validate.Login(in.Email, in.Password)
			}
			if len(errs) > 0 {
				return errs.Err(app.Tr)
			}

			if err := app.Session.Login(app.ctx, in.Email, in.Password); err != nil {
				return err
			}
			return app.printSession()
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password (prefer --password-stdin)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from standard input")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var in tui.RegisterInput
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account. When the server returns a session token you are
logged in right away; otherwise log in with the new credentials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if passwordStdin {
				in.Password = readSecret(cmd.InOrStdin())
				if in.Confirmation == "" {
					in.Confirmation = in.Password
				}
			}

			errs := validate.Register(in.Name, in.Email, in.Password, in.Confirmation)
			if len(errs) > 0 && app.Interactive() {
				if err := app.Forms.Register(app.ctx, &in); err != nil {
					return err
				}
				errs = validate.Register(in.Name, in.Email, in.Password, in.Confirmation)
			}
			if len(errs) > 0 {
				return errs.Err(app.Tr)
			}

			res, err := app.Session.Register(app.ctx, in.Name, in.Email, in.Password, in.Confirmation)
			if err != nil {
				return err
			}
			if !res.AutoAuthenticated {
				app.say("auth.registeredPleaseLogin")
				return app.output(app.sessionView(), func() string { return app.Tr.T("auth.notLoggedIn") })
			}
			return app.printSession()
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&in.Confirmation, "password-confirmation", "", "the password again")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from standard input")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Long: `Log out on the server and forget the stored token. The local session is
cleared even when the server cannot be reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if err := app.Session.Logout(app.ctx); err != nil {
				return err
			}
			if msg := app.Session.Snapshot().Error; msg != "" {
				app.Logger.Warn("server logout failed", "error", msg)
			}
			return nil
		},
	}
}

func newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset link",
		Long: `Ask the server to email a password reset link. The same confirmation is
shown whether or not the address belongs to an account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())

			errs := validate.ForgotPassword(email)
			if len(errs) > 0 && app.Interactive() {
				if err := app.Forms.ForgotPassword(app.ctx, &email); err != nil {
					return err
				}
				errs = validate.ForgotPassword(email)
			}
			if len(errs) > 0 {
				return errs.Err(app.Tr)
			}
			return app.Session.ForgotPassword(app.ctx, email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email address")
	return cmd
}

func newResetPasswordCmd() *cobra.Command {
	var in tui.ResetInput
	var link string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with a reset token",
		Long: `Set a new password using the token from the reset email. Pass the whole
link with --link, or the token and email separately. You are not logged
in afterwards.`,
		Example: `  accountctl auth reset-password --link 'https://app.example.com/reset-password?token=abc&email=jane%40example.com'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if link != "" {
				token, email, err := parseResetLink(link)
				if err != nil {
					return err
				}
				if in.Token == "" {
					in.Token = token
				}
				if in.Email == "" {
					in.Email = email
				}
			}
			if passwordStdin {
				in.Password = readSecret(cmd.InOrStdin())
				if in.Confirmation == "" {
					in.Confirmation = in.Password
				}
			}

			errs := validate.ResetPassword(in.Token, in.Email, in.Password, in.Confirmation)
			if len(errs) > 0 && app.Interactive() {
				if err := app.Forms.ResetPassword(app.ctx, &in); err != nil {
					return err
				}
				errs = validate.ResetPassword(in.Token, in.Email, in.Password, in.Confirmation)
			}
			if len(errs) > 0 {
				return errs.Err(app.Tr)
			}

			if err := app.Session.ResetPassword(app.ctx, in.Token, in.Email, in.Password, in.Confirmation); err != nil {
				return err
			}
			app.say("auth.backToLogin")
			return nil
		},
	}
	cmd.Flags().StringVar(&link, "link", "", "reset link from the email")
	cmd.Flags().StringVar(&in.Token, "token", "", "reset token")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "new password, at least 8 characters")
	cmd.Flags().StringVar(&in.Confirmation, "password-confirmation", "", "the new password again")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the new password from standard input")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in",
		Long: `Validate the stored session against the server and show the account it
belongs to. An expired session is cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if err := app.Session.Init(app.ctx); err != nil {
				app.Logger.Debug("session validation failed", "error", err)
			}
			return app.printSession()
		},
	}
}

// sessionData is the structured form of the current session.
type sessionData struct {
	Authenticated  bool               `json:"authenticated" yaml:"authenticated"`
	State          string             `json:"state" yaml:"state"`
	User           *domain.UserRecord `json:"user,omitempty" yaml:"user,omitempty"`
	TokenExpiresAt *time.Time         `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	Error          string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *App) sessionView() sessionData {
	snap := a.Session.Snapshot()
	data := sessionData{
		Authenticated: snap.IsAuthenticated,
		State:         snap.State.String(),
		Error:         snap.Error,
	}
	if snap.IsAuthenticated {
		data.User = snap.User
		if exp, ok := a.Session.TokenExpiry(); ok {
			data.TokenExpiresAt = &exp
		}
	}
	return data
}

func (a *App) printSession() error {
	data := a.sessionView()
	return a.output(data, func() string {
		if !data.Authenticated || data.User == nil {
			out := a.Tr.T("auth.notLoggedIn")
			if data.Error != "" {
				out += "\n" + a.Styles.Error.Render(data.Error)
			}
			return out
		}
		out := a.Tr.Tf("auth.loggedInAs", data.User.Name, data.User.Email)
		if data.TokenExpiresAt != nil {
			out += "\n" + a.Renderer.TokenExpiry(*data.TokenExpiresAt, time.Now())
		}
		return out
	})
}

// parseResetLink extracts token and email from a reset link's query.
func parseResetLink(link string) (token, email string, err error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", "", invalidResetLinkError(err)
	}
	q := u.Query()
	token, email = q.Get("token"), q.Get("email")
	if token == "" {
		return "", "", invalidResetLinkError(nil)
	}
	return token, email, nil
}

// readSecret returns the first line of r without the line ending.
func readSecret(r io.Reader) string {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return strings.TrimRight(sc.Text(), "\r")
	}
	return ""
}
