package tui

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
	"github.com/felixgeelhaar/accountctl/internal/validate"
)

// LoginInput holds the login form values.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput holds the registration form values.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Confirmation string
}

// ResetInput holds the password reset form values. Token and Email usually
// come from the reset link and are only asked for when missing.
type ResetInput struct {
	Token        string
	Email        string
	Password     string
	Confirmation string
}

// ProfileInput holds the profile edit form values.
type ProfileInput struct {
	Name  string
	Email string
}

// PasswordInput holds the password change form values.
type PasswordInput struct {
	Current      string
	New          string
	Confirmation string
}

// Forms builds the interactive huh forms. Every field runs the same rule as
// the non-interactive path, so a submitted form never fails validation.
type Forms struct {
	tr         *i18n.Translator
	theme      *huh.Theme
	accessible bool
}

// NewForms creates the form builder. accessible switches huh to plain
// line-based prompts for screen readers.
func NewForms(tr *i18n.Translator, mode theme.Mode, noColor, accessible bool) *Forms {
	t := huh.ThemeCharm()
	switch {
	case noColor:
		t = huh.ThemeBase()
	case mode == theme.Light:
		t = huh.ThemeBase16()
	}
	return &Forms{tr: tr, theme: t, accessible: accessible}
}

// Login asks for credentials.
func (f *Forms) Login(ctx context.Context, in *LoginInput) error {
	return f.run(ctx, f.loginForm(in))
}

func (f *Forms) loginForm(in *LoginInput) *huh.Form {
	return f.form(huh.NewGroup(
		f.emailInput(&in.Email),
		huh.NewInput().
			Title(f.tr.T("auth.password")).
			EchoMode(huh.EchoModePassword).
			Value(&in.Password).
			Validate(f.rule(required(validate.KeyPasswordRequired))),
	).Title(f.tr.T("auth.login")).Description(f.tr.T("auth.loginSubtitle")))
}

// Register asks for the new account details.
func (f *Forms) Register(ctx context.Context, in *RegisterInput) error {
	return f.run(ctx, f.registerForm(in))
}

func (f *Forms) registerForm(in *RegisterInput) *huh.Form {
	return f.form(huh.NewGroup(
		huh.NewInput().
			Title(f.tr.T("auth.fullName")).
			Value(&in.Name).
			Validate(f.rule(validate.Name)),
		f.emailInput(&in.Email),
		f.passwordInput("auth.password", &in.Password),
		f.confirmationInput("auth.confirmPassword", &in.Password, &in.Confirmation),
	).Title(f.tr.T("auth.createAccount")).Description(f.tr.T("auth.registerSubtitle")))
}

// ForgotPassword asks for the account email.
func (f *Forms) ForgotPassword(ctx context.Context, email *string) error {
	return f.run(ctx, f.form(huh.NewGroup(
		f.emailInput(email),
	).Title(f.tr.T("auth.forgotPassword")).Description(f.tr.T("auth.forgotPasswordInstructions"))))
}

// ResetPassword asks for the new password, plus token and email when the
// caller did not already have them.
func (f *Forms) ResetPassword(ctx context.Context, in *ResetInput) error {
	return f.run(ctx, f.resetForm(in))
}

func (f *Forms) resetForm(in *ResetInput) *huh.Form {
	var fields []huh.Field
	if in.Token == "" {
		fields = append(fields, huh.NewInput().
			Title(f.tr.T("auth.resetToken")).
			Value(&in.Token).
			Validate(f.rule(required(validate.KeyTokenRequired))))
	}
	if in.Email == "" {
		fields = append(fields, f.emailInput(&in.Email))
	}
	fields = append(fields,
		f.passwordInput("auth.newPassword", &in.Password),
		f.confirmationInput("auth.confirmNewPassword", &in.Password, &in.Confirmation),
	)
	return f.form(huh.NewGroup(fields...).
		Title(f.tr.T("auth.resetPassword")).
		Description(f.tr.T("auth.resetPasswordInstructions")))
}

// EditProfile asks for the new name and email, prefilled with the current
// values.
func (f *Forms) EditProfile(ctx context.Context, in *ProfileInput) error {
	return f.run(ctx, f.form(huh.NewGroup(
		huh.NewInput().
			Title(f.tr.T("profile.fullName")).
			Value(&in.Name).
			Validate(f.rule(validate.Name)),
		f.emailInput(&in.Email),
	).Title(f.tr.T("profile.editProfile"))))
}

// ChangePassword asks for the current and new password.
func (f *Forms) ChangePassword(ctx context.Context, in *PasswordInput) error {
	return f.run(ctx, f.passwordForm(in))
}

func (f *Forms) passwordForm(in *PasswordInput) *huh.Form {
	return f.form(huh.NewGroup(
		huh.NewInput().
			Title(f.tr.T("profile.currentPassword")).
			EchoMode(huh.EchoModePassword).
			Value(&in.Current).
			Validate(f.rule(required(validate.KeyCurrentPasswordRequired))),
		f.passwordInput("profile.newPassword", &in.New),
		f.confirmationInput("profile.confirmNewPassword", &in.New, &in.Confirmation),
	).Title(f.tr.T("profile.changePassword")).Description(f.tr.T("profile.changePasswordInfo")))
}

func (f *Forms) emailInput(v *string) *huh.Input {
	return huh.NewInput().
		Title(f.tr.T("auth.emailAddress")).
		Value(v).
		Validate(f.rule(validate.Email))
}

func (f *Forms) passwordInput(titleKey string, v *string) *huh.Input {
	return huh.NewInput().
		Title(f.tr.T(titleKey)).
		EchoMode(huh.EchoModePassword).
		Value(v).
		Validate(f.rule(validate.Password))
}

// confirmationInput compares against the password field's live value.
func (f *Forms) confirmationInput(titleKey string, password, v *string) *huh.Input {
	return huh.NewInput().
		Title(f.tr.T(titleKey)).
		EchoMode(huh.EchoModePassword).
		Value(v).
		Validate(f.confirmRule(password))
}

func (f *Forms) confirmRule(password *string) func(string) error {
	return f.rule(func(s string) string {
		return validate.Confirmation(*password, s)
	})
}

func (f *Forms) form(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(f.theme).
		WithAccessible(f.accessible)
}

func (f *Forms) run(ctx context.Context, form *huh.Form) error {
	return runForm(ctx, form)
}

// rule adapts a validate check to a huh validator with a translated message.
func (f *Forms) rule(check func(string) string) func(string) error {
	return func(s string) error {
		if key := check(s); key != "" {
			return stderrors.New(f.tr.T(key))
		}
		return nil
	}
}

func required(key string) func(string) string {
	return func(s string) string {
		if s == "" {
			return key
		}
		return ""
	}
}
