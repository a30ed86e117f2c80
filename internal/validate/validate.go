// Package validate checks form input before anything is sent to the
// server. Forms are tagged structs checked by go-playground/validator;
// failures are field-scoped and carry i18n message keys.
package validate

import (
	stderrors "errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Custom validator tags. accountemail is the loose \S+@\S+\.\S+ shape the
// server also accepts; notblank rejects whitespace-only input.
const (
	tagEmail    = "accountemail"
	tagNotBlank = "notblank"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Field names a form input
type Field string

const (
	FieldName                 Field = "name"
	FieldEmail                Field = "email"
	FieldPassword             Field = "password"
	FieldPasswordConfirmation Field = "password_confirmation"
	FieldCurrentPassword      Field = "current_password"
	FieldToken                Field = "token"
)

// Message keys
const (
	KeyNameRequired            = "validation.nameRequired"
	KeyEmailRequired           = "validation.emailRequired"
	KeyEmailInvalid            = "validation.emailInvalid"
	KeyPasswordRequired        = "validation.passwordRequired"
	KeyPasswordTooShort        = "validation.passwordTooShort"
	KeyConfirmPasswordRequired = "validation.confirmPasswordRequired"
	KeyPasswordsDoNotMatch     = "validation.passwordsDoNotMatch"
	KeyTokenRequired           = "validation.tokenRequired"
	KeyCurrentPasswordRequired = "profile.currentPasswordRequired"
)

// messages maps a failed tag on a field to its message key.
var messages = map[Field]map[string]string{
	FieldName:                 {tagNotBlank: KeyNameRequired},
	FieldEmail:                {tagNotBlank: KeyEmailRequired, tagEmail: KeyEmailInvalid},
	FieldPassword:             {"required": KeyPasswordRequired, "min": KeyPasswordTooShort},
	FieldPasswordConfirmation: {"required": KeyConfirmPasswordRequired, "eqfield": KeyPasswordsDoNotMatch},
	FieldCurrentPassword:      {"required": KeyCurrentPasswordRequired},
	FieldToken:                {tagNotBlank: KeyTokenRequired},
}

var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	must(v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// FieldError is one failed rule.
type FieldError struct {
	Field Field
	Key   string
}

// Errors collects field errors in form order. A nil Errors means valid.
type Errors []FieldError

// Error lists the failing fields with their message keys.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, string(fe.Field)+": "+fe.Key)
	}
	return strings.Join(parts, "; ")
}

// For returns the error for field, if any.
func (e Errors) For(field Field) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Translator resolves message keys.
type Translator interface {
	T(key string) string
}

// Err converts the collected failures into a validation error with
// translated messages, or nil when there are none.
func (e Errors) Err(tr Translator) error {
	if len(e) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, tr.T(fe.Key))
	}
	return errors.NewValidationError(strings.Join(msgs, "; "))
}

// check runs the validator over a form struct and collects one FieldError
// per failing field, in declaration order.
func check(form any) Errors {
	err := checker.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		panic(err)
	}
	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		field := Field(fe.Field())
		errs = append(errs, FieldError{Field: field, Key: messages[field][fe.Tag()]})
	}
	return errs
}

// firstKey maps the first failure of a single-value check to its key, or "".
func firstKey(field Field, err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	return messages[field][verrs[0].Tag()]
}

// Name returns the failing key for a display name, or "".
func Name(name string) string {
	return firstKey(FieldName, checker.Var(name, tagNotBlank))
}

// Email returns the failing key for an email address, or "".
func Email(email string) string {
	return firstKey(FieldEmail, checker.Var(email, tagNotBlank+","+tagEmail))
}

// Password returns the failing key for a new password, or "".
func Password(password string) string {
	return firstKey(FieldPassword, checker.Var(password, "required,min=8"))
}

// Confirmation returns the failing key for a password confirmation, or "".
func Confirmation(password, confirmation string) string {
	return firstKey(FieldPasswordConfirmation, checker.VarWithValue(confirmation, password, "required,eqfield"))
}

// LoginForm is the login form. The password length is not checked so that
// accounts created under older rules can still sign in.
type LoginForm struct {
	Email    string `json:"email" validate:"notblank,accountemail"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Name         string `json:"name" validate:"notblank"`
	Email        string `json:"email" validate:"notblank,accountemail"`
	Password     string `json:"password" validate:"required,min=8"`
	Confirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type ForgotPasswordForm struct {
	Email string `json:"email" validate:"notblank,accountemail"`
}

// ResetPasswordForm carries the token from the reset link.
type ResetPasswordForm struct {
	Token        string `json:"token" validate:"notblank"`
	Email        string `json:"email" validate:"notblank,accountemail"`
	Password     string `json:"password" validate:"required,min=8"`
	Confirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type ProfileForm struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank,accountemail"`
}

type PasswordChangeForm struct {
	Current      string `json:"current_password" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
	Confirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Login validates the login form.
func Login(email, password string) Errors {
	return check(LoginForm{Email: email, Password: password})
}

// Register validates the registration form.
func Register(name, email, password, confirmation string) Errors {
	return check(RegisterForm{Name: name, Email: email, Password: password, Confirmation: confirmation})
}

// ForgotPassword validates the reset-link request form.
func ForgotPassword(email string) Errors {
	return check(ForgotPasswordForm{Email: email})
}

// ResetPassword validates the reset form.
func ResetPassword(token, email, password, confirmation string) Errors {
	return check(ResetPasswordForm{Token: token, Email: email, Password: password, Confirmation: confirmation})
}

// ProfileUpdate validates the profile edit form.
func ProfileUpdate(name, email string) Errors {
	return check(ProfileForm{Name: name, Email: email})
}

// PasswordChange validates the change-password form.
func PasswordChange(current, password, confirmation string) Errors {
	return check(PasswordChangeForm{Current: current, Password: password, Confirmation: confirmation})
}
