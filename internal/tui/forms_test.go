package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
	"github.com/felixgeelhaar/accountctl/internal/validate"
)

func TestRule_TranslatesFailures(t *testing.T) {
	f := NewForms(i18n.New(i18n.English), theme.Dark, false, false)

	check := f.rule(validate.Email)
	require.NoError(t, check("jane@example.com"))

	err := check("jane")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address", err.Error())
}

func TestRule_Polish(t *testing.T) {
	f := NewForms(i18n.New(i18n.Polish), theme.Light, true, false)

	err := f.rule(validate.Password)("short")
	require.Error(t, err)
	assert.Equal(t, i18n.New(i18n.Polish).T(validate.KeyPasswordTooShort), err.Error())
}

func TestRequired(t *testing.T) {
	check := required(validate.KeyTokenRequired)
	assert.Equal(t, validate.KeyTokenRequired, check(""))
	assert.Empty(t, check("abc"))
}

func TestResetForm_SkipsKnownFields(t *testing.T) {
	f := NewForms(i18n.New(i18n.English), theme.Dark, true, true)

	in := &ResetInput{Token: "abc", Email: "jane@example.com"}
	require.NotNil(t, f.resetForm(in))

	in = &ResetInput{}
	require.NotNil(t, f.resetForm(in))
}

func TestConfirmationFollowsPassword(t *testing.T) {
	f := NewForms(i18n.New(i18n.English), theme.Dark, true, false)
	in := &RegisterInput{}
	confirm := f.confirmRule(&in.Password)

	in.Password = "password123"
	assert.NoError(t, confirm("password123"))
	assert.EqualError(t, confirm("password124"), "Passwords do not match")
}
