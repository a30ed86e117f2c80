package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accerrors "github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/notify"
	"github.com/felixgeelhaar/accountctl/internal/tokenstore"
)

func TestParse(t *testing.T) {
	m, err := Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	_, err = Parse("sepia")
	require.Error(t, err)
	code, ok := accerrors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, accerrors.ErrCodeInvalidChoice, code)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Mode("").Toggle())
}

func TestDetect(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	store := tokenstore.New(tokenstore.NewMemoryBackend(), nil)

	assert.Equal(t, Dark, Detect("", store, dark), "falls back to terminal background")
	assert.Equal(t, Light, Detect("", store, light))

	Save(store, Light)
	assert.Equal(t, Light, Detect("", store, dark), "stored preference beats background")

	assert.Equal(t, Dark, Detect("dark", store, light), "flag beats stored preference")
	assert.Equal(t, Light, Detect("bogus", store, dark), "invalid flag is ignored")
}

func TestDetect_IgnoresBadStoredValue(t *testing.T) {
	store := tokenstore.New(tokenstore.NewMemoryBackend(), nil)
	store.SetPreference(PreferenceKey, "neon")

	assert.Equal(t, Dark, Detect("", store, func() bool { return true }))
}

func TestNew(t *testing.T) {
	assert.Equal(t, Dark, New(Dark, false).Mode)
	assert.Equal(t, Light, New(Mode("x"), false).Mode)

	plainStyles := New(Dark, true)
	assert.Equal(t, "hello", plainStyles.Title.Render("hello"))
	assert.Equal(t, "✓ saved", plainStyles.Notification(notify.KindSuccess, "✓ saved"))
}
