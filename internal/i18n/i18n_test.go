// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationsLoadAndResolve(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	assert.Equal(t, "Logged in successfully", T("en", KeyAuthLoginSuccess))
	assert.NotEqual(t, KeyAuthLoginSuccess, T("zh_TW", KeyAuthLoginSuccess))
}

func TestTranslationFallsBackToDefaultLanguage(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	// Unknown language falls back to English
	assert.Equal(t, T("en", KeyArtworkNotFound), T("fr", KeyArtworkNotFound))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}
