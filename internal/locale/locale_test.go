// ABOUTME: Tests for locale selection, lookup fallback, and persistence
// ABOUTME: Uses the in-memory key-value store

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/storywizard/internal/kv"
)

func TestDefaultsToEnglish(t *testing.T) {
	tr, err := NewTranslator(t.Context(), kv.NewMemoryStore())
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Locale())
	assert.False(t, tr.RTL())
	assert.Equal(t, "My Stories", tr.T("my_stories"))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	tr, err := NewTranslator(t.Context(), kv.NewMemoryStore())
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", tr.T("no_such_key"))
}

func TestSetLocalePersistsAcrossReload(t *testing.T) {
	store := kv.NewMemoryStore()

	tr, err := NewTranslator(t.Context(), store)
	require.NoError(t, err)
	require.NoError(t, tr.SetLocale(t.Context(), "ar"))

	assert.Equal(t, "قصصي", tr.T("my_stories"))
	assert.True(t, tr.RTL())

	reloaded, err := NewTranslator(t.Context(), store)
	require.NoError(t, err)
	assert.Equal(t, "ar", reloaded.Locale())
}

func TestSetLocaleRejectsUnknown(t *testing.T) {
	tr, err := NewTranslator(t.Context(), kv.NewMemoryStore())
	require.NoError(t, err)

	require.Error(t, tr.SetLocale(t.Context(), "xx"))
	assert.Equal(t, "en", tr.Locale())
}
