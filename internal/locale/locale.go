// ABOUTME: Localization lookup backed by embedded translation tables
// ABOUTME: Selected locale persists globally; unknown keys fall back verbatim

package locale

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quillworks/storywizard/internal/kv"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when nothing has been persisted yet.
const DefaultLocale = "en"

// localeKey is the global persisted-locale entry. Locale choice is shared
// across accounts, not namespaced per user.
const localeKey = "storywizard-locale"

// Translator resolves display strings for the active locale. Safe for
// concurrent use.
type Translator struct {
	store  kv.Store
	logger *slog.Logger

	mu           sync.RWMutex
	locale       string
	translations map[string]string
}

// NewTranslator loads the persisted locale selection, falling back to
// DefaultLocale when none is stored or its table cannot be loaded.
func NewTranslator(ctx context.Context, store kv.Store) (*Translator, error) {
	tr := &Translator{
		store:  store,
		logger: slog.Default().With("component", "locale"),
	}

	var selected string
	if err := kv.GetJSON(ctx, store, localeKey, &selected, func() { selected = DefaultLocale }); err != nil {
		return nil, fmt.Errorf("loading locale selection: %w", err)
	}
	if err := tr.activate(selected); err != nil {
		tr.logger.Warn("falling back to default locale", "locale", selected, "error", err)
		if err := tr.activate(DefaultLocale); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

// Locale returns the active locale code.
func (tr *Translator) Locale() string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.locale
}

// RTL reports whether the active locale reads right to left.
func (tr *Translator) RTL() bool {
	return tr.Locale() == "ar"
}

// SetLocale switches the active locale, reloading its translation table and
// persisting the selection. An unknown locale leaves the current one active.
func (tr *Translator) SetLocale(ctx context.Context, locale string) error {
	if err := tr.activate(locale); err != nil {
		return err
	}
	if err := kv.SetJSON(ctx, tr.store, localeKey, locale); err != nil {
		return fmt.Errorf("persisting locale selection: %w", err)
	}
	return nil
}

// T resolves key for the active locale. Untranslated keys come back verbatim
// so a missing entry degrades to the key, never to an empty string.
func (tr *Translator) T(key string) string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if s, ok := tr.translations[key]; ok {
		return s
	}
	return key
}

func (tr *Translator) activate(locale string) error {
	raw, err := localeFS.ReadFile("locales/" + locale + ".json")
	if err != nil {
		return fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	table := map[string]string{}
	if err := json.Unmarshal(raw, &table); err != nil {
		return fmt.Errorf("decoding locale %q: %w", locale, err)
	}

	tr.mu.Lock()
	tr.locale = locale
	tr.translations = table
	tr.mu.Unlock()
	return nil
}
