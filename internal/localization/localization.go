// Package localization provides the handful of user-facing strings the
// server produces, in English and Hindi. Translations are embedded so
// the binary needs no data directory at runtime.
package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

const fallbackLang = "en"

// Localizer resolves translation keys per language.
type Localizer struct {
	translations map[string]map[string]string
}

// NewLocalizer loads every embedded locales/<lang>.json file.
func NewLocalizer() (*Localizer, error) {
	l := &Localizer{translations: make(map[string]map[string]string)}

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".json")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		l.translations[lang] = translations
	}

	return l, nil
}

// GetString returns the localized string for a key, falling back to
// English and finally to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	if v, ok := l.translations[lang][key]; ok {
		return v
	}
	if v, ok := l.translations[fallbackLang][key]; ok {
		return v
	}
	return key
}
