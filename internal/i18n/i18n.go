// internal/i18n/i18n.go
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var instance *I18n
var once sync.Once

func Initialize() error {
	var err error
	once.Do(func() {
		instance = &I18n{
			translations: make(map[string]map[string]string),
			defaultLang:  "en",
		}
		err = instance.LoadTranslations("./internal/i18n/locales")
	})
	return err
}

func (i *I18n) LoadTranslations(localesPath string) error {
	localeFiles := []string{"en.json", "hi.json"}

	for _, file := range localeFiles {
		lang := strings.TrimSuffix(file, ".json")
		filePath := filepath.Join(localesPath, file)

		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", filePath, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", filePath, err)
		}

		i.mu.Lock()
		i.translations[lang] = translations
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) Translate(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	translations, exists := i.translations[lang]
	if !exists {
		translations = i.translations[i.defaultLang]
	}

	message, exists := translations[key]
	if !exists {
		if fallback, ok := i.translations[i.defaultLang][key]; ok {
			message = fallback
		} else {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// T translates a key using the package singleton. Falls back to the key
// itself when i18n was never initialized (tests).
func T(lang, key string, args ...interface{}) string {
	if instance == nil {
		if len(args) > 0 {
			return fmt.Sprintf("%s: %v", key, args)
		}
		return key
	}
	return instance.Translate(lang, key, args...)
}

func SupportedLanguages() []string {
	return []string{"en", "hi"}
}

func IsSupported(lang string) bool {
	for _, supported := range SupportedLanguages() {
		if supported == lang {
			return true
		}
	}
	return false
}
