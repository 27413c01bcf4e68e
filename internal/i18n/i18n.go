// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization support for PASS // FAIL.
// It uses the go-i18n library to load and manage translation files, allowing
// status output to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// active is the tag of the current language, used for locale-aware
// number formatting alongside the translated messages.
var active = language.English

// Init initializes the i18n bundle and sets up the localizer for a specific
// language. It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if tag, err := language.Parse(lang); err == nil {
		active = tag
	} else {
		active = language.English
	}

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID. Messages may carry printf verbs; any
// trailing arguments are applied with fmt.Sprintf. If the i18n system has
// not been initialized, it defaults to English. If a translation for the
// given ID is not found, the ID itself is returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// Tag returns the tag of the active language. It defaults to English
// until Init runs.
func Tag() language.Tag {
	return active
}
