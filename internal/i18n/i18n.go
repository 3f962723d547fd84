// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n loads the embedded translation files and translates the
// labels shown on screen. Counter state itself is never translated.
package i18n

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   language.Tag
)

// Init parses every embedded locale and selects lang. Unknown or malformed
// languages fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.MustParseMessageFileBytes(data, f.Name())
	}

	current = match(lang)
	localizer = i18n.NewLocalizer(bundle, current.String())
}

func match(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.English
	}
	m := language.NewMatcher(bundle.LanguageTags())
	_, idx, conf := m.Match(tag)
	if conf == language.No {
		return language.English
	}
	return bundle.LanguageTags()[idx]
}

// Lang returns the selected language tag.
func Lang() language.Tag {
	if localizer == nil {
		Init("en")
	}
	return current
}

// Supported lists the languages with a locale file.
func Supported() []string {
	if bundle == nil {
		Init("en")
	}
	var langs []string
	for _, tag := range bundle.LanguageTags() {
		langs = append(langs, tag.String())
	}
	return langs
}

// T translates messageID. A missing ID is returned unchanged.
func T(messageID string) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// TData translates messageID with template data.
func TData(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
