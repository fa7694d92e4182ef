// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package i18n translates property values marked translatable="yes".
package i18n

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Translator maps a source string to its translation. Unknown strings are
// returned unchanged.
type Translator interface {
	Translate(msgid string) string
}

// Identity is the Translator that translates nothing.
type Identity struct{}

// Translate implements Translator.
func (Identity) Translate(msgid string) string { return msgid }

// Translations maps a source string to its translation per language.
type Translations map[string]map[language.Tag]string

// Catalog is a Translator backed by an x/text message catalog.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog builds a Translator for the locale tag from translations.
func NewCatalog(tag language.Tag, t Translations) (*Catalog, error) {
	b := catalog.NewBuilder()
	for msgid, byLang := range t {
		for lang, translation := range byLang {
			// The printer formats the stored string, so literal percent signs are escaped.
			if err := b.SetString(lang, msgid, strings.ReplaceAll(translation, "%", "%%")); err != nil {
				return nil, fmt.Errorf("translation of %q for %s: %w", msgid, lang, err)
			}
		}
	}
	return &Catalog{tag: tag, printer: message.NewPrinter(tag, message.Catalog(b))}, nil
}

// Tag returns the locale the catalog translates into.
func (c *Catalog) Tag() language.Tag { return c.tag }

// Translate implements Translator. Strings holding a percent sign are never
// used as catalog keys and are returned as is.
func (c *Catalog) Translate(msgid string) string {
	if strings.Contains(msgid, "%") {
		return msgid
	}
	return c.printer.Sprintf(msgid)
}

// ParseTranslations decodes a YAML document of the form
//
//	Activities:
//	  de: Aktivitäten
//	  fr: Activités
func ParseTranslations(data []byte) (Translations, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}

	out := make(Translations, len(raw))
	msgids := make([]string, 0, len(raw))
	for msgid := range raw {
		msgids = append(msgids, msgid)
	}
	sort.Strings(msgids)

	for _, msgid := range msgids {
		out[msgid] = make(map[language.Tag]string, len(raw[msgid]))
		for lang, translation := range raw[msgid] {
			tag, err := language.Parse(lang)
			if err != nil {
				return nil, fmt.Errorf("translation of %q: invalid language %q: %w", msgid, lang, err)
			}
			out[msgid][tag] = translation
		}
	}
	return out, nil
}

// LoadTranslations reads a YAML translations file.
func LoadTranslations(path string) (Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}
	t, err := ParseTranslations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// New returns the Translator for locale using the translations file at path.
// An empty locale or path yields Identity.
func New(locale, path string) (Translator, error) {
	if locale == "" || path == "" {
		return Identity{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	t, err := LoadTranslations(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(tag, t)
}
