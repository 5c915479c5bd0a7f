// Package i18n resolves message keys against a switchable language tag.
//
// The form core never owns language state: it reads Language() once per
// submission and T(key) at render time. A language selector writes through
// SetLanguage, which fans out to subscribers.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	// LangEnglish is the fallback language; its table is the reference set
	// of message keys.
	LangEnglish    = "en"
	LangPortuguese = "ptbr"
)

// Bundle holds the locale tables and the active language tag. Not safe for
// concurrent use; the TUI event loop serializes all access.
type Bundle struct {
	messages map[string]map[string]string
	current  string
	subs     []func(lang string)
}

// Load parses the embedded locale files. The file name without extension is
// the language tag.
func Load() (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	b := &Bundle{messages: make(map[string]map[string]string), current: LangEnglish}
	for _, entry := range entries {
		raw, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		table := make(map[string]string)
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		tag := strings.TrimSuffix(entry.Name(), ".json")
		b.messages[tag] = table
	}
	if _, ok := b.messages[LangEnglish]; !ok {
		return nil, fmt.Errorf("fallback locale %q missing", LangEnglish)
	}
	return b, nil
}

// Languages returns the available language tags, sorted.
func (b *Bundle) Languages() []string {
	tags := make([]string, 0, len(b.messages))
	for tag := range b.messages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Language returns the active language tag.
func (b *Bundle) Language() string { return b.current }

// SetLanguage switches the active language and notifies subscribers.
func (b *Bundle) SetLanguage(tag string) error {
	if _, ok := b.messages[tag]; !ok {
		return fmt.Errorf("i18n: unknown language %q", tag)
	}
	if tag == b.current {
		return nil
	}
	b.current = tag
	for _, fn := range b.subs {
		fn(tag)
	}
	return nil
}

// Subscribe registers a callback invoked on every language change.
func (b *Bundle) Subscribe(fn func(lang string)) {
	b.subs = append(b.subs, fn)
}

// T resolves a message key against the active language, falling back to
// English and finally to the key itself. A miss in the reference table is a
// programming error; the nearest known key is logged to make the typo easy
// to spot.
func (b *Bundle) T(key string) string {
	if msg, ok := b.messages[b.current][key]; ok {
		return msg
	}
	if msg, ok := b.messages[LangEnglish][key]; ok {
		return msg
	}
	if suggestion := b.nearestKey(key); suggestion != "" {
		log.Printf("i18n: unknown key %q (did you mean %q?)", key, suggestion)
	}
	return key
}

// nearestKey finds the reference key with the smallest edit distance to the
// requested one, within a small cutoff.
func (b *Bundle) nearestKey(key string) string {
	const cutoff = 5
	best, bestDist := "", cutoff+1
	for known := range b.messages[LangEnglish] {
		if dist := levenshtein.ComputeDistance(key, known); dist < bestDist {
			best, bestDist = known, dist
		}
	}
	return best
}
