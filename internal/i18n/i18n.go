// Package i18n holds the English and Polish message tables and the
// language preference rules.
package i18n

import (
	"fmt"
	"strings"
)

// Lang is a supported UI language
type Lang string

const (
	English Lang = "en"
	Polish  Lang = "pl"
)

// Default is used when nothing else decides the language.
const Default = English

// Supported lists the available languages in display order.
var Supported = []Lang{English, Polish}

type table struct {
	messages map[string]string
	lists    map[string][]string
}

var tables = map[Lang]table{
	English: {messages: enMessages, lists: enLists},
	Polish:  {messages: plMessages, lists: plLists},
}

// Parse returns the language for a code such as "pl", "pl-PL" or
// "pl_PL.UTF-8".
func Parse(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if i := strings.IndexAny(s, "-_."); i > 0 {
		s = s[:i]
	}
	l := Lang(s)
	if _, ok := tables[l]; ok {
		return l, true
	}
	return "", false
}

// Detect picks the UI language: explicit flag, then the stored preference,
// then the environment locale (pl maps to Polish, everything else to
// English).
func Detect(flag, stored, envLocale string) Lang {
	if l, ok := Parse(flag); ok {
		return l
	}
	if l, ok := Parse(stored); ok {
		return l
	}
	if l, ok := Parse(envLocale); ok {
		return l
	}
	return Default
}

// Translator resolves message keys for one language
type Translator struct {
	lang Lang
}

// New creates a translator. Unknown languages fall back to English.
func New(lang Lang) *Translator {
	if _, ok := tables[lang]; !ok {
		lang = Default
	}
	return &Translator{lang: lang}
}

// Lang returns the active language.
func (t *Translator) Lang() Lang {
	return t.lang
}

// T returns the message for key, falling back to English and then to the
// key itself.
func (t *Translator) T(key string) string {
	if msg, ok := tables[t.lang].messages[key]; ok {
		return msg
	}
	if msg, ok := tables[Default].messages[key]; ok {
		return msg
	}
	return key
}

// Tf formats the message for key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// L returns a list message such as a plan's feature bullets.
func (t *Translator) L(key string) []string {
	if list, ok := tables[t.lang].lists[key]; ok {
		return list
	}
	return tables[Default].lists[key]
}

// Has reports whether key exists in the default table, as a message or a
// list.
func Has(key string) bool {
	if _, ok := tables[Default].messages[key]; ok {
		return true
	}
	_, ok := tables[Default].lists[key]
	return ok
}
