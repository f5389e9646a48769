package extract

import (
	"maps"
	"strings"
)

// Factory constructs a fresh extractor instance.
type Factory func() Extractor

// registry maps language codes to extractor factories. Read-only at
// runtime; adding a locale is one new entry, the dispatcher never changes.
var registry = map[string]Factory{
	"EN": NewEnglish,
	"DE": NewGerman,
	"FR": NewFrench,
	"IT": NewItalian,
	"ES": NewSpanish,
}

// ForLanguage returns the extractor registered for the language code, or
// the generic fallback for unknown/unregistered codes.
func ForLanguage(code string) Extractor {
	if f, ok := registry[strings.ToUpper(code)]; ok {
		return f()
	}
	return NewGeneric()
}

// Available returns a copy of the registry for diagnostic tooling.
func Available() map[string]Factory {
	return maps.Clone(registry)
}
