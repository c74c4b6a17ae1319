// Package i18n holds the user-facing string catalogs. Catalogs are static
// in-source maps, one per language, with English as the fallback for keys or
// languages that are missing.
package i18n

import "strings"

var catalogs = map[string]map[string]string{
	"en": en,
	"es": es,
}

// T returns the catalog string for key in lang. Language codes are matched
// on their first two letters ("es-MX" selects "es"); unknown languages and
// unknown keys fall back to English.
func T(lang, key string) string {
	code := strings.ToLower(lang)
	if len(code) > 2 {
		code = code[:2]
	}
	if c, ok := catalogs[code]; ok {
		if s, ok := c[key]; ok {
			return s
		}
	}
	return en[key]
}

// Supported reports whether lang names a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[strings.ToLower(lang)]
	return ok
}
