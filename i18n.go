package jsonschema

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	i18nBundle *i18n.I18n
	i18nOnce   sync.Once
)

// GetI18n returns the package's internationalization bundle, loading the
// embedded locale files on first use. The embedded locales are a build-time
// invariant, so a load failure panics rather than threading an error through
// every caller.
func GetI18n() *i18n.I18n {
	i18nOnce.Do(func() {
		bundle := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
			panic(err)
		}
		i18nBundle = bundle
	})
	return i18nBundle
}
