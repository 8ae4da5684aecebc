package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n builds the translation bundle from the embedded locale files and
// records which languages shipped with this build.
func (app *KonekApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var langs []string
	for _, entry := range entries {
		code, ok := localeCode(entry.Name())
		if !ok {
			continue
		}
		langs = append(langs, code)
		loadLocale(bundle, entry.Name(), code)
	}

	app.SupportedLanguages = langs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// localeCode extracts the language code from an embedded file name. Only
// files shaped like active.<lang>.json participate in the bundle.
func localeCode(name string) (string, bool) {
	if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
		slog.Debug(config.MsgLocaleSkip,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
		return "", false
	}

	code := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
	if code == "" {
		slog.Warn(config.MsgLocaleBadName,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
		return "", false
	}
	return code, true
}

func loadLocale(bundle *i18n.Bundle, name, code string) {
	if _, err := bundle.LoadMessageFileFS(localeFS, config.LocaleDir+"/"+name); err != nil {
		slog.Error(config.ErrLocaleLoad,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
			config.LogKeyError, err,
		)
		return
	}
	slog.Debug(config.MsgLocaleLoaded,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, code,
		config.LogKeyFile, name,
	)
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *KonekApp) UpdateLocalizer() {
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *KonekApp) GetMsg(key string) string {
	if app.Localizer == nil {
		slog.Warn(config.ErrLocNotInit,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
		)
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
