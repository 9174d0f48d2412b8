// Package locale translates month and weekday names using the embedded
// message catalogs.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/numerals"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

type catalog struct {
	bundle    *i18n.Bundle
	languages []string
}

var loadCatalog = sync.OnceValue(func() catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFileExt, json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		slog.Error(config.ErrMsgLocalesAccess,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyError, err,
		)
		return catalog{bundle: bundle}
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleExt) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleExt)
		if code == "" {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, config.LocalesDir+"/"+name); err != nil {
			slog.Error(config.ErrMsgLocaleLoad,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyLang, code,
			config.LogKeyFile, name,
		)
		langs = append(langs, code)
	}

	return catalog{bundle: bundle, languages: langs}
})

// Languages lists the language codes with an embedded catalog.
func Languages() []string {
	return append([]string(nil), loadCatalog().languages...)
}

// Translator resolves names for one locale. Numbers inside titles are
// written in Numerals.
type Translator struct {
	Tag      language.Tag
	Numerals numerals.System

	localizer *i18n.Localizer
}

// New returns a translator for tag. Languages without a catalog fall back to English.
func New(tag language.Tag, sys numerals.System) *Translator {
	base, _ := tag.Base()
	return &Translator{
		Tag:       tag,
		Numerals:  sys,
		localizer: i18n.NewLocalizer(loadCatalog().bundle, tag.String(), base.String()),
	}
}

// Msg translates key. A missing key is returned as is.
func (t *Translator) Msg(key string, data map[string]any) string {
	if t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// MonthName returns the name of the 0-based month of a calendar system.
func (t *Translator) MonthName(sys calendar.System, month int) string {
	return t.Msg(fmt.Sprintf(config.TKeyMonthFormat, sys, month), nil)
}

// WeekdayName returns the name of a weekday, 0 being Sunday.
func (t *Translator) WeekdayName(weekday int, short bool) string {
	format := config.TKeyWeekdayFormat
	if short {
		format = config.TKeyWeekdayShortFormat
	}
	return t.Msg(fmt.Sprintf(format, weekday), nil)
}

// WeekdayNames returns the seven weekday names starting at firstDay.
func (t *Translator) WeekdayNames(firstDay int, short bool) []string {
	names := make([]string, config.DaysPerWeek)
	for i := range names {
		wd := ((firstDay+i)%config.DaysPerWeek + config.DaysPerWeek) % config.DaysPerWeek
		names[i] = t.WeekdayName(wd, short)
	}
	return names
}

// MonthTitle renders the heading of the month holding d, e.g. "January 2024".
func (t *Translator) MonthTitle(d calendar.Date) string {
	return t.Msg(config.TKeyMonthTitle, map[string]any{
		"Month": t.MonthName(d.System(), d.Month()),
		"Year":  numerals.FormatInt(d.Year(), t.Numerals),
	})
}
