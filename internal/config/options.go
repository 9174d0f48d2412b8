package config

import (
	"errors"
	"fmt"
	"io"
	"time"
	_ "time/tzdata" // Zone names must resolve on hosts without a tz database.

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is returned (wrapped) whenever Options fail validation.
var ErrInvalidOptions = errors.New(ErrMsgInvalidOptions)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Options is the declarative configuration surface of a picker.
// Date values are strings so they can be resolved in the picker's own time zone.
// Predicate rules cannot be expressed here and are attached in code.
// Calendar is checked against the registry when the picker is built.
type Options struct {
	Mode            string   `yaml:"mode" validate:"oneof=single range multiple"`
	Calendar        string   `yaml:"calendar" validate:"required"`
	Locale          string   `yaml:"locale" validate:"required"`
	Numerals        string   `yaml:"numerals"`
	FirstDayOfWeek  int      `yaml:"firstDayOfWeek" validate:"min=0,max=6"`
	ShowOutsideDays bool     `yaml:"showOutsideDays"`
	TimePicker      bool     `yaml:"timePicker"`
	MinDate         string   `yaml:"minDate"`
	MaxDate         string   `yaml:"maxDate"`
	EnabledDates    []string `yaml:"enabledDates"`
	DisabledDates   []string `yaml:"disabledDates"`
	Min             int      `yaml:"min" validate:"min=0"`      // Range min length in days
	Max             int      `yaml:"max" validate:"min=0"`      // Range max length in days
	MaxCount        int      `yaml:"maxCount" validate:"min=0"` // Multiple mode cap, 0 = unbounded
	TimeZone        string   `yaml:"timeZone"`
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		Mode:            DefaultMode,
		Calendar:        DefaultCalendar,
		Locale:          DefaultLocale,
		Numerals:        "",
		FirstDayOfWeek:  DefaultFirstDayOfWeek,
		ShowOutsideDays: true,
		TimeZone:        DefaultTimeZone,
	}
}

// Load decodes YAML options on top of Defaults and validates the result.
// An empty document yields the defaults.
func Load(r io.Reader) (Options, error) {
	opts := Defaults()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%s: %w", ErrMsgOptionsDecode, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks field constraints, the locale tag and the time zone name.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.Max > 0 && o.Max < o.Min {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, ErrMsgRangeBounds)
	}
	if _, err := o.Tag(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if _, err := o.Location(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// Tag parses the configured locale as a BCP 47 tag.
func (o Options) Tag() (language.Tag, error) {
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%s %q: %w", ErrMsgLocale, o.Locale, err)
	}
	return tag, nil
}

// Location resolves the IANA time zone. An empty name means time.Local.
func (o Options) Location() (*time.Location, error) {
	if o.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgTimeZone, o.TimeZone, err)
	}
	return loc, nil
}
