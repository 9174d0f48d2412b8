package datepicker

import (
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/predicate"
)

// Option customizes a Picker beyond what config.Options can express.
type Option func(*settings)

type settings struct {
	clock    calendar.Clock
	enabled  predicate.Func
	disabled predicate.Func
	onChange func(Selection)
	summary  string
}

// WithEnabledFunc restricts selectable days to those f accepts. It is
// combined with the enabledDates list: a day matching either is enabled.
func WithEnabledFunc(f DateFunc) Option {
	return func(s *settings) { s.enabled = f }
}

// WithDisabledFunc disables the days f accepts, in addition to the
// disabledDates list. Ignored when an enabled rule is configured.
func WithDisabledFunc(f DateFunc) Option {
	return func(s *settings) { s.disabled = f }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithOnChange registers a callback receiving every selection produced by Select.
func WithOnChange(fn func(Selection)) Option {
	return func(s *settings) { s.onChange = fn }
}

// WithExportSummary sets the SUMMARY of exported events.
func WithExportSummary(summary string) Option {
	return func(s *settings) { s.summary = summary }
}
