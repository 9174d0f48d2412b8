// Package predicate decides which dates, months and years are selectable.
package predicate

import (
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
)

// Func is a caller-supplied date rule. Errors are returned to the caller
// unchanged.
type Func func(date time.Time) (bool, error)

// Rule matches either an explicit list of days or a predicate.
// A Rule is supplied by the caller and only ever read.
type Rule struct {
	Dates []time.Time
	Func  Func
}

// Dates returns a Rule matching the listed days.
func Dates(dates ...time.Time) *Rule { return &Rule{Dates: dates} }

// Matching returns a Rule backed by f.
func Matching(f Func) *Rule { return &Rule{Func: f} }

// Matches reports whether t falls on a listed day or satisfies the predicate.
// A rule holding both consults the predicate only when no listed day matched.
func (r *Rule) Matches(t time.Time, loc *time.Location) (bool, error) {
	for _, d := range r.Dates {
		if calendar.SameDay(d, t, loc) {
			return true, nil
		}
	}
	if r.Func == nil {
		return false, nil
	}
	return r.Func(t)
}

// Constraints groups every rule that can disable a date.
// Zero MinDate or MaxDate means unbounded.
type Constraints struct {
	MinDate  time.Time
	MaxDate  time.Time
	Enabled  *Rule
	Disabled *Rule
	Location *time.Location
}

// IsDisabled evaluates, in order: the lower bound at start of day, the upper
// bound at end of day, the enabled rule, then the disabled rule. When an
// enabled rule is present the disabled rule is ignored.
func (c Constraints) IsDisabled(t time.Time) (bool, error) {
	loc := c.loc()

	if !c.MinDate.IsZero() && t.Before(calendar.StartOfDay(c.MinDate, loc)) {
		return true, nil
	}
	if !c.MaxDate.IsZero() && t.After(calendar.EndOfDay(c.MaxDate, loc)) {
		return true, nil
	}
	if c.Enabled != nil {
		ok, err := c.Enabled.Matches(t, loc)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
	if c.Disabled != nil {
		return c.Disabled.Matches(t, loc)
	}
	return false, nil
}

func (c Constraints) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// IsYearDisabled reports whether year lies outside the bounds' years.
// Zero bounds are ignored.
func IsYearDisabled(year int, minDate, maxDate calendar.Date) bool {
	if !minDate.IsZero() && year < minDate.Year() {
		return true
	}
	if !maxDate.IsZero() && year > maxDate.Year() {
		return true
	}
	return false
}

// IsMonthDisabled reports whether a 0-based month of year falls before the
// lower bound's month or after the upper bound's month. Only the bound's own
// year is considered; whole years are handled by IsYearDisabled.
func IsMonthDisabled(month, year int, minDate, maxDate calendar.Date) bool {
	if !minDate.IsZero() && year == minDate.Year() && month < minDate.Month() {
		return true
	}
	if !maxDate.IsZero() && year == maxDate.Year() && month > maxDate.Month() {
		return true
	}
	return false
}
