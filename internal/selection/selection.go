// Package selection computes the next selection after the user picks a day.
package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// ErrOutOfRangeSelection reports a range whose length breaks the configured
// bounds. SelectRange handles it by restarting the range; it is exported for
// callers validating ranges they build themselves.
var ErrOutOfRangeSelection = errors.New(config.ErrMsgOutOfRangeSelect)

// Change tells whether a multiple selection grew or shrank.
type Change string

const (
	ChangeAdded   Change = "added"
	ChangeRemoved Change = "removed"
	ChangeNone    Change = "none"
)

// Single is the state of a single-date picker. A zero Date means nothing is selected.
type Single struct {
	Date time.Time
}

// Range is the state of a range picker. Zero values mean unset bounds.
type Range struct {
	Start time.Time
	End   time.Time
}

// Multiple is the state of a multiple-date picker, sorted ascending.
type Multiple struct {
	Dates  []time.Time
	Change Change
}

// Machine holds the per-picker rules. It keeps no selection state: callers
// pass the current state in and store the returned one.
type Machine struct {
	Location   *time.Location
	TimePicker bool

	// Min and Max bound the range length in days (end day minus start day).
	// Zero disables the bound.
	Min int
	Max int

	// MaxCount caps multiple selections. Zero means unbounded.
	MaxCount int
}

// SelectSingle selects picked, truncated to its day unless time picking is on.
func (m Machine) SelectSingle(picked time.Time) Single {
	loc := m.loc()
	if m.TimePicker {
		return Single{Date: picked.In(loc)}
	}
	return Single{Date: calendar.StartOfDay(picked, loc)}
}

// SelectRange applies a pick to the current range.
//
//   - Without a start, the pick becomes the start.
//   - Re-picking the start while an end is set clears the range.
//   - Re-picking the end while it differs from the start clears the end.
//   - A pick before the start becomes the new start and drops the end.
//   - Any other pick becomes the end, replacing a previous end.
//
// When the resulting length breaks Min or Max the range restarts at the pick.
// Starts are reported at the start of their day and ends at the end of theirs.
func (m Machine) SelectRange(cur Range, picked time.Time) Range {
	loc := m.loc()
	anchor := Range{Start: calendar.StartOfDay(picked, loc)}

	if cur.Start.IsZero() {
		return anchor
	}

	p := calendar.DayNumber(picked, loc)
	s := calendar.DayNumber(cur.Start, loc)
	start := calendar.StartOfDay(cur.Start, loc)

	if !cur.End.IsZero() {
		e := calendar.DayNumber(cur.End, loc)
		switch p {
		case s:
			return Range{}
		case e:
			return Range{Start: start}
		}
	}

	if p < s {
		return anchor
	}

	if err := m.CheckSpan(p - s); err != nil {
		slog.Warn(config.MsgRangeRestart,
			config.LogKeyComponent, config.CompSelection,
			config.LogKeyDays, p-s,
			config.LogKeyError, err,
		)
		return anchor
	}

	return Range{Start: start, End: calendar.EndOfDay(picked, loc)}
}

// CheckSpan validates a range length in days against Min and Max.
func (m Machine) CheckSpan(days int) error {
	if m.Min > 0 && days < m.Min {
		return fmt.Errorf("%w: %d < %d", ErrOutOfRangeSelection, days, m.Min)
	}
	if m.Max > 0 && days > m.Max {
		return fmt.Errorf("%w: %d > %d", ErrOutOfRangeSelection, days, m.Max)
	}
	return nil
}

// SelectMultiple toggles the picked day. The input slice is never modified.
// Adding beyond MaxCount leaves the selection unchanged.
func (m Machine) SelectMultiple(cur []time.Time, picked time.Time) Multiple {
	loc := m.loc()
	day := calendar.StartOfDay(picked, loc)

	dates := make([]time.Time, 0, len(cur)+1)
	removed := false
	for _, d := range cur {
		if calendar.SameDay(d, day, loc) {
			removed = true
			continue
		}
		dates = append(dates, d)
	}

	change := ChangeRemoved
	if !removed {
		if m.MaxCount > 0 && len(cur) >= m.MaxCount {
			slog.Debug(config.MsgMultiLimit,
				config.LogKeyComponent, config.CompSelection,
				config.LogKeyCount, len(cur),
			)
			change = ChangeNone
		} else {
			dates = append(dates, day)
			change = ChangeAdded
		}
	}

	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return Multiple{Dates: dates, Change: change}
}

func (m Machine) loc() *time.Location {
	if m.Location == nil {
		return time.Local
	}
	return m.Location
}
