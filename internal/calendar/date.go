package calendar

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// System identifies a calendar system by its Unicode "ca" keyword.
type System string

const (
	Gregorian System = config.CalendarGregory
	Islamic   System = config.CalendarIslamic
	Jalali    System = config.CalendarJalali
)

// Date is a point in time expressed in one calendar system.
//
// Year, Month (0-based) and Day belong to System. The Gregorian civil date of
// the same day is always kept alongside so the value can be turned back into a
// time.Time without going through the calendar tables again. A Date is only
// built by a Calendar and is never modified afterwards.
type Date struct {
	loc    *time.Location
	system System

	year, month, day int
	hour, minute     int
	weekday          int

	// jdn is the Julian day number of the civil day.
	jdn int
}

// System returns the calendar system the fields are expressed in.
func (d Date) System() System { return d.system }

// Year returns the year in the date's calendar system.
func (d Date) Year() int { return d.year }

// Month returns the 0-based month in the date's calendar system.
func (d Date) Month() int { return d.month }

// Day returns the 1-based day of month in the date's calendar system.
func (d Date) Day() int { return d.day }

func (d Date) Hour() int   { return d.hour }
func (d Date) Minute() int { return d.minute }

// Weekday returns 0 for Sunday through 6 for Saturday.
func (d Date) Weekday() int { return d.weekday }

// Location returns the zone the wall clock fields refer to.
func (d Date) Location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

// IsZero reports whether d was never built by a Calendar.
func (d Date) IsZero() bool { return d.system == "" }

// Gregorian returns the paired Gregorian civil date.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	return fromJulianDay(d.jdn).Date()
}

// Time converts the date back to a native time value.
func (d Date) Time() time.Time {
	y, m, day := d.Gregorian()
	return time.Date(y, m, day, d.hour, d.minute, 0, 0, d.Location())
}

// Unix returns the Unix timestamp of the date's wall clock in its location.
func (d Date) Unix() int64 { return d.Time().Unix() }

// JulianDay returns the Julian day number of the civil day.
func (d Date) JulianDay() int { return d.jdn }

// SameDay reports whether both dates fall on the same civil day.
func (d Date) SameDay(o Date) bool { return d.jdn == o.jdn }

// Before reports whether d is on an earlier civil day than o.
func (d Date) Before(o Date) bool { return d.jdn < o.jdn }

// WithTime returns a copy of d with the wall clock set to hour:minute.
func (d Date) WithTime(hour, minute int) Date {
	d.hour, d.minute = hour, minute
	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%s %04d-%02d-%02d %02d:%02d", d.system, d.year, d.month+1, d.day, d.hour, d.minute)
}

// julianDay returns the Julian day number of a proleptic Gregorian date.
func julianDay(year int, month time.Month, day int) int {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/config.SecondsPerDay) + config.UnixEpochJulianDay
}

// fromJulianDay returns UTC midnight of the given Julian day.
func fromJulianDay(jdn int) time.Time {
	return time.Unix(int64(jdn-config.UnixEpochJulianDay)*config.SecondsPerDay, 0).UTC()
}

// civilWeekday derives the day of week from a Julian day number.
func civilWeekday(jdn int) int {
	return ((jdn+1)%config.DaysPerWeek + config.DaysPerWeek) % config.DaysPerWeek
}
