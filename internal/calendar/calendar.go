package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

var (
	// ErrInvalidDate reports input that cannot be read as a date, or fields
	// that do not name an existing day in the calendar.
	ErrInvalidDate = errors.New(config.ErrMsgInvalidDate)

	// ErrUnsupportedCalendar reports an unregistered calendar tag.
	ErrUnsupportedCalendar = errors.New(config.ErrMsgUnsupportedCal)

	// ErrOutOfTableRange reports a day the calendar tables do not cover.
	ErrOutOfTableRange = errors.New(config.ErrMsgOutOfTable)
)

// Calendar holds the semantics of one calendar system.
// Implementations are stateless and safe for concurrent use.
type Calendar interface {
	System() System

	// FromTime expresses the wall clock day of t in this system.
	FromTime(t time.Time) (Date, error)

	// Date builds a date from fields of this system. month is 0-based.
	Date(year, month, day, hour, minute int, loc *time.Location) (Date, error)

	DaysInMonth(year, month int) (int, error)

	// Weekday returns 0 for Sunday through 6 for Saturday.
	Weekday(year, month, day int) (int, error)

	// AddMonths moves by n months, clamping the day to the target month length.
	AddMonths(d Date, n int) (Date, error)

	AddDays(d Date, n int) (Date, error)

	// StartOfWeek returns the first day of d's week when weeks begin on firstDay.
	StartOfWeek(d Date, firstDay int) (Date, error)
}

// arithmetic is the per-system core every Calendar is built on.
type arithmetic interface {
	system() System
	toDay(year, month, day int) (int, error)
	fromDay(jdn int) (year, month, day int, err error)
	monthLength(year, month int) (int, error)
	weekdayOf(jdn int) int
}

// engine implements Calendar on top of an arithmetic.
type engine struct {
	arith arithmetic
}

func (e engine) System() System { return e.arith.system() }

func (e engine) FromTime(t time.Time) (Date, error) {
	jdn := julianDay(t.Date())
	return e.fromJulianDay(jdn, t.Hour(), t.Minute(), t.Location())
}

func (e engine) Date(year, month, day, hour, minute int, loc *time.Location) (Date, error) {
	if month < 0 || month >= config.MonthsPerYear {
		return Date{}, fmt.Errorf("%w: %s %d", ErrInvalidDate, config.ErrMsgMonthRange, month)
	}
	n, err := e.arith.monthLength(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: %s %d", ErrInvalidDate, config.ErrMsgDayRange, day)
	}
	jdn, err := e.arith.toDay(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{
		loc:     loc,
		system:  e.arith.system(),
		year:    year,
		month:   month,
		day:     day,
		hour:    hour,
		minute:  minute,
		weekday: e.arith.weekdayOf(jdn),
		jdn:     jdn,
	}, nil
}

func (e engine) DaysInMonth(year, month int) (int, error) {
	if month < 0 || month >= config.MonthsPerYear {
		return 0, fmt.Errorf("%w: %s %d", ErrInvalidDate, config.ErrMsgMonthRange, month)
	}
	return e.arith.monthLength(year, month)
}

func (e engine) Weekday(year, month, day int) (int, error) {
	d, err := e.Date(year, month, day, 0, 0, time.UTC)
	if err != nil {
		return 0, err
	}
	return d.weekday, nil
}

func (e engine) AddMonths(d Date, n int) (Date, error) {
	total := d.year*config.MonthsPerYear + d.month + n
	year := floorDiv(total, config.MonthsPerYear)
	month := total - year*config.MonthsPerYear

	length, err := e.arith.monthLength(year, month)
	if err != nil {
		return Date{}, err
	}
	return e.Date(year, month, min(d.day, length), d.hour, d.minute, d.loc)
}

func (e engine) AddDays(d Date, n int) (Date, error) {
	return e.fromJulianDay(d.jdn+n, d.hour, d.minute, d.loc)
}

func (e engine) StartOfWeek(d Date, firstDay int) (Date, error) {
	back := (d.weekday - firstDay + config.DaysPerWeek) % config.DaysPerWeek
	return e.AddDays(d, -back)
}

func (e engine) fromJulianDay(jdn, hour, minute int, loc *time.Location) (Date, error) {
	year, month, day, err := e.arith.fromDay(jdn)
	if err != nil {
		return Date{}, err
	}
	return Date{
		loc:     loc,
		system:  e.arith.system(),
		year:    year,
		month:   month,
		day:     day,
		hour:    hour,
		minute:  minute,
		weekday: e.arith.weekdayOf(jdn),
		jdn:     jdn,
	}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
