package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// inputLayouts are tried in order when the raw input is a string.
var inputLayouts = []string{
	config.DateFormatRFC3339,
	config.DateFormatMinute,
	config.DateFormatDay,
}

// Adapter turns caller-supplied dates into canonical dates of one calendar.
type Adapter struct {
	Calendar Calendar
	Location *time.Location
	Clock    Clock
}

// NewAdapter returns an adapter using the real clock.
func NewAdapter(cal Calendar, loc *time.Location) *Adapter {
	if loc == nil {
		loc = time.Local
	}
	return &Adapter{Calendar: cal, Location: loc, Clock: RealClock{}}
}

// ToCanonical normalizes raw into the adapter's calendar.
//
// Accepted inputs are nil (the current instant), time.Time, *time.Time, Date,
// a string in RFC 3339, "2006-01-02T15:04" or "2006-01-02" layout, and int64
// Unix milliseconds. A Date already in the adapter's calendar is returned as
// is. Anything else fails with ErrInvalidDate.
func (a *Adapter) ToCanonical(raw any) (Date, error) {
	switch v := raw.(type) {
	case nil:
		return a.Calendar.FromTime(a.now().In(a.Location))
	case Date:
		if v.IsZero() {
			return Date{}, fmt.Errorf("%w: zero date", ErrInvalidDate)
		}
		if v.system == a.Calendar.System() {
			return v, nil
		}
		return a.Calendar.FromTime(v.Time())
	case time.Time:
		return a.fromTime(v)
	case *time.Time:
		if v == nil {
			return a.ToCanonical(nil)
		}
		return a.fromTime(*v)
	case string:
		t, err := a.Parse(v)
		if err != nil {
			return Date{}, err
		}
		return a.Calendar.FromTime(t)
	case int64:
		return a.Calendar.FromTime(time.UnixMilli(v).In(a.Location))
	default:
		return Date{}, fmt.Errorf("%w: unsupported input %T", ErrInvalidDate, raw)
	}
}

// Parse reads a date string in the adapter's location.
func (a *Adapter) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, a.Location); err == nil {
			return t.In(a.Location), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Today returns the canonical date of the current day.
func (a *Adapter) Today() (Date, error) {
	return a.ToCanonical(nil)
}

func (a *Adapter) fromTime(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
	}
	return a.Calendar.FromTime(t.In(a.Location))
}

func (a *Adapter) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}
