package calendar

import (
	"fmt"

	"github.com/hablullah/go-hijri"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// islamic follows the Umm al-Qura tables published for Saudi Arabia.
type islamic struct{}

// NewIslamic returns the Hijri calendar backed by the Umm al-Qura tables.
func NewIslamic() Calendar { return engine{arith: islamic{}} }

func (islamic) system() System { return Islamic }

// toDay maps a Hijri day onto the civil day count. The round trip rejects days
// the table does not contain, such as day 30 of a 29-day month.
func (h islamic) toDay(year, month, day int) (int, error) {
	if year < config.HijriMinYear || year > config.HijriMaxYear {
		return 0, fmt.Errorf("%w: %s year %d", ErrOutOfTableRange, Islamic, year)
	}

	var ud hijri.UmmAlQuraDate
	setField(&ud.Year, year)
	setField(&ud.Month, month+1)
	setField(&ud.Day, day)

	jdn := julianDay(ud.ToGregorian().Date())

	y, m, d, err := h.fromDay(jdn)
	if err != nil {
		return 0, err
	}
	if y != year || m != month || d != day {
		return 0, fmt.Errorf("%w: %s %04d-%02d-%02d", ErrInvalidDate, Islamic, year, month+1, day)
	}
	return jdn, nil
}

func (islamic) fromDay(jdn int) (int, int, int, error) {
	ud, err := hijri.CreateUmmAlQuraDate(fromJulianDay(jdn))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrOutOfTableRange, err)
	}
	return int(ud.Year), int(ud.Month) - 1, int(ud.Day), nil
}

// monthLength counts down from day 30 to the last valid day. Most months hold
// 29 or 30 days, but the table also carries a 28-day Sha'ban in 1364.
func (h islamic) monthLength(year, month int) (int, error) {
	for day := config.HijriLongestMonth; day >= config.HijriShortestMonth; day-- {
		if _, err := h.toDay(year, month, day); err == nil {
			return day, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %04d-%02d", ErrOutOfTableRange, Islamic, year, month+1)
}

// weekdayOf counts from the table day number rather than a converted time value.
func (islamic) weekdayOf(jdn int) int {
	return civilWeekday(jdn)
}

// setField assigns v to a numeric table field whatever its integer width.
func setField[T ~int | ~int32 | ~int64](dst *T, v int) {
	*dst = T(v)
}
