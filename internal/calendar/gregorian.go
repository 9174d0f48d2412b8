package calendar

import "time"

type gregorian struct{}

// NewGregorian returns the proleptic Gregorian calendar.
func NewGregorian() Calendar { return engine{arith: gregorian{}} }

func (gregorian) system() System { return Gregorian }

func (gregorian) toDay(year, month, day int) (int, error) {
	return julianDay(year, time.Month(month+1), day), nil
}

func (gregorian) fromDay(jdn int) (int, int, int, error) {
	y, m, d := fromJulianDay(jdn).Date()
	return y, int(m) - 1, d, nil
}

// monthLength relies on time.Date normalizing day 0 to the last day of the previous month.
func (gregorian) monthLength(year, month int) (int, error) {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

func (gregorian) weekdayOf(jdn int) int {
	return int(fromJulianDay(jdn).Weekday())
}
