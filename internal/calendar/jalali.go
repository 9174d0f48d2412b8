package calendar

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// jalaliBreaks are the years starting a new 33-year leap cycle pattern.
var jalaliBreaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

type jalali struct{}

// NewJalali returns the solar Hijri (Persian) calendar.
func NewJalali() Calendar { return engine{arith: jalali{}} }

func (jalali) system() System { return Jalali }

// jalaliYear describes the Gregorian anchoring of a Jalali year.
type jalaliYear struct {
	leap  int // 0 when the year is leap
	gy    int // Gregorian year Farvardin 1 falls in
	march int // Day of March Farvardin 1 falls on
}

func jalaliCalc(jy int) (jalaliYear, error) {
	last := jalaliBreaks[len(jalaliBreaks)-1]
	if jy < jalaliBreaks[0] || jy >= last {
		return jalaliYear{}, fmt.Errorf("%w: %s %d", ErrOutOfTableRange, config.ErrMsgJalaliYear, jy)
	}

	gy := jy + 621
	leapJ := -14
	jp := jalaliBreaks[0]
	jump := 0
	for _, jm := range jalaliBreaks[1:] {
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}

	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return jalaliYear{leap: leap, gy: gy, march: march}, nil
}

func (jalali) toDay(year, month, day int) (int, error) {
	y, err := jalaliCalc(year)
	if err != nil {
		return 0, err
	}
	m := month + 1
	return julianDay(y.gy, time.March, y.march) + (m-1)*31 - m/7*(m-7) + day - 1, nil
}

func (jalali) fromDay(jdn int) (int, int, int, error) {
	gy, _, _ := fromJulianDay(jdn).Date()
	jy := gy - 621
	y, err := jalaliCalc(jy)
	if err != nil {
		return 0, 0, 0, err
	}

	k := jdn - julianDay(gy, time.March, y.march)
	if k >= 0 {
		if k <= 185 {
			return jy, k / 31, k%31 + 1, nil
		}
		k -= 186
	} else {
		jy--
		k += 179
		if y.leap == 1 {
			k++
		}
	}
	return jy, 6 + k/30, k%30 + 1, nil
}

func (jalali) monthLength(year, month int) (int, error) {
	switch {
	case month < 6:
		return 31, nil
	case month < 11:
		return 30, nil
	}
	y, err := jalaliCalc(year)
	if err != nil {
		return 0, err
	}
	if y.leap == 0 {
		return 30, nil
	}
	return 29, nil
}

func (jalali) weekdayOf(jdn int) int {
	return int(fromJulianDay(jdn).Weekday())
}
