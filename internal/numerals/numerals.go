// Package numerals writes day and year numbers in the digits of a CLDR
// numbering system.
package numerals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnsupported is returned by Lookup for unknown numbering systems.
var ErrUnsupported = errors.New(config.ErrMsgNumerals)

// System is a CLDR numbering system identifier (e.g. "latn", "arab").
type System string

const (
	Latin    System = config.DefaultNumerals
	Arabic   System = "arab"
	Persian  System = "arabext"
	Hanidec  System = "hanidec"
	Fullwide System = "fullwide"
)

// hanidec is algorithmic in CLDR, so x/text prints it with ASCII digits.
var hanidec = digits{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

type digits [10]string

// system pairs a printer for the numbering system with its ten digits.
type system struct {
	printer *message.Printer
	digits  digits
}

var systems sync.Map // System -> *system

// load resolves sys through x/text. ok is false when x/text falls back to
// ASCII digits for a system other than Latin.
func load(sys System) (*system, bool) {
	if v, ok := systems.Load(sys); ok {
		return v.(*system), true
	}

	tag, err := language.English.SetTypeForKey("nu", string(sys))
	if err != nil {
		return nil, false
	}
	p := message.NewPrinter(tag)

	s := &system{printer: p}
	if sys == Hanidec {
		s.digits = hanidec
	} else {
		for d := range s.digits {
			s.digits[d] = p.Sprint(number.Decimal(d))
		}
		if sys != Latin && s.digits[1] == "1" {
			return nil, false
		}
	}

	v, _ := systems.LoadOrStore(sys, s)
	return v.(*system), true
}

// Lookup validates a numbering system key. Empty means Latin.
func Lookup(key string) (System, error) {
	if key == "" {
		return Latin, nil
	}
	sys := System(key)
	if _, ok := load(sys); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, key)
	}
	return sys, nil
}

// FromLocale returns the numbering system requested by the "-u-nu-" extension
// of a BCP 47 tag, or Latin when the tag carries none.
func FromLocale(tag language.Tag) System {
	nu := tag.TypeForKey("nu")
	if sys, err := Lookup(nu); err == nil {
		return sys
	}
	return Latin
}

// Format replaces every ASCII digit of s. Other runes are kept as is.
// Unknown systems leave the string untouched.
func Format(s string, sys System) string {
	if sys == "" || sys == Latin {
		return s
	}
	ns, ok := load(sys)
	if !ok {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(ns.digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatInt writes n without grouping separators.
func FormatInt(n int, sys System) string {
	switch sys {
	case "", Latin:
		return strconv.Itoa(n)
	case Hanidec:
		return Format(strconv.Itoa(n), sys)
	}
	ns, ok := load(sys)
	if !ok {
		return strconv.Itoa(n)
	}
	return ns.printer.Sprint(number.Decimal(n, number.NoSeparator()))
}
