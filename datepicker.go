// Package datepicker computes month grids and selections for a date picker
// in the Gregorian, Umm al-Qura and Jalali calendars.
//
// A Picker is configured once from config.Options and is then safe for
// concurrent use: it keeps no selection state. Callers hold the current
// Selection and pass it back to Select with every pick.
package datepicker

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/export"
	"github.com/tartampluch/go-datepicker/internal/grid"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/numerals"
	"github.com/tartampluch/go-datepicker/internal/predicate"
	"github.com/tartampluch/go-datepicker/internal/selection"
)

type (
	Date     = calendar.Date
	Clock    = calendar.Clock
	DayCell  = grid.DayCell
	Month    = grid.Month
	Change   = selection.Change
	DateFunc = predicate.Func
)

const (
	ChangeAdded   = selection.ChangeAdded
	ChangeRemoved = selection.ChangeRemoved
	ChangeNone    = selection.ChangeNone
)

// Re-exported sentinels.
var (
	ErrInvalidDate         = calendar.ErrInvalidDate
	ErrUnsupportedCalendar = calendar.ErrUnsupportedCalendar
	ErrOutOfTableRange     = calendar.ErrOutOfTableRange
	ErrInvalidOptions      = config.ErrInvalidOptions
	ErrEmptySelection      = export.ErrEmptySelection
	ErrOutOfRangeSelection = selection.ErrOutOfRangeSelection
)

// Selection is the caller-held selection state. Only the fields of the
// picker's mode are read and written:
//
//   - single: Date
//   - range: Start and End
//   - multiple: Dates (ascending) and Change
type Selection struct {
	Date   time.Time
	Start  time.Time
	End    time.Time
	Dates  []time.Time
	Change Change
}

// Picker binds one calendar system, locale and time zone to the grid,
// predicate and selection engines.
type Picker struct {
	opts     config.Options
	loc      *time.Location
	numerals numerals.System

	cal         calendar.Calendar
	adapter     *calendar.Adapter
	constraints predicate.Constraints
	minDate     calendar.Date
	maxDate     calendar.Date

	builder    *grid.Builder
	machine    selection.Machine
	translator *locale.Translator
	exporter   *export.Exporter
	onChange   func(Selection)
}

// New validates opts and builds a picker. Unknown calendar systems fail with
// ErrUnsupportedCalendar; unparsable bounds or date lists with ErrInvalidDate.
func New(opts config.Options, options ...Option) (*Picker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var s settings
	for _, o := range options {
		o(&s)
	}

	tag, err := opts.Tag()
	if err != nil {
		return nil, err
	}
	loc, err := opts.Location()
	if err != nil {
		return nil, err
	}

	cal, err := calendar.Lookup(opts.Calendar)
	if err != nil {
		return nil, err
	}

	sys := numerals.FromLocale(tag)
	if opts.Numerals != "" {
		if sys, err = numerals.Lookup(opts.Numerals); err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidOptions, err)
		}
	}

	adapter := calendar.NewAdapter(cal, loc)
	if s.clock != nil {
		adapter.Clock = s.clock
	}

	p := &Picker{
		opts:       opts,
		loc:        loc,
		numerals:   sys,
		cal:        cal,
		adapter:    adapter,
		translator: locale.New(tag, sys),
		onChange:   s.onChange,
		machine: selection.Machine{
			Location:   loc,
			TimePicker: opts.TimePicker,
			Min:        opts.Min,
			Max:        opts.Max,
			MaxCount:   opts.MaxCount,
		},
	}

	if p.constraints, err = p.buildConstraints(s); err != nil {
		return nil, err
	}

	p.builder = grid.NewBuilder(cal, grid.Options{
		ShowOutsideDays: opts.ShowOutsideDays,
		FirstDayOfWeek:  opts.FirstDayOfWeek,
		Numerals:        sys,
		Constraints:     p.constraints,
	})

	p.exporter = export.NewExporter(loc, s.summary)
	p.exporter.Clock = adapter.Clock

	slog.Info(config.MsgPickerReady,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMode, opts.Mode,
		config.LogKeyCalendar, opts.Calendar,
		config.LogKeyLocale, tag.String(),
		config.LogKeyTimeZone, loc.String(),
	)

	return p, nil
}

func (p *Picker) buildConstraints(s settings) (predicate.Constraints, error) {
	c := predicate.Constraints{Location: p.loc}

	if p.opts.MinDate != "" {
		t, err := p.adapter.Parse(p.opts.MinDate)
		if err != nil {
			return c, err
		}
		if p.minDate, err = p.cal.FromTime(t); err != nil {
			return c, err
		}
		c.MinDate = t
	}
	if p.opts.MaxDate != "" {
		t, err := p.adapter.Parse(p.opts.MaxDate)
		if err != nil {
			return c, err
		}
		if p.maxDate, err = p.cal.FromTime(t); err != nil {
			return c, err
		}
		c.MaxDate = t
	}

	var err error
	if c.Enabled, err = p.rule(p.opts.EnabledDates, s.enabled); err != nil {
		return c, err
	}
	if c.Disabled, err = p.rule(p.opts.DisabledDates, s.disabled); err != nil {
		return c, err
	}
	return c, nil
}

// rule returns nil when neither a list nor a predicate is configured.
func (p *Picker) rule(list []string, f predicate.Func) (*predicate.Rule, error) {
	if len(list) == 0 && f == nil {
		return nil, nil
	}
	dates := make([]time.Time, 0, len(list))
	for _, raw := range list {
		t, err := p.adapter.Parse(raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return &predicate.Rule{Dates: dates, Func: f}, nil
}

// CheckRange validates the length of a range built by the caller against the
// configured min and max, in days from the start day to the end day. It fails
// with ErrOutOfRangeSelection.
func (p *Picker) CheckRange(start, end time.Time) error {
	days := calendar.DayNumber(end, p.loc) - calendar.DayNumber(start, p.loc)
	return p.machine.CheckSpan(days)
}

// Options returns the configuration the picker was built from.
func (p *Picker) Options() config.Options { return p.opts }

// Location returns the picker's time zone.
func (p *Picker) Location() *time.Location { return p.loc }

// Date converts any supported input (see calendar.Adapter.ToCanonical) to the
// picker's calendar. A nil input is the current instant.
func (p *Picker) Date(raw any) (Date, error) {
	return p.adapter.ToCanonical(raw)
}

// Today returns the current day in the picker's calendar and zone.
func (p *Picker) Today() (Date, error) {
	return p.adapter.Today()
}

// Month builds the grid of the month containing ref.
func (p *Picker) Month(ref any) (*Month, error) {
	d, err := p.adapter.ToCanonical(ref)
	if err != nil {
		return nil, err
	}
	return p.builder.Build(d)
}

// NextMonth returns d moved one month forward, the day clamped to the
// target month's length.
func (p *Picker) NextMonth(d Date) (Date, error) {
	return p.cal.AddMonths(d, 1)
}

// PrevMonth returns d moved one month back.
func (p *Picker) PrevMonth(d Date) (Date, error) {
	return p.cal.AddMonths(d, -1)
}

// WeekdayOrder returns the weekday (0 = Sunday) shown in each grid column.
func (p *Picker) WeekdayOrder() []int {
	return grid.WeekdayOrder(p.opts.FirstDayOfWeek)
}

// WeekdayNames returns the localized column headers.
func (p *Picker) WeekdayNames(short bool) []string {
	return p.translator.WeekdayNames(p.opts.FirstDayOfWeek, short)
}

// MonthTitle returns the localized heading for the month of d.
func (p *Picker) MonthTitle(d Date) string {
	return p.translator.MonthTitle(d)
}

// MonthName returns the localized name of a 0-based month.
func (p *Picker) MonthName(month int) string {
	return p.translator.MonthName(p.cal.System(), month)
}

// FormatNumber writes n with the picker's numeral system.
func (p *Picker) FormatNumber(n int) string {
	return numerals.FormatInt(n, p.numerals)
}

// IsDisabled reports whether the day of raw cannot be picked. Errors from
// caller predicates are returned unchanged.
func (p *Picker) IsDisabled(raw any) (bool, error) {
	d, err := p.adapter.ToCanonical(raw)
	if err != nil {
		return false, err
	}
	return p.constraints.IsDisabled(calendar.StartOfDay(d.Time(), p.loc))
}

// IsYearDisabled reports whether a whole year of the picker's calendar lies
// outside the min/max bounds.
func (p *Picker) IsYearDisabled(year int) bool {
	return predicate.IsYearDisabled(year, p.minDate, p.maxDate)
}

// IsMonthDisabled reports whether a 0-based month of year lies outside the
// min/max bounds.
func (p *Picker) IsMonthDisabled(month, year int) bool {
	return predicate.IsMonthDisabled(month, year, p.minDate, p.maxDate)
}

// Select applies a pick to cur according to the picker's mode and notifies
// the change callback. cur is not modified.
func (p *Picker) Select(cur Selection, picked any) (Selection, error) {
	d, err := p.adapter.ToCanonical(picked)
	if err != nil {
		return cur, err
	}
	t := d.Time()

	var next Selection
	switch p.opts.Mode {
	case config.ModeRange:
		r := p.machine.SelectRange(selection.Range{Start: cur.Start, End: cur.End}, t)
		next = Selection{Start: r.Start, End: r.End}
	case config.ModeMultiple:
		m := p.machine.SelectMultiple(cur.Dates, t)
		next = Selection{Dates: m.Dates, Change: m.Change}
	default:
		next = Selection{Date: p.machine.SelectSingle(t).Date}
	}

	slog.Debug(config.MsgSelectionChange,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMode, p.opts.Mode,
		config.LogKeyPicked, t,
		config.LogKeyStart, next.Start,
		config.LogKeyEnd, next.End,
		config.LogKeyCount, len(next.Dates),
		config.LogKeyChange, next.Change,
	)

	p.notify(next)
	return next, nil
}

// SetTime sets the wall clock of a single selection. It requires time
// picking to be enabled and a date to be selected.
func (p *Picker) SetTime(cur Selection, hour, minute int) (Selection, error) {
	if !p.opts.TimePicker || p.opts.Mode != config.ModeSingle {
		return cur, fmt.Errorf("%w: %s", config.ErrInvalidOptions, config.ErrMsgTimeDisabled)
	}
	if cur.Date.IsZero() {
		return cur, fmt.Errorf("%w: %s", calendar.ErrInvalidDate, config.ErrMsgEmptySelection)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return cur, fmt.Errorf("%w: %02d:%02d", calendar.ErrInvalidDate, hour, minute)
	}

	y, m, d := cur.Date.In(p.loc).Date()
	next := Selection{Date: time.Date(y, m, d, hour, minute, 0, 0, p.loc)}
	p.notify(next)
	return next, nil
}

// Export writes sel as an iCalendar feed.
func (p *Picker) Export(w io.Writer, sel Selection) error {
	switch p.opts.Mode {
	case config.ModeRange:
		return p.exporter.Range(w, selection.Range{Start: sel.Start, End: sel.End})
	case config.ModeMultiple:
		return p.exporter.Multiple(w, sel.Dates)
	default:
		return p.exporter.Single(w, selection.Single{Date: sel.Date})
	}
}

func (p *Picker) notify(s Selection) {
	if p.onChange != nil {
		p.onChange(s)
	}
}
