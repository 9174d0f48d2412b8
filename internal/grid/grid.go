// Package grid lays out the day cells of a month view.
package grid

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/numerals"
	"github.com/tartampluch/go-datepicker/internal/predicate"
)

// Options controls how a month is laid out.
type Options struct {
	ShowOutsideDays bool
	FirstDayOfWeek  int // 0 = Sunday
	Numerals        numerals.System
	Constraints     predicate.Constraints
}

// DayCell describes one rendered day. Cells are built fresh for every month
// and never modified afterwards.
type DayCell struct {
	Date calendar.Date

	// Text is Number written in the configured numeral system.
	Text string

	// Number is the 1-based day in the cell's own month.
	Number int

	// Position is the 1-based index of the cell in the seven-column grid.
	Position int

	IsCurrentMonth bool
	IsDisabled     bool
	IsStartOfWeek  bool
	IsEndOfWeek    bool
}

// Spec summarizes the shape of a month grid.
// TotalCells always equals PrevMonthOffset + CurrentMonthDays + NextMonthDays.
type Spec struct {
	PrevMonthDays    int
	PrevMonthOffset  int
	CurrentMonthDays int
	NextMonthDays    int
	TotalCells       int
}

// Month is a built grid. Cells holds nil placeholders for leading days when
// outside days are hidden, and for outside days the calendar's tables do not
// cover (the first and last months of the Umm al-Qura table).
type Month struct {
	Spec  Spec
	Cells []*DayCell
}

// Builder builds month grids for one calendar system.
type Builder struct {
	Calendar calendar.Calendar
	Options  Options
}

// NewBuilder returns a builder with a normalized first day of week.
func NewBuilder(cal calendar.Calendar, opts Options) *Builder {
	opts.FirstDayOfWeek = normalizeWeekday(opts.FirstDayOfWeek)
	return &Builder{Calendar: cal, Options: opts}
}

// Spec computes the grid shape of the month containing ref.
func (b *Builder) Spec(ref calendar.Date) (Spec, error) {
	first, err := b.Calendar.Date(ref.Year(), ref.Month(), 1, 0, 0, ref.Location())
	if err != nil {
		return Spec{}, err
	}
	return b.spec(first)
}

func (b *Builder) spec(first calendar.Date) (Spec, error) {
	current, err := b.Calendar.DaysInMonth(first.Year(), first.Month())
	if err != nil {
		return Spec{}, err
	}

	// PrevMonthDays stays zero before the first month of a table.
	prev := 0
	prevFirst, err := b.Calendar.AddMonths(first, -1)
	switch {
	case err == nil:
		if prev, err = b.Calendar.DaysInMonth(prevFirst.Year(), prevFirst.Month()); err != nil {
			return Spec{}, err
		}
	case !errors.Is(err, calendar.ErrOutOfTableRange):
		return Spec{}, err
	}

	offset := normalizeWeekday(first.Weekday() - b.Options.FirstDayOfWeek)

	next := 0
	if b.Options.ShowOutsideDays {
		next = trailingDays(offset + current)
	}

	return Spec{
		PrevMonthDays:    prev,
		PrevMonthOffset:  offset,
		CurrentMonthDays: current,
		NextMonthDays:    next,
		TotalCells:       offset + current + next,
	}, nil
}

// trailingDays pads a grid to five rows, or six when five cannot hold it.
func trailingDays(used int) int {
	if used > config.GridCellsShort {
		return config.GridCellsLong - used
	}
	return config.GridCellsShort - used
}

// Build lays out the month containing ref: trailing days of the previous
// month (or nil placeholders), the month itself, then leading days of the
// next month.
func (b *Builder) Build(ref calendar.Date) (*Month, error) {
	loc := ref.Location()
	first, err := b.Calendar.Date(ref.Year(), ref.Month(), 1, 0, 0, loc)
	if err != nil {
		return nil, err
	}
	spec, err := b.spec(first)
	if err != nil {
		return nil, err
	}

	cells := make([]*DayCell, 0, spec.TotalCells)

	prevFirst, prevOK, err := b.outsideMonth(first, -1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < spec.PrevMonthOffset; i++ {
		if !prevOK {
			cells = append(cells, nil)
			continue
		}
		number := spec.PrevMonthDays - spec.PrevMonthOffset + 1 + i
		cell, err := b.cell(prevFirst, number, false, i+1)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	for day := 1; day <= spec.CurrentMonthDays; day++ {
		cell, err := b.cell(first, day, true, spec.PrevMonthOffset+day)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	if spec.NextMonthDays > 0 {
		nextFirst, nextOK, err := b.outsideMonth(first, 1)
		if err != nil {
			return nil, err
		}
		for day := 1; day <= spec.NextMonthDays; day++ {
			if !nextOK {
				cells = append(cells, nil)
				continue
			}
			cell, err := b.cell(nextFirst, day, false, spec.PrevMonthOffset+spec.CurrentMonthDays+day)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}

	slog.Debug(config.MsgGridBuilt,
		config.LogKeyComponent, config.CompGrid,
		config.LogKeyCalendar, string(b.Calendar.System()),
		config.LogKeyYear, first.Year(),
		config.LogKeyMonth, first.Month(),
		config.LogKeyOffset, spec.PrevMonthOffset,
		config.LogKeyCells, len(cells),
	)

	return &Month{Spec: spec, Cells: cells}, nil
}

// outsideMonth returns the first day of the month n months away from first.
// ok is false when outside days are hidden or the month lies beyond the
// calendar's tables.
func (b *Builder) outsideMonth(first calendar.Date, n int) (monthFirst calendar.Date, ok bool, err error) {
	if !b.Options.ShowOutsideDays {
		return calendar.Date{}, false, nil
	}
	monthFirst, err = b.Calendar.AddMonths(first, n)
	if errors.Is(err, calendar.ErrOutOfTableRange) {
		slog.Debug(config.MsgGridEdge,
			config.LogKeyComponent, config.CompGrid,
			config.LogKeyCalendar, string(b.Calendar.System()),
			config.LogKeyYear, first.Year(),
			config.LogKeyMonth, first.Month(),
		)
		return calendar.Date{}, false, nil
	}
	if err != nil {
		return calendar.Date{}, false, err
	}
	return monthFirst, true, nil
}

// cell builds the cell for day number of the month starting at monthFirst.
func (b *Builder) cell(monthFirst calendar.Date, number int, current bool, position int) (*DayCell, error) {
	date, err := b.Calendar.Date(monthFirst.Year(), monthFirst.Month(), number, 0, 0, monthFirst.Location())
	if err != nil {
		return nil, err
	}

	disabled, err := b.Options.Constraints.IsDisabled(date.Time())
	if err != nil {
		return nil, err
	}

	return &DayCell{
		Date:           date,
		Text:           numerals.FormatInt(number, b.Options.Numerals),
		Number:         number,
		Position:       position,
		IsCurrentMonth: current,
		IsDisabled:     disabled,
		IsStartOfWeek:  date.Weekday() == normalizeWeekday(b.Options.FirstDayOfWeek),
		IsEndOfWeek:    date.Weekday() == normalizeWeekday(b.Options.FirstDayOfWeek+config.DaysPerWeek-1),
	}, nil
}

// Weeks splits the cells into rows of seven. The last row may be short when
// outside days are hidden.
func (m *Month) Weeks() [][]*DayCell {
	var weeks [][]*DayCell
	for i := 0; i < len(m.Cells); i += config.DaysPerWeek {
		end := min(i+config.DaysPerWeek, len(m.Cells))
		weeks = append(weeks, m.Cells[i:end])
	}
	return weeks
}

// WeekdayOrder returns the weekday shown in each column, Sunday being 0.
func WeekdayOrder(firstDay int) []int {
	first := normalizeWeekday(firstDay)
	order := make([]int, config.DaysPerWeek)
	for i := range order {
		order[i] = (first + i) % config.DaysPerWeek
	}
	return order
}

// Contains reports whether t falls on one of the current month's cells.
func (m *Month) Contains(t time.Time) bool {
	for _, c := range m.Cells {
		if c != nil && c.IsCurrentMonth && calendar.SameDay(c.Date.Time(), t, c.Date.Location()) {
			return true
		}
	}
	return false
}

func normalizeWeekday(d int) int {
	return ((d % config.DaysPerWeek) + config.DaysPerWeek) % config.DaysPerWeek
}
