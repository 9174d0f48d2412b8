package grid_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/grid"
	"github.com/tartampluch/go-datepicker/internal/numerals"
	"github.com/tartampluch/go-datepicker/internal/predicate"
)

func gregorianDate(t *testing.T, y, m, d int) calendar.Date {
	t.Helper()
	date, err := calendar.NewGregorian().Date(y, m, d, 0, 0, time.UTC)
	require.NoError(t, err)
	return date
}

func TestBuild_January2024(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: true})

	m, err := b.Build(gregorianDate(t, 2024, 0, 17))
	require.NoError(t, err)

	assert.Equal(t, grid.Spec{
		PrevMonthDays:    31,
		PrevMonthOffset:  1, // 2024-01-01 is a Monday
		CurrentMonthDays: 31,
		NextMonthDays:    3,
		TotalCells:       35,
	}, m.Spec)
	require.Len(t, m.Cells, 35)

	first := m.Cells[0]
	assert.Equal(t, 31, first.Number)
	assert.False(t, first.IsCurrentMonth)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2023, first.Date.Year())
	assert.Equal(t, 11, first.Date.Month())

	jan1 := m.Cells[1]
	assert.Equal(t, 1, jan1.Number)
	assert.True(t, jan1.IsCurrentMonth)
	assert.Equal(t, 2, jan1.Position)
	assert.Equal(t, "1", jan1.Text)

	last := m.Cells[34]
	assert.Equal(t, 3, last.Number)
	assert.False(t, last.IsCurrentMonth)
	assert.Equal(t, 35, last.Position)
	assert.Equal(t, 1, last.Date.Month())
}

func TestBuild_SixRowMonth(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: true})

	// 2024-03-01 is a Friday: 5 leading cells + 31 days do not fit in 35.
	m, err := b.Build(gregorianDate(t, 2024, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Spec.PrevMonthOffset)
	assert.Equal(t, 29, m.Spec.PrevMonthDays)
	assert.Equal(t, 6, m.Spec.NextMonthDays)
	assert.Len(t, m.Cells, 42)
	assert.Len(t, m.Weeks(), 6)
}

func TestBuild_ExactFit(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: true})

	// 2015-02-01 is a Sunday and February 2015 has 28 days.
	m, err := b.Build(gregorianDate(t, 2015, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Spec.PrevMonthOffset)
	assert.Equal(t, 7, m.Spec.NextMonthDays)
	assert.Len(t, m.Cells, 35)
}

func TestBuild_SaturdayFirst(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: true, FirstDayOfWeek: 6})

	m, err := b.Build(gregorianDate(t, 2024, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Spec.PrevMonthOffset)
	assert.Equal(t, 30, m.Cells[0].Number)
	assert.Equal(t, 31, m.Cells[1].Number)

	for i, c := range m.Cells {
		column := i % 7
		assert.Equal(t, grid.WeekdayOrder(6)[column], c.Date.Weekday(), "cell %d", i)
		assert.Equal(t, column == 0, c.IsStartOfWeek, "cell %d", i)
		assert.Equal(t, column == 6, c.IsEndOfWeek, "cell %d", i)
	}
}

func TestBuild_HiddenOutsideDays(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: false})

	m, err := b.Build(gregorianDate(t, 2024, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Spec.NextMonthDays)
	assert.Equal(t, 36, m.Spec.TotalCells)
	require.Len(t, m.Cells, 36)

	for i := 0; i < 5; i++ {
		assert.Nil(t, m.Cells[i])
	}
	for i := 5; i < 36; i++ {
		require.NotNil(t, m.Cells[i])
		assert.True(t, m.Cells[i].IsCurrentMonth)
		assert.Equal(t, i+1, m.Cells[i].Position)
	}
	assert.Len(t, m.Weeks(), 6)
	assert.Len(t, m.Weeks()[5], 1)
}

// TestBuild_GridInvariants walks thirty years of months for every first day.
func TestBuild_GridInvariants(t *testing.T) {
	cal := calendar.NewGregorian()
	for first := 0; first < 7; first++ {
		shown := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true, FirstDayOfWeek: first})
		hidden := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: false, FirstDayOfWeek: first})

		for year := 2000; year < 2030; year++ {
			for month := 0; month < 12; month++ {
				ref := gregorianDate(t, year, month, 1)

				m, err := shown.Build(ref)
				require.NoError(t, err)
				used := m.Spec.PrevMonthOffset + m.Spec.CurrentMonthDays
				require.Contains(t, []int{35, 42}, len(m.Cells))
				require.GreaterOrEqual(t, len(m.Cells), used)
				require.Equal(t, m.Spec.TotalCells, len(m.Cells))

				h, err := hidden.Build(ref)
				require.NoError(t, err)
				require.Len(t, h.Cells, used)
				for i, c := range h.Cells {
					if i < h.Spec.PrevMonthOffset {
						require.Nil(t, c)
					} else {
						require.NotNil(t, c)
						require.Equal(t, i-h.Spec.PrevMonthOffset+1, c.Number)
					}
				}
			}
		}
	}
}

func TestBuild_DisabledAndNumerals(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{
		ShowOutsideDays: true,
		Numerals:        numerals.Arabic,
		Constraints: predicate.Constraints{
			MinDate:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			Location: time.UTC,
		},
	})

	m, err := b.Build(gregorianDate(t, 2024, 0, 1))
	require.NoError(t, err)

	jan9 := m.Cells[9]
	jan10 := m.Cells[10]
	assert.Equal(t, 9, jan9.Number)
	assert.True(t, jan9.IsDisabled)
	assert.False(t, jan10.IsDisabled)
	assert.Equal(t, "١٠", jan10.Text)
}

func TestBuild_PredicateErrorPropagates(t *testing.T) {
	expectedErr := errors.New("boom")
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{
		Constraints: predicate.Constraints{
			Disabled: predicate.Matching(func(time.Time) (bool, error) { return false, expectedErr }),
			Location: time.UTC,
		},
	})

	m, err := b.Build(gregorianDate(t, 2024, 0, 1))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, expectedErr)
}

func TestBuild_Jalali(t *testing.T) {
	cal := calendar.NewJalali()
	ref, err := cal.Date(1403, 0, 15, 0, 0, time.UTC)
	require.NoError(t, err)

	// 1 Farvardin 1403 (2024-03-20) is a Wednesday.
	sunday := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true})
	m, err := sunday.Build(ref)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Spec.PrevMonthOffset)
	assert.Equal(t, 31, m.Spec.CurrentMonthDays)
	assert.Equal(t, 29, m.Spec.PrevMonthDays, "Esfand 1402 is not leap")
	assert.Equal(t, 27, m.Cells[0].Number)
	assert.Equal(t, 1402, m.Cells[0].Date.Year())

	saturday := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true, FirstDayOfWeek: 6})
	s, err := saturday.Spec(ref)
	require.NoError(t, err)
	assert.Equal(t, 4, s.PrevMonthOffset)
}

func TestBuild_Islamic(t *testing.T) {
	cal := calendar.NewIslamic()
	adapter := calendar.NewAdapter(cal, time.UTC)
	ref, err := adapter.ToCanonical("2024-03-15")
	require.NoError(t, err)

	b := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true, FirstDayOfWeek: 6})
	m, err := b.Build(ref)
	require.NoError(t, err)

	current, err := cal.DaysInMonth(ref.Year(), ref.Month())
	require.NoError(t, err)
	assert.Equal(t, current, m.Spec.CurrentMonthDays)
	prev, err := cal.DaysInMonth(ref.Year(), ref.Month()-1)
	require.NoError(t, err)
	assert.Equal(t, prev, m.Spec.PrevMonthDays)

	day1 := m.Cells[m.Spec.PrevMonthOffset]
	assert.Equal(t, 1, day1.Number)
	assert.Equal(t, ref.Month(), day1.Date.Month())
	assert.Equal(t, (day1.Date.Weekday()-6+7)%7, m.Spec.PrevMonthOffset)

	y, mo, d := day1.Date.Gregorian()
	assert.Equal(t, int(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).Weekday()), day1.Date.Weekday())

	// Consecutive cells are consecutive days across both month boundaries.
	for i := 1; i < len(m.Cells); i++ {
		assert.Equal(t, 1, m.Cells[i].Date.JulianDay()-m.Cells[i-1].Date.JulianDay())
	}
}

// TestBuild_IslamicTable builds every month of the Umm al-Qura table: the
// month's cells must run up to the day before the next month begins.
func TestBuild_IslamicTable(t *testing.T) {
	cal := calendar.NewIslamic()
	b := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true})

	for year := 1356; year <= 1500; year++ {
		for month := 0; month < 12; month++ {
			ref, err := cal.Date(year, month, 1, 0, 0, time.UTC)
			require.NoError(t, err)

			m, err := b.Build(ref)
			require.NoError(t, err, "%d-%02d", year, month+1)
			require.Contains(t, []int{35, 42}, len(m.Cells))

			last := m.Cells[m.Spec.PrevMonthOffset+m.Spec.CurrentMonthDays-1]
			require.True(t, last.IsCurrentMonth)
			require.Equal(t, m.Spec.CurrentMonthDays, last.Number)

			if year == 1500 && month == 11 {
				continue
			}
			next, err := cal.AddMonths(ref, 1)
			require.NoError(t, err)
			require.Equal(t, next.JulianDay()-ref.JulianDay(), m.Spec.CurrentMonthDays, "%d-%02d", year, month+1)
		}
	}
}

func TestBuild_IslamicShortShaban(t *testing.T) {
	cal := calendar.NewIslamic()
	adapter := calendar.NewAdapter(cal, time.UTC)

	// 1945-07-20 falls in Sha'ban 1364, the table's only 28-day month.
	ref, err := adapter.ToCanonical("1945-07-20")
	require.NoError(t, err)
	require.Equal(t, []int{1364, 7}, []int{ref.Year(), ref.Month()})

	m, err := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true}).Build(ref)
	require.NoError(t, err)
	assert.Equal(t, 28, m.Spec.CurrentMonthDays)

	ramadan := m.Cells[m.Spec.PrevMonthOffset+28]
	assert.False(t, ramadan.IsCurrentMonth)
	assert.Equal(t, 1, ramadan.Number)
	assert.Equal(t, 8, ramadan.Date.Month())
}

func TestBuild_IslamicTableEdges(t *testing.T) {
	cal := calendar.NewIslamic()

	t.Run("First month", func(t *testing.T) {
		ref, err := cal.Date(1356, 0, 1, 0, 0, time.UTC)
		require.NoError(t, err)

		for _, show := range []bool{true, false} {
			// Monday first: Muharram 1356 starts on a Sunday, leaving six leading cells.
			m, err := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: show, FirstDayOfWeek: 1}).Build(ref)
			require.NoError(t, err)
			assert.Zero(t, m.Spec.PrevMonthDays)
			require.Positive(t, m.Spec.PrevMonthOffset)

			for i, c := range m.Cells {
				if i < m.Spec.PrevMonthOffset {
					assert.Nil(t, c, "cell %d", i)
				} else {
					require.NotNil(t, c, "cell %d", i)
				}
			}
			assert.Equal(t, 1, m.Cells[m.Spec.PrevMonthOffset].Number)
		}
	})

	t.Run("Last month", func(t *testing.T) {
		ref, err := cal.Date(1500, 11, 1, 0, 0, time.UTC)
		require.NoError(t, err)

		for first := 0; first < 7; first++ {
			m, err := grid.NewBuilder(cal, grid.Options{ShowOutsideDays: true, FirstDayOfWeek: first}).Build(ref)
			require.NoError(t, err)
			require.Contains(t, []int{35, 42}, len(m.Cells))

			used := m.Spec.PrevMonthOffset + m.Spec.CurrentMonthDays
			for i, c := range m.Cells {
				if i < used {
					require.NotNil(t, c, "cell %d", i)
				} else {
					assert.Nil(t, c, "cell %d", i)
				}
			}

			_, err = grid.NewBuilder(cal, grid.Options{FirstDayOfWeek: first}).Build(ref)
			require.NoError(t, err)
		}
	})
}

func TestWeekdayOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, grid.WeekdayOrder(0))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 0}, grid.WeekdayOrder(1))
	assert.Equal(t, []int{6, 0, 1, 2, 3, 4, 5}, grid.WeekdayOrder(6))
}

func TestMonth_Contains(t *testing.T) {
	b := grid.NewBuilder(calendar.NewGregorian(), grid.Options{ShowOutsideDays: true})
	m, err := b.Build(gregorianDate(t, 2024, 0, 1))
	require.NoError(t, err)

	assert.True(t, m.Contains(time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC)), "Outside days do not count")
}
