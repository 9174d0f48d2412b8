// Package export writes picked dates as an iCalendar feed.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/selection"
)

// ErrEmptySelection is returned when there is nothing to export.
var ErrEmptySelection = errors.New(config.ErrMsgEmptySelection)

// Exporter turns selections into VEVENTs. Days are whole-day events in
// Location; a single date carrying a time of day keeps it.
type Exporter struct {
	Clock    calendar.Clock
	Location *time.Location
	Summary  string
}

// NewExporter returns an exporter using the real clock.
func NewExporter(loc *time.Location, summary string) *Exporter {
	if summary == "" {
		summary = config.FallbackSummary
	}
	return &Exporter{Clock: calendar.RealClock{}, Location: loc, Summary: summary}
}

// Single writes one event for the selected date.
func (e *Exporter) Single(w io.Writer, s selection.Single) error {
	if s.Date.IsZero() {
		return ErrEmptySelection
	}

	loc := e.loc()
	t := s.Date.In(loc)
	if t.Equal(calendar.StartOfDay(t, loc)) {
		return e.encode(w, []span{{start: t, days: 1}})
	}
	return e.encode(w, []span{{start: t, timed: true}})
}

// Range writes one event covering the range. DTEND is exclusive, as
// iCalendar requires for whole-day events. A range without an end covers
// its start day only.
func (e *Exporter) Range(w io.Writer, r selection.Range) error {
	if r.Start.IsZero() {
		return ErrEmptySelection
	}

	loc := e.loc()
	days := 1
	if !r.End.IsZero() {
		days = calendar.DayNumber(r.End, loc) - calendar.DayNumber(r.Start, loc) + 1
	}
	return e.encode(w, []span{{start: calendar.StartOfDay(r.Start, loc), days: days}})
}

// Multiple writes one event per selected day.
func (e *Exporter) Multiple(w io.Writer, dates []time.Time) error {
	if len(dates) == 0 {
		return ErrEmptySelection
	}

	loc := e.loc()
	spans := make([]span, 0, len(dates))
	for _, d := range dates {
		spans = append(spans, span{start: calendar.StartOfDay(d, loc), days: 1})
	}
	return e.encode(w, spans)
}

type span struct {
	start time.Time
	days  int
	timed bool
}

func (e *Exporter) encode(w io.Writer, spans []span) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(e.now().UTC())

	for i, s := range spans {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, s.start.Format(config.FormatUIDDate), i, config.ICalDomain))
		event.Props.SetText(config.PropSummary, e.Summary)
		event.Props.Set(dtStamp)

		start := ical.NewProp(config.PropDTStart)
		if s.timed {
			start.SetDateTime(s.start)
			event.Props.Set(start)
		} else {
			start.SetDate(s.start)
			event.Props.Set(start)

			end := ical.NewProp(config.PropDTEnd)
			end.SetDate(s.start.AddDate(0, 0, s.days))
			event.Props.Set(end)
		}

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrMsgICalEncode, err)
	}

	slog.Info(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyEvents, len(spans),
	)
	return nil
}

func (e *Exporter) loc() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

func (e *Exporter) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}
