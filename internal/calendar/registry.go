package calendar

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Registry maps calendar tags to their implementation.
type Registry struct {
	mu        sync.RWMutex
	calendars map[System]Calendar
}

// NewRegistry returns a registry holding the given calendars.
func NewRegistry(cals ...Calendar) *Registry {
	r := &Registry{calendars: make(map[System]Calendar, len(cals))}
	for _, c := range cals {
		r.Register(c)
	}
	return r
}

// Register adds c under its own tag. Registering a tag again replaces the
// previous entry, so repeated startup registration is harmless.
func (r *Registry) Register(c Calendar) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendars[c.System()] = c

	slog.Debug(config.MsgCalRegistered,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyCalendar, string(c.System()),
	)
}

// Lookup returns the calendar registered for tag.
func (r *Registry) Lookup(tag string) (Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.calendars[System(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCalendar, tag)
	}
	return c, nil
}

var defaultRegistry = NewRegistry(NewGregorian(), NewIslamic(), NewJalali())

// Register adds c to the process-wide registry.
func Register(c Calendar) { defaultRegistry.Register(c) }

// Lookup resolves tag against the process-wide registry.
func Lookup(tag string) (Calendar, error) { return defaultRegistry.Lookup(tag) }
