package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"backoffice_console/internal/domain"
)

// ScheduleFeed owns the working appointment collection behind the calendar
// and list views. Filter changes trigger a refetch; because a newer filter
// can be requested while an older fetch is still in flight, every fetch is
// tagged with a monotonically increasing sequence number and a result is
// applied only if its tag is still the latest. Stale results are dropped,
// never merged.
type ScheduleFeed struct {
	dir     domain.ScheduleDirectory
	onStale func()

	seq atomic.Uint64

	mu     sync.RWMutex
	filter domain.AppointmentFilter
	items  []domain.CalendarAppointment
}

// NewScheduleFeed wires the feed to the scheduling collaborator. onStale,
// if non-nil, is invoked once per discarded stale response (metrics hook).
func NewScheduleFeed(dir domain.ScheduleDirectory, onStale func()) *ScheduleFeed {
	return &ScheduleFeed{dir: dir, onStale: onStale}
}

// Refresh fetches the collection for the given filter and applies it if no
// newer refresh was requested meanwhile. It returns the visible collection
// after the call, which is the fresh result in the common case and the
// newer-request's state when this result arrived stale.
func (f *ScheduleFeed) Refresh(ctx context.Context, filter domain.AppointmentFilter) ([]domain.CalendarAppointment, error) {
	tag := f.seq.Add(1)

	items, err := f.dir.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if tag != f.seq.Load() {
		// A newer filter state was requested while we were fetching;
		// last write wins, this response is discarded.
		if f.onStale != nil {
			f.onStale()
		}
		log.Debug().Uint64("tag", tag).Uint64("latest", f.seq.Load()).Msg("stale schedule fetch dropped")
		return f.items, nil
	}
	f.filter = filter
	f.items = items
	return items, nil
}

// Current returns the visible collection and the filter it corresponds to.
func (f *ScheduleFeed) Current() ([]domain.CalendarAppointment, domain.AppointmentFilter) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.items, f.filter
}
