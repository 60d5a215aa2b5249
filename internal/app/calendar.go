package app

import (
	"context"
	"fmt"
	"time"

	"backoffice_console/internal/domain"
)

// GridCells is the fixed month-view size: 6 full weeks, always, so the
// layout never jumps between 4-, 5- and 6-week months.
const GridCells = 42

// DayCell is one entry of the 42-cell month grid.
type DayCell struct {
	Date           string                       `json:"date"` // YYYY-MM-DD
	Day            int                          `json:"day"`
	IsCurrentMonth bool                         `json:"isCurrentMonth"`
	IsToday        bool                         `json:"isToday"`
	Appointments   []domain.CalendarAppointment `json:"appointments,omitempty"`
}

// GridBuilder builds month grids. The clock is injectable so "today" is
// testable; pass nil for time.Now.
type GridBuilder struct {
	clock func() time.Time
}

func NewGridBuilder(clock func() time.Time) *GridBuilder {
	if clock == nil {
		clock = time.Now
	}
	return &GridBuilder{clock: clock}
}

// BuildMonthGrid returns exactly GridCells cells for the given month
// (0-11) and year: trailing days of the previous month to align the grid
// on Monday, every day of the target month, then leading days of the next
// month up to 42. Appointments are bucketed by exact date-string equality;
// their relative order within a cell is the input order, untouched.
//
// Out-of-range month/year is a caller bug; normalization (e.g. wrapping
// month 12 into January next year) happens upstream.
func (b *GridBuilder) BuildMonthGrid(month, year int, appts []domain.CalendarAppointment) []DayCell {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	// Monday-origin week: Monday=0 .. Sunday=6.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)
	today := b.clock().Format(domain.DateLayout)

	byDate := make(map[string][]domain.CalendarAppointment, len(appts))
	for _, a := range appts {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	cells := make([]DayCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(domain.DateLayout)
		cells = append(cells, DayCell{
			Date:           key,
			Day:            d.Day(),
			IsCurrentMonth: d.Year() == year && d.Month() == time.Month(month+1),
			IsToday:        key == today,
			Appointments:   byDate[key],
		})
	}
	return cells
}

// NormalizeMonth wraps an out-of-range month into the 0-11 window,
// carrying over/underflow into the year. This is the caller-side
// normalization the builder itself refuses to do.
func NormalizeMonth(month, year int) (int, int) {
	for month > 11 {
		month -= 12
		year++
	}
	for month < 0 {
		month += 12
		year--
	}
	return month, year
}

// CalendarService glues the scheduling collaborator to the grid builder
// for the month view. Fetched month collections are cached; the grid is
// rebuilt from them on every call so IsToday stays correct across
// midnight.
type CalendarService struct {
	dir      domain.ScheduleDirectory
	grid     *GridBuilder
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCalendarService(dir domain.ScheduleDirectory, grid *GridBuilder) *CalendarService {
	return &CalendarService{dir: dir, grid: grid}
}

// WithCache enables month-collection caching.
func (s *CalendarService) WithCache(cache domain.Cache, ttl time.Duration) *CalendarService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// MonthGrid fetches the month's appointments and builds the grid. Month
// must already be normalized to 0-11.
func (s *CalendarService) MonthGrid(ctx context.Context, month, year int) ([]DayCell, error) {
	appts, err := s.monthAppointments(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return s.grid.BuildMonthGrid(month, year, appts), nil
}

func (s *CalendarService) monthAppointments(ctx context.Context, month, year int) ([]domain.CalendarAppointment, error) {
	key := fmt.Sprintf("calendar:%04d-%02d", year, month)
	if s.cache != nil {
		var cached []domain.CalendarAppointment
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	m, y := month, year
	appts, err := s.dir.ListAppointments(ctx, domain.AppointmentFilter{Month: &m, Year: &y})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, appts, int(s.cacheTTL.Seconds()))
	}
	return appts, nil
}
