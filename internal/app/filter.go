package app

import (
	"strconv"

	"backoffice_console/internal/domain"
)

// ApplyFilters ANDs every active predicate of f over the input. An empty
// filter returns the input slice as-is (identity). Pure: same input, same
// output, no hidden state.
func ApplyFilters(list []domain.CalendarAppointment, f domain.AppointmentFilter) []domain.CalendarAppointment {
	if f.IsZero() {
		return list
	}
	out := make([]domain.CalendarAppointment, 0, len(list))
	for _, a := range list {
		if matchesFilter(a, f) {
			out = append(out, a)
		}
	}
	return out
}

func matchesFilter(a domain.CalendarAppointment, f domain.AppointmentFilter) bool {
	if f.Status != "" && f.Status != "all" && a.Status != f.Status {
		return false
	}
	if f.Date != "" && a.Date != f.Date {
		return false
	}
	// Month and year only filter as a pair; one alone is inert.
	if f.Month != nil && f.Year != nil {
		y, m, ok := splitDate(a.Date)
		if !ok || y != *f.Year || m != *f.Month {
			return false
		}
	}
	// Inclusive bounds on the date string; YYYY-MM-DD sorts lexically.
	if f.From != "" && a.Date < f.From {
		return false
	}
	if f.To != "" && a.Date > f.To {
		return false
	}
	return true
}

// splitDate extracts year and zero-based month from a YYYY-MM-DD string
// without going through time.Parse, so no time zone is involved.
func splitDate(date string) (year, month0 int, ok bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, m - 1, true
}
