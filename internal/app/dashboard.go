package app

import (
	"time"

	"backoffice_console/internal/domain"
)

// MonthPoint is one entry of the 12-month time series. Month is 0-based to
// match the calendar contract.
type MonthPoint struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Count int `json:"count"`
}

// DashboardStats is everything the dashboard cards and chart need.
type DashboardStats struct {
	TotalAppointments   int          `json:"totalAppointments"`
	PendingAppointments int          `json:"pendingAppointments"`
	TotalCustomers      int          `json:"totalCustomers"`
	TotalCalls          int          `json:"totalCalls"`
	MonthlyAppointments []MonthPoint `json:"monthlyAppointments"`
}

// Aggregator computes dashboard counts and time series. Pure except for
// the injectable clock (nil means time.Now), which anchors the series.
type Aggregator struct {
	clock func() time.Time
}

func NewAggregator(clock func() time.Time) *Aggregator {
	if clock == nil {
		clock = time.Now
	}
	return &Aggregator{clock: clock}
}

// Stats aggregates the three raw collections into one payload.
func (g *Aggregator) Stats(appts []domain.CalendarAppointment, calls []domain.CallLog, customers []domain.Customer) DashboardStats {
	return DashboardStats{
		TotalAppointments:   len(appts),
		PendingAppointments: g.CountByStatus(appts, domain.StatusPending),
		TotalCustomers:      len(customers),
		TotalCalls:          len(calls),
		MonthlyAppointments: g.MonthlyAppointments(appts),
	}
}

// CountByStatus counts appointments in a given status.
func (g *Aggregator) CountByStatus(appts []domain.CalendarAppointment, status string) int {
	n := 0
	for _, a := range appts {
		if a.Status == status {
			n++
		}
	}
	return n
}

// MonthlyAppointments builds the appointment series from the appointment
// dates.
func (g *Aggregator) MonthlyAppointments(appts []domain.CalendarAppointment) []MonthPoint {
	dates := make([]string, 0, len(appts))
	for _, a := range appts {
		dates = append(dates, a.Date)
	}
	return g.MonthlyCounts(dates)
}

// MonthlyCounts returns exactly 12 points, oldest first, ending at the
// clock's current month. Months with no matching dates still appear with
// count 0; the (month, year) sequence is strictly increasing with no gaps.
func (g *Aggregator) MonthlyCounts(dates []string) []MonthPoint {
	counts := make(map[[2]int]int, len(dates))
	for _, d := range dates {
		if y, m, ok := splitDate(d); ok {
			counts[[2]int{y, m}]++
		}
	}

	now := g.clock()
	curYear, curMonth := now.Year(), int(now.Month())-1

	series := make([]MonthPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		m, y := curMonth-i, curYear
		for m < 0 {
			m += 12
			y--
		}
		series = append(series, MonthPoint{Month: m, Year: y, Count: counts[[2]int{y, m}]})
	}
	return series
}
