package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
)

func TestMonthlyCounts_TwelvePointsZeroFilled(t *testing.T) {
	// fixed "today": March 2025; one appointment each in January and March
	agg := app.NewAggregator(fixedClock(2025, time.March, 10))
	series := agg.MonthlyCounts([]string{"2025-01-08", "2025-03-02"})

	require.Len(t, series, 12)

	// oldest first, ending at the current month
	assert.Equal(t, app.MonthPoint{Month: 3, Year: 2024, Count: 0}, series[0])
	assert.Equal(t, app.MonthPoint{Month: 2, Year: 2025, Count: 1}, series[11])
	assert.Equal(t, app.MonthPoint{Month: 0, Year: 2025, Count: 1}, series[9])
	assert.Equal(t, app.MonthPoint{Month: 1, Year: 2025, Count: 0}, series[10])

	// (month, year) strictly increasing with no gaps
	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1], series[i]
		wantMonth, wantYear := prev.Month+1, prev.Year
		if wantMonth == 12 {
			wantMonth, wantYear = 0, prev.Year+1
		}
		assert.Equal(t, wantMonth, cur.Month, "gap at %d", i)
		assert.Equal(t, wantYear, cur.Year, "gap at %d", i)
	}
}

func TestMonthlyCounts_YearBoundary(t *testing.T) {
	agg := app.NewAggregator(fixedClock(2025, time.January, 31))
	series := agg.MonthlyCounts([]string{"2024-02-15", "2024-12-31", "2025-01-01"})

	require.Len(t, series, 12)
	assert.Equal(t, app.MonthPoint{Month: 1, Year: 2024, Count: 1}, series[0])
	assert.Equal(t, app.MonthPoint{Month: 11, Year: 2024, Count: 1}, series[10])
	assert.Equal(t, app.MonthPoint{Month: 0, Year: 2025, Count: 1}, series[11])
}

func TestMonthlyCounts_IgnoresMalformedDates(t *testing.T) {
	agg := app.NewAggregator(fixedClock(2025, time.March, 10))
	series := agg.MonthlyCounts([]string{"not-a-date", "", "2025-03-02"})

	total := 0
	for _, p := range series {
		total += p.Count
	}
	assert.Equal(t, 1, total)
}

func TestStats(t *testing.T) {
	agg := app.NewAggregator(fixedClock(2025, time.March, 10))
	appts := []domain.CalendarAppointment{
		{ID: "a1", Date: "2025-03-01", Status: domain.StatusPending},
		{ID: "a2", Date: "2025-03-02", Status: domain.StatusConfirmed},
		{ID: "a3", Date: "2025-02-11", Status: domain.StatusPending},
	}
	calls := []domain.CallLog{{ID: "c1"}, {ID: "c2"}}
	customers := []domain.Customer{{ID: "u1"}}

	stats := agg.Stats(appts, calls, customers)
	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.PendingAppointments)
	assert.Equal(t, 2, stats.TotalCalls)
	assert.Equal(t, 1, stats.TotalCustomers)
	require.Len(t, stats.MonthlyAppointments, 12)
	assert.Equal(t, 2, stats.MonthlyAppointments[11].Count) // March
	assert.Equal(t, 1, stats.MonthlyAppointments[10].Count) // February
}
