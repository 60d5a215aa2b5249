package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
)

func sampleAppointments() []domain.CalendarAppointment {
	return []domain.CalendarAppointment{
		{ID: "a1", Date: "2025-01-10", Status: domain.StatusConfirmed},
		{ID: "a2", Date: "2025-01-15", Status: domain.StatusPending},
		{ID: "a3", Date: "2025-02-01", Status: domain.StatusConfirmed},
		{ID: "a4", Date: "2025-02-20", Status: domain.StatusCancelled},
		{ID: "a5", Date: "2025-03-05", Status: domain.StatusConfirmed},
	}
}

func intp(v int) *int { return &v }

func TestApplyFilters_IdentityLaw(t *testing.T) {
	data := sampleAppointments()

	assert.Equal(t, data, app.ApplyFilters(data, domain.AppointmentFilter{}))
	// "all" status is the same as no status filter
	assert.Equal(t, data, app.ApplyFilters(data, domain.AppointmentFilter{Status: "all"}))
}

func TestApplyFilters_Status(t *testing.T) {
	data := sampleAppointments()
	got := app.ApplyFilters(data, domain.AppointmentFilter{Status: domain.StatusConfirmed})

	var manual []domain.CalendarAppointment
	for _, a := range data {
		if a.Status == domain.StatusConfirmed {
			manual = append(manual, a)
		}
	}
	require.Len(t, got, 3)
	assert.Equal(t, manual, got)
}

func TestApplyFilters_ExactDate(t *testing.T) {
	got := app.ApplyFilters(sampleAppointments(), domain.AppointmentFilter{Date: "2025-02-01"})
	require.Len(t, got, 1)
	assert.Equal(t, "a3", got[0].ID)
}

func TestApplyFilters_MonthYearPair(t *testing.T) {
	data := sampleAppointments()

	got := app.ApplyFilters(data, domain.AppointmentFilter{Month: intp(1), Year: intp(2025)})
	require.Len(t, got, 2)
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "a4", got[1].ID)

	// one half of the pair alone must not filter
	assert.Equal(t, data, app.ApplyFilters(data, domain.AppointmentFilter{Month: intp(1)}))
	assert.Equal(t, data, app.ApplyFilters(data, domain.AppointmentFilter{Year: intp(2025)}))
}

func TestApplyFilters_DateRange(t *testing.T) {
	data := sampleAppointments()

	cases := []struct {
		name    string
		f       domain.AppointmentFilter
		wantIDs []string
	}{
		{"both bounds inclusive", domain.AppointmentFilter{From: "2025-01-15", To: "2025-02-20"}, []string{"a2", "a3", "a4"}},
		{"open lower bound", domain.AppointmentFilter{To: "2025-01-15"}, []string{"a1", "a2"}},
		{"open upper bound", domain.AppointmentFilter{From: "2025-02-20"}, []string{"a4", "a5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := app.ApplyFilters(data, c.f)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, c.wantIDs, ids)
		})
	}
}

func TestApplyFilters_PredicatesAreANDed(t *testing.T) {
	got := app.ApplyFilters(sampleAppointments(), domain.AppointmentFilter{
		Status: domain.StatusConfirmed,
		From:   "2025-02-01",
	})
	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a3", "a5"}, ids)
}

func TestApplyFilters_Pure(t *testing.T) {
	data := sampleAppointments()
	f := domain.AppointmentFilter{Status: domain.StatusPending, Month: intp(0), Year: intp(2025)}

	first := app.ApplyFilters(data, f)
	second := app.ApplyFilters(data, f)
	assert.Equal(t, first, second)
	// input untouched
	assert.Equal(t, sampleAppointments(), data)
}
