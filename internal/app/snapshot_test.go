package app_test

import (
	"context"
	"testing"
	"time"

	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
)

type staticDirectory struct {
	appts     []domain.CalendarAppointment
	calls     []domain.CallLog
	customers []domain.Customer
	fetches   int
}

func (d *staticDirectory) ListAppointments(ctx context.Context, f domain.AppointmentFilter) ([]domain.CalendarAppointment, error) {
	d.fetches++
	return d.appts, nil
}

func (d *staticDirectory) ListCalls(ctx context.Context, f domain.AppointmentFilter) ([]domain.CallLog, error) {
	d.fetches++
	return d.calls, nil
}

func (d *staticDirectory) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	d.fetches++
	return d.customers, nil
}

func TestDashboardSnapshot_AggregatesAndCaches(t *testing.T) {
	dir := &staticDirectory{
		appts: []domain.CalendarAppointment{
			{ID: "a1", Date: "2025-03-01", Status: domain.StatusPending},
			{ID: "a2", Date: "2025-01-20", Status: domain.StatusConfirmed},
		},
		calls:     []domain.CallLog{{ID: "c1"}},
		customers: []domain.Customer{{ID: "u1"}, {ID: "u2"}},
	}
	cache := &fakeCache{}
	svc := app.NewDashboardService(dir, cache, app.NewAggregator(fixedClock(2025, time.March, 10)), 10*time.Minute)

	snap, err := svc.Snapshot(context.Background(), "c1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if snap.Stats.TotalAppointments != 2 || snap.Stats.PendingAppointments != 1 ||
		snap.Stats.TotalCalls != 1 || snap.Stats.TotalCustomers != 2 {
		t.Fatalf("stats: %+v", snap.Stats)
	}
	if len(snap.Stats.MonthlyAppointments) != 12 {
		t.Fatalf("series length: %d", len(snap.Stats.MonthlyAppointments))
	}
	if dir.fetches != 3 {
		t.Fatalf("fetches: %d, want 3", dir.fetches)
	}

	// second call served from cache
	if _, err := svc.Snapshot(context.Background(), "c1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if dir.fetches != 3 {
		t.Fatalf("cached snapshot must not refetch, fetches=%d", dir.fetches)
	}

	// invalidation forces a rebuild
	svc.Invalidate(context.Background(), "c1")
	if _, err := svc.Snapshot(context.Background(), "c1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if dir.fetches != 6 {
		t.Fatalf("fetches after invalidate: %d, want 6", dir.fetches)
	}
}
