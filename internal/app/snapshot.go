package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"backoffice_console/internal/domain"
)

// DashboardSnapshot is the aggregated payload behind the dashboard view.
type DashboardSnapshot struct {
	Stats       DashboardStats `json:"stats"`
	GeneratedAt string         `json:"generatedAt"`
}

// DashboardService assembles the snapshot from the scheduling collaborator:
// appointments, calls and customers are fetched concurrently, aggregated,
// and cached per company.
type DashboardService struct {
	dir      domain.ScheduleDirectory
	cache    domain.Cache
	agg      *Aggregator
	cacheTTL time.Duration
}

func NewDashboardService(dir domain.ScheduleDirectory, cache domain.Cache, agg *Aggregator, ttl time.Duration) *DashboardService {
	return &DashboardService{dir: dir, cache: cache, agg: agg, cacheTTL: ttl}
}

// Snapshot returns the dashboard payload for a company, cache-first.
func (s *DashboardService) Snapshot(ctx context.Context, companyID string) (DashboardSnapshot, error) {
	key := fmt.Sprintf("dashboard:%s", companyID)
	var cached DashboardSnapshot
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	var (
		appts     []domain.CalendarAppointment
		calls     []domain.CallLog
		customers []domain.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appts, err = s.dir.ListAppointments(gctx, domain.AppointmentFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		calls, err = s.dir.ListCalls(gctx, domain.AppointmentFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.dir.ListCustomers(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardSnapshot{}, err
	}

	snap := DashboardSnapshot{
		Stats:       s.agg.Stats(appts, calls, customers),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_ = s.cache.Set(ctx, key, snap, int(s.cacheTTL.Seconds()))
	return snap, nil
}

// Invalidate drops a company's cached snapshot.
func (s *DashboardService) Invalidate(ctx context.Context, companyID string) {
	_ = s.cache.Del(ctx, fmt.Sprintf("dashboard:%s", companyID))
}
