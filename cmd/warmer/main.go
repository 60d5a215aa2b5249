package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"backoffice_console/internal/adapters/observability"
	"backoffice_console/internal/adapters/platform"
	redisad "backoffice_console/internal/adapters/redis"
	"backoffice_console/internal/app"
	"backoffice_console/internal/shared"
)

// The warmer pre-populates the caches the console reads first thing in the
// morning: the dashboard snapshot and the month grids around today. Run it
// from cron; it exits when every warm task has finished.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.PlatformBase).
		Int("workers", cfg.WarmWorkers).
		Msg("warmer starting")

	client, err := platform.New(cfg.PlatformBase, cfg.PlatformKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize platform client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	company, err := client.GetCompany(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("company resolution failed")
	}

	dashboard := app.NewDashboardService(client, cache, app.NewAggregator(nil), cfg.CacheTTL)
	calendar := app.NewCalendarService(client, app.NewGridBuilder(nil)).WithCache(cache, cfg.CacheTTL)

	now := time.Now()
	type task struct {
		name string
		run  func(context.Context) error
	}
	tasks := []task{
		{name: "dashboard", run: func(ctx context.Context) error {
			_, err := dashboard.Snapshot(ctx, company.ID)
			return err
		}},
	}
	// previous, current and next two months
	for delta := -1; delta <= 2; delta++ {
		month, year := app.NormalizeMonth(int(now.Month())-1+delta, now.Year())
		tasks = append(tasks, task{name: "calendar", run: func(ctx context.Context) error {
			_, err := calendar.MonthGrid(ctx, month, year)
			return err
		}})
	}

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup

	for _, t := range tasks {
		t := t

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := t.run(ctx); err != nil {
				log.Warn().Str("task", t.name).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("task", t.name).Msg("warm ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("warmup completed")
}
