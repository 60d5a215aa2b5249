package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "backoffice_console/internal/adapters/http_server"
	"backoffice_console/internal/adapters/i18n"
	"backoffice_console/internal/adapters/observability"
	"backoffice_console/internal/adapters/platform"
	redisad "backoffice_console/internal/adapters/redis"
	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
	"backoffice_console/internal/shared"
	mysqlrepo "backoffice_console/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	client, err := platform.New(cfg.PlatformBase, cfg.PlatformKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize platform client")
	}

	// resolve the tenant once; unknown industries fall back to the default
	// config inside NewSession, so a bad upstream value cannot take the
	// process down.
	company, err := client.GetCompany(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("company resolution failed, starting anonymous")
		company = domain.Company{}
	}
	sessions := app.NewSessionManager(domain.NewSession(company.ID, cfg.DefaultLocale, company))
	sess := sessions.Current()
	log.Info().
		Str("company", company.Name).
		Str("industry", string(sess.Config.Type)).
		Str("axis", string(sess.Config.ResourceAxis())).
		Msg("tenant resolved")

	translator := i18n.New(sess.Locale)
	terms := app.NewFieldMappingResolver(translator)
	resources := app.NewResourceService(repo, cache, cfg.CacheTTL)
	grid := app.NewGridBuilder(nil)
	calendar := app.NewCalendarService(client, grid).WithCache(cache, cfg.CacheTTL)
	dashboard := app.NewDashboardService(client, cache, app.NewAggregator(nil), cfg.CacheTTL)
	feed := app.NewScheduleFeed(client, observability.ObserveStaleFetch)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Sessions:  sessions,
		Resources: resources,
		Calendar:  calendar,
		Dashboard: dashboard,
		Feed:      feed,
		Terms:     terms,
		Schedule:  client,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
