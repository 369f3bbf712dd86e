package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"steamreviews/internal/adapters/observability"
	redisad "steamreviews/internal/adapters/redis"
	"steamreviews/internal/adapters/steam"
	"steamreviews/internal/app"
	"steamreviews/internal/domain"
	"steamreviews/internal/shared"
	mysqlrepo "steamreviews/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// global logger: console in dev, JSON otherwise
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.SteamBase).
		Int("workers", cfg.Workers).
		Int("apps", len(cfg.AppIDs)).
		Int("max_reviews", cfg.MaxReviews).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	fetch := app.NewFetchService(steam.New(cfg.SteamBase, cfg.Timeout, 5))
	ing := app.NewIngestionService(fetch, repo, cache)

	opts := domain.DefaultFetchOptions()
	opts.NumPerPage = cfg.PageSize
	opts.MaxReviews = cfg.MaxReviews
	opts.Delay = cfg.Delay

	// Each app gets its own independent fetch run with its own cursor and
	// accumulation state; the semaphore only bounds how many run at once.
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range cfg.AppIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(appID int64) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := ing.IngestApp(ctx, appID, opts)
			if err != nil {
				log.Warn().Int64("appid", appID).Err(err).Msg("ingest failed")
				return
			}
			observability.ObserveIngested(appID, n)
			log.Info().Int64("appid", appID).Int("reviews", n).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
