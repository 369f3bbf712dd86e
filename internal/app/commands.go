package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"steamreviews/internal/domain"
)

type IngestionService struct {
	fetch *FetchService
	repo  domain.ReviewRepository
	cache domain.Cache
}

func NewIngestionService(f *FetchService, r domain.ReviewRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{fetch: f, repo: r, cache: cache}
}

// IngestApp runs one full fetch for the app and lands it in the warehouse.
// Warehouse rows are always the fixed schema, so normalization is forced on.
func (s *IngestionService) IngestApp(ctx context.Context, appID int64, opts domain.FetchOptions) (int, error) {
	opts.Normalize = true
	opts.IncludeRaw = false

	res, err := s.fetch.FetchAll(ctx, appID, opts)
	if err != nil {
		return 0, err
	}

	if rows := res.Normalized(); len(rows) > 0 {
		if err := s.repo.UpsertReviews(ctx, appID, rows); err != nil {
			// surface so we know inserts failed, not just the fetch
			return 0, fmt.Errorf("upsert reviews failed for %d: %w", appID, err)
		}
	}

	if err := s.repo.LogFetch(ctx, appID, res.Count, res.LastCursor); err != nil {
		log.Warn().Int64("appid", appID).Err(err).Msg("fetch log write failed")
	}

	// stored data changed; drop any cached listings for this app
	if s.cache != nil {
		s.invalidateReviews(ctx, appID)
	}
	return res.Count, nil
}

// invalidate the most common review cache variants
func (s *IngestionService) invalidateReviews(ctx context.Context, appID int64) {
	for _, lim := range []int{50, 100, 200} {
		_ = s.cache.Del(ctx, fmt.Sprintf("reviews:%d:%d:%s", appID, lim, defaultSort))
	}
}
