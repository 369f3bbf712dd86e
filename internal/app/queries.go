package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"steamreviews/internal/domain"
)

const defaultSort = "-timestamp_created"

type QueryService struct {
	repo     domain.ReviewRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ReviewRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ListReviews(ctx context.Context, appID int64, pg domain.PageQuery) (domain.ReviewsPage, error) {
	if pg.Sort == "" {
		pg.Sort = defaultSort
	}
	key := fmt.Sprintf("reviews:%d:%d:%s", appID, pg.Limit, pg.Sort)
	var out domain.ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	rs, err := s.repo.ListReviews(ctx, appID, pg)
	if err != nil {
		return domain.ReviewsPage{}, err
	}

	// copy slice to avoid aliasing the repo's backing array
	copyRS := deepCopyReviewsPage(rs)

	// size guard: don't cache giant listings
	if b, _ := json.Marshal(copyRS); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, copyRS, int(s.cacheTTL.Seconds()))
	}
	return copyRS, nil
}

func deepCopyReviewsPage(in domain.ReviewsPage) domain.ReviewsPage {
	out := domain.ReviewsPage{AppID: in.AppID, Total: in.Total}
	if n := len(in.Items); n > 0 {
		out.Items = make([]domain.NormalizedReview, n)
		copy(out.Items, in.Items)
	}
	return out
}
