package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"steamreviews/internal/domain"
)

// FetchService drives cursor pagination for a single app. Pages are fetched
// strictly one at a time because each request needs the cursor returned by
// the previous one.
type FetchService struct {
	src domain.ReviewSource
}

func NewFetchService(src domain.ReviewSource) *FetchService {
	return &FetchService{src: src}
}

// FetchAll walks the review cursor for appID until the server runs out of
// data, a cursor repeats, or the configured cap is reached, and returns the
// whole run as one envelope. Any page failure fails the run; the caller never
// sees a partial result.
func (s *FetchService) FetchAll(ctx context.Context, appID int64, opts domain.FetchOptions) (domain.FetchResult, error) {
	if opts.NumPerPage < 1 || opts.NumPerPage > 100 {
		return domain.FetchResult{}, &domain.ConfigError{Param: "num_per_page", Reason: "must be between 1 and 100"}
	}

	cursor := domain.StartCursor
	seen := make(map[string]struct{})

	out := make([]any, 0, opts.NumPerPage)
	var raw []domain.RawReview
	if opts.IncludeRaw {
		raw = make([]domain.RawReview, 0, opts.NumPerPage)
	}

	for {
		// guard against servers that hand back a stable or cycling cursor
		if _, dup := seen[cursor]; dup {
			break
		}
		seen[cursor] = struct{}{}

		page, err := s.src.FetchPage(ctx, appID, domain.PageRequest{Cursor: cursor, Params: opts.RequestParams})
		if err != nil {
			return domain.FetchResult{}, err
		}

		next := page.Cursor
		if next == "" {
			next = cursor
		}

		// empty page is the natural end of data; keep its cursor as final
		if len(page.Reviews) == 0 {
			cursor = next
			break
		}

		if opts.IncludeRaw {
			raw = append(raw, page.Reviews...)
		}
		if opts.Normalize {
			for _, r := range page.Reviews {
				out = append(out, NormalizeReview(r))
			}
		} else {
			for _, r := range page.Reviews {
				out = append(out, r)
			}
		}

		cursor = next

		log.Debug().
			Int64("appid", appID).
			Str("cursor", cursor).
			Int("page_reviews", len(page.Reviews)).
			Int("total", len(out)).
			Msg("review page fetched")

		if opts.MaxReviews > 0 && len(out) >= opts.MaxReviews {
			out = out[:opts.MaxReviews]
			if opts.IncludeRaw && len(raw) > opts.MaxReviews {
				raw = raw[:opts.MaxReviews]
			}
			break
		}

		if !sleepCtx(ctx, opts.Delay) {
			return domain.FetchResult{}, ctx.Err()
		}
	}

	return domain.FetchResult{
		AppID:      appID,
		FetchedAt:  time.Now().UTC().Format(time.RFC3339),
		Params:     opts.RequestParams,
		Count:      len(out),
		LastCursor: cursor,
		Reviews:    out,
		RawReviews: raw,
	}, nil
}

// sleepCtx waits for d or returns false if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
