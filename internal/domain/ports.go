package domain

import "context"

// ReviewSource fetches one page of reviews for an app. Implementations own
// transport concerns (timeouts, throttling) and surface TransportError or
// UpstreamError on failure.
type ReviewSource interface {
	FetchPage(ctx context.Context, appID int64, req PageRequest) (PageResponse, error)
}

// ReviewRepository is the warehouse side: ingested reviews plus a log of
// completed fetch runs.
type ReviewRepository interface {
	// Write paths
	UpsertReviews(ctx context.Context, appID int64, rs []NormalizedReview) error
	LogFetch(ctx context.Context, appID int64, count int, lastCursor string) error

	// Read paths
	ListReviews(ctx context.Context, appID int64, pg PageQuery) (ReviewsPage, error)
	CountReviews(ctx context.Context, appID int64) (int64, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries

type PageQuery struct {
	Limit int
	Sort  string
}

type ReviewsPage struct {
	AppID int64              `json:"appid"`
	Items []NormalizedReview `json:"items"`
	Total int64              `json:"total"`
}
