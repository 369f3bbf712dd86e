package domain

import (
	"math"
	"time"
)

// StartCursor is the wildcard token Steam accepts for the first page.
const StartCursor = "*"

// RequestParams are the filter/paging parameters sent with every page request
// and echoed verbatim into the result envelope. Values are passed through to
// Steam without local interpretation.
type RequestParams struct {
	Language       string `json:"language"`
	ReviewType     string `json:"review_type"`
	PurchaseType   string `json:"purchase_type"`
	FilterMode     string `json:"filter"`
	DayRange       int64  `json:"day_range"`
	NumPerPage     int    `json:"num_per_page"`
	FilterOfftopic int    `json:"filter_offtopic_activity"`
}

// FetchOptions configures one whole fetch run.
type FetchOptions struct {
	RequestParams

	IncludeRaw bool
	Normalize  bool
	MaxReviews int // 0 means uncapped
	Delay      time.Duration
}

// DefaultFetchOptions mirrors the defaults the Steam review endpoint is
// normally driven with: all languages/types, recent ordering, all-time day
// range, full pages, off-topic activity filtered, polite 250ms pacing.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		RequestParams: RequestParams{
			Language:       "all",
			ReviewType:     "all",
			PurchaseType:   "all",
			FilterMode:     "recent",
			DayRange:       math.MaxInt64,
			NumPerPage:     100,
			FilterOfftopic: 1,
		},
		Normalize: true,
		Delay:     250 * time.Millisecond,
	}
}

// PageRequest identifies one page of one run.
type PageRequest struct {
	Cursor string
	Params RequestParams
}

// PageResponse is one decoded, already success-checked page.
type PageResponse struct {
	Reviews []RawReview
	Cursor  string // next-page token; empty when the payload carried none
}

// FetchResult is the envelope assembled once at the end of a successful run
// and handed to persistence. Reviews holds NormalizedReview values, or the
// raw page objects when normalization was disabled.
type FetchResult struct {
	AppID      int64         `json:"appid"`
	FetchedAt  string        `json:"fetched_at_utc"`
	Params     RequestParams `json:"request_params"`
	Count      int           `json:"count"`
	LastCursor string        `json:"last_cursor"`
	Reviews    []any         `json:"reviews"`
	RawReviews []RawReview   `json:"raw_reviews,omitempty"`
}

// Normalized extracts the typed reviews from the envelope. Raw-mode entries
// are skipped.
func (r FetchResult) Normalized() []NormalizedReview {
	out := make([]NormalizedReview, 0, len(r.Reviews))
	for _, v := range r.Reviews {
		if nr, ok := v.(NormalizedReview); ok {
			out = append(out, nr)
		}
	}
	return out
}
