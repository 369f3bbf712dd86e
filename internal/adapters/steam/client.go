package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"steamreviews/internal/adapters/observability"
	"steamreviews/internal/domain"
)

const DefaultBase = "https://store.steampowered.com"

// maxErrBody bounds how much of an error response we keep for diagnostics.
const maxErrBody = 4096

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a client for the public appreviews endpoint. timeout bounds each
// page request; rps throttles client-side on top of the caller's courtesy
// delay.
func New(base string, timeout time.Duration, rps int) *Client {
	if base == "" {
		base = DefaultBase
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// FetchPage performs one GET against /appreviews/{appid}. All filter params
// are passed through verbatim. There is no retrying here: a failed page fails
// the whole run by design.
func (c *Client) FetchPage(ctx context.Context, appID int64, req domain.PageRequest) (domain.PageResponse, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.PageResponse{}, err
	}

	q := url.Values{}
	q.Set("json", "1")
	q.Set("cursor", req.Cursor)
	q.Set("language", req.Params.Language)
	q.Set("review_type", req.Params.ReviewType)
	q.Set("purchase_type", req.Params.PurchaseType)
	q.Set("filter", req.Params.FilterMode)
	q.Set("day_range", strconv.FormatInt(req.Params.DayRange, 10))
	q.Set("num_per_page", strconv.Itoa(req.Params.NumPerPage))
	q.Set("filter_offtopic_activity", strconv.Itoa(req.Params.FilterOfftopic))

	u := fmt.Sprintf("%s/appreviews/%d?%s", c.base, appID, q.Encode())

	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.PageResponse{}, err
	}
	hreq.Header.Set("Accept", "application/json")
	hreq.Header.Set("User-Agent", "steam-reviews/1.0")

	start := time.Now()
	resp, err := c.hc.Do(hreq)
	if err != nil {
		if ctx.Err() != nil {
			return domain.PageResponse{}, ctx.Err()
		}
		observability.ObserveExternal("steam", "appreviews", 0, time.Since(start))
		return domain.PageResponse{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("steam", "appreviews", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return domain.PageResponse{}, &domain.TransportError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.PageResponse{}, &domain.TransportError{Err: fmt.Errorf("decode page: %w", err)}
	}

	if f, ok := payload["success"].(float64); !ok || f != 1 {
		return domain.PageResponse{}, &domain.UpstreamError{Success: payload["success"], Payload: payload}
	}

	var page domain.PageResponse
	if items, ok := payload["reviews"].([]any); ok {
		page.Reviews = make([]domain.RawReview, 0, len(items))
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				page.Reviews = append(page.Reviews, m)
			}
		}
	}
	if cur, ok := payload["cursor"].(string); ok {
		page.Cursor = cur
	}
	return page, nil
}
