package steam_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"steamreviews/internal/adapters/steam"
	"steamreviews/internal/domain"
)

func testParams() domain.RequestParams {
	return domain.RequestParams{
		Language:       "all",
		ReviewType:     "all",
		PurchaseType:   "all",
		FilterMode:     "recent",
		DayRange:       math.MaxInt64,
		NumPerPage:     100,
		FilterOfftopic: 1,
	}
}

func TestFetchPage_DecodesAndPassesParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k, vs := range r.URL.Query() {
			gotQuery[k] = vs[0]
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": 1,
			"cursor": "AB==",
			"reviews": [
				{"recommendationid": "1", "review": "bien", "author": {"steamid": "7656"}},
				{"recommendationid": "2", "review": "ótimo"}
			]
		}`))
	}))
	defer ts.Close()

	cl := steam.New(ts.URL, 2*time.Second, 100)
	page, err := cl.FetchPage(context.Background(), 413150, domain.PageRequest{Cursor: "*", Params: testParams()})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if gotPath != "/appreviews/413150" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery["json"] != "1" || gotQuery["cursor"] != "*" || gotQuery["num_per_page"] != "100" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if gotQuery["filter"] != "recent" || gotQuery["filter_offtopic_activity"] != "1" {
		t.Fatalf("filters not passed through: %v", gotQuery)
	}
	if page.Cursor != "AB==" || len(page.Reviews) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Reviews[1]["review"] != "ótimo" {
		t.Fatalf("unexpected review payload: %+v", page.Reviews[1])
	}
}

func TestFetchPage_Non200IsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	cl := steam.New(ts.URL, 2*time.Second, 100)
	_, err := cl.FetchPage(context.Background(), 1, domain.PageRequest{Cursor: "*", Params: testParams()})

	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.Status != http.StatusBadGateway {
		t.Fatalf("status = %d", te.Status)
	}
	if !strings.Contains(te.Error(), "502") || !strings.Contains(te.Error(), "upstream exploded") {
		t.Fatalf("message should carry status and body prefix: %q", te.Error())
	}
}

func TestFetchPage_FailedSuccessFlagIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": 2, "reviews": []}`))
	}))
	defer ts.Close()

	cl := steam.New(ts.URL, 2*time.Second, 100)
	_, err := cl.FetchPage(context.Background(), 1, domain.PageRequest{Cursor: "*", Params: testParams()})

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !strings.Contains(ue.Error(), "success=2") {
		t.Fatalf("message should carry the indicator: %q", ue.Error())
	}
}

func TestFetchPage_TimeoutIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	cl := steam.New(ts.URL, 20*time.Millisecond, 100)
	_, err := cl.FetchPage(context.Background(), 1, domain.PageRequest{Cursor: "*", Params: testParams()})

	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError on timeout, got %v", err)
	}
}
