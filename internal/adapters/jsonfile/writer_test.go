package jsonfile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"steamreviews/internal/adapters/jsonfile"
	"steamreviews/internal/domain"
)

func TestSave_PrettyAndUTF8(t *testing.T) {
	res := domain.FetchResult{
		AppID:      413150,
		FetchedAt:  "2026-01-02T03:04:05Z",
		Params:     domain.DefaultFetchOptions().RequestParams,
		Count:      1,
		LastCursor: "AB==",
		Reviews: []any{domain.NormalizedReview{
			RecommendationID: "1",
			Review:           "素晴らしい <3 & more",
		}},
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := jsonfile.Save(res, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(b)

	// non-ASCII and angle brackets survive verbatim
	if !strings.Contains(s, "素晴らしい <3 & more") {
		t.Fatalf("text was escaped:\n%s", s)
	}
	// pretty-printed
	if !strings.Contains(s, "\n  \"appid\": 413150") {
		t.Fatalf("output not indented:\n%s", s)
	}

	var back domain.FetchResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Count != 1 || back.LastCursor != "AB==" || len(back.Reviews) != 1 {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := jsonfile.DefaultPath(413150); got != "steam_reviews_413150.json" {
		t.Fatalf("got %q", got)
	}
}
