package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "steamreviews/internal/adapters/redis"
	"steamreviews/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	want := domain.ReviewsPage{
		AppID: 413150,
		Items: []domain.NormalizedReview{{RecommendationID: "1", Review: "bueno"}},
		Total: 1,
	}
	if err := c.Set(ctx, "reviews:413150:50:-timestamp_created", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.ReviewsPage
	ok, err := c.Get(ctx, "reviews:413150:50:-timestamp_created", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.AppID != want.AppID || len(got.Items) != 1 || got.Items[0].Review != "bueno" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := c.Del(ctx, "reviews:413150:50:-timestamp_created"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "reviews:413150:50:-timestamp_created", &got)
	if err != nil || ok {
		t.Fatalf("expected miss after delete: ok=%v err=%v", ok, err)
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)

	var got domain.ReviewsPage
	ok, err := c.Get(context.Background(), "nope", &got)
	if err != nil || ok {
		t.Fatalf("expected clean miss: ok=%v err=%v", ok, err)
	}
}
