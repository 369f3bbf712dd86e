package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"steamreviews/internal/domain"
)

/********** per-type coercers **********/

// coerceString renders v as text. Second return reports whether a usable
// value was present.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// coerceInt accepts the numeric shapes JSON decoding can produce, plus
// numeric-looking strings ("85", "85.0"). Anything else defaults.
func coerceInt(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil {
			return int64(f), true
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), true
		}
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// coerceBool is truthiness: false for zero numbers and empty strings, true
// otherwise. Compound values (objects, arrays) default to false.
func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case int:
		return t != 0, true
	case int64:
		return t != 0, true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f != 0, true
		}
	case string:
		return t != "", true
	}
	return false, false
}

/********** field getters (nil maps are fine) **********/

func getStr(m map[string]any, key string) string {
	if v, ok := m[key]; ok && v != nil {
		if s, ok := coerceString(v); ok {
			return s
		}
	}
	return ""
}

func getInt(m map[string]any, key string) int64 {
	if v, ok := m[key]; ok && v != nil {
		if n, ok := coerceInt(v); ok {
			return n
		}
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	if v, ok := m[key]; ok && v != nil {
		if b, ok := coerceBool(v); ok {
			return b
		}
	}
	return false
}

/********** review normalizer **********/

// NormalizeReview maps one raw Steam review onto the fixed schema, flattening
// the nested author object. It never fails: absent or uncoercible fields take
// their zero value, and a missing author zeroes every author-derived field.
func NormalizeReview(r domain.RawReview) domain.NormalizedReview {
	a, _ := r["author"].(map[string]any)
	return domain.NormalizedReview{
		RecommendationID:         getStr(r, "recommendationid"),
		SteamID:                  getStr(a, "steamid"),
		Language:                 getStr(r, "language"),
		Review:                   getStr(r, "review"),
		VotedUp:                  getBool(r, "voted_up"),
		TimestampCreated:         getInt(r, "timestamp_created"),
		TimestampUpdated:         getInt(r, "timestamp_updated"),
		AuthorNumGamesOwned:      getInt(a, "num_games_owned"),
		AuthorNumReviews:         getInt(a, "num_reviews"),
		AuthorPlaytimeForever:    getInt(a, "playtime_forever"),
		AuthorPlaytimeLastTwoWks: getInt(a, "playtime_last_two_weeks"),
		AuthorPlaytimeAtReview:   getInt(a, "playtime_at_review"),
		VotesUp:                  getInt(r, "votes_up"),
		VotesFunny:               getInt(r, "votes_funny"),
		WeightedVoteScore:        getStr(r, "weighted_vote_score"),
		CommentCount:             getInt(r, "comment_count"),
		SteamPurchase:            getBool(r, "steam_purchase"),
		ReceivedForFree:          getBool(r, "received_for_free"),
		WrittenDuringEarlyAccess: getBool(r, "written_during_early_access"),
	}
}
