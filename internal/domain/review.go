package domain

// RawReview is one review object exactly as decoded from the Steam payload.
// Fields may be absent or carry unexpected types; the normalizer owns the
// cleanup.
type RawReview = map[string]any

// NormalizedReview is the fixed output schema. Every field is always present
// and typed; missing or malformed input fields become zero values.
type NormalizedReview struct {
	RecommendationID         string `json:"recommendationid"`
	SteamID                  string `json:"steamid"`
	Language                 string `json:"language"`
	Review                   string `json:"review"`
	VotedUp                  bool   `json:"voted_up"`
	TimestampCreated         int64  `json:"timestamp_created"`
	TimestampUpdated         int64  `json:"timestamp_updated"`
	AuthorNumGamesOwned      int64  `json:"author_num_games_owned"`
	AuthorNumReviews         int64  `json:"author_num_reviews"`
	AuthorPlaytimeForever    int64  `json:"author_playtime_forever"`
	AuthorPlaytimeLastTwoWks int64  `json:"author_playtime_last_two_weeks"`
	AuthorPlaytimeAtReview   int64  `json:"author_playtime_at_review"`
	VotesUp                  int64  `json:"votes_up"`
	VotesFunny               int64  `json:"votes_funny"`
	WeightedVoteScore        string `json:"weighted_vote_score"`
	CommentCount             int64  `json:"comment_count"`
	SteamPurchase            bool   `json:"steam_purchase"`
	ReceivedForFree          bool   `json:"received_for_free"`
	WrittenDuringEarlyAccess bool   `json:"written_during_early_access"`
}
