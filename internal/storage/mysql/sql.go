package mysql

const insertReviewsPrefix = `
INSERT INTO steam_reviews
  (appid, recommendationid, steamid, language, review, voted_up,
   timestamp_created, timestamp_updated,
   author_num_games_owned, author_num_reviews, author_playtime_forever,
   author_playtime_last_two_weeks, author_playtime_at_review,
   votes_up, votes_funny, weighted_vote_score, comment_count,
   steam_purchase, received_for_free, written_during_early_access)
VALUES `

const insertReviewsOnDup = `
ON DUPLICATE KEY UPDATE
  steamid                     = VALUES(steamid),
  language                    = VALUES(language),
  review                      = VALUES(review),
  voted_up                    = VALUES(voted_up),
  timestamp_created           = VALUES(timestamp_created),
  timestamp_updated           = VALUES(timestamp_updated),
  author_num_games_owned      = VALUES(author_num_games_owned),
  author_num_reviews          = VALUES(author_num_reviews),
  author_playtime_forever     = VALUES(author_playtime_forever),
  author_playtime_last_two_weeks = VALUES(author_playtime_last_two_weeks),
  author_playtime_at_review   = VALUES(author_playtime_at_review),
  votes_up                    = VALUES(votes_up),
  votes_funny                 = VALUES(votes_funny),
  weighted_vote_score         = VALUES(weighted_vote_score),
  comment_count               = VALUES(comment_count),
  steam_purchase              = VALUES(steam_purchase),
  received_for_free           = VALUES(received_for_free),
  written_during_early_access = VALUES(written_during_early_access),
  updated_at                  = CURRENT_TIMESTAMP
`

const insertFetchLogSQL = `
INSERT INTO fetch_log (appid, review_count, last_cursor) VALUES (?, ?, ?)
`

const listReviewsSQL = `
SELECT
  recommendationid, steamid, language, review, voted_up,
  timestamp_created, timestamp_updated,
  author_num_games_owned, author_num_reviews, author_playtime_forever,
  author_playtime_last_two_weeks, author_playtime_at_review,
  votes_up, votes_funny, weighted_vote_score, comment_count,
  steam_purchase, received_for_free, written_during_early_access
FROM steam_reviews
WHERE appid = ?
ORDER BY timestamp_created DESC, recommendationid DESC
LIMIT ?
`

const countReviewsSQL = `
SELECT COUNT(*) FROM steam_reviews WHERE appid = ?
`
