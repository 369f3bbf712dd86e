package mysql

import (
	"context"
	"database/sql"
	"strings"

	"steamreviews/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertReviews(ctx context.Context, appID int64, rs []domain.NormalizedReview) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*20) // 20 params per row
	for _, rv := range rs {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			appID,
			rv.RecommendationID,
			rv.SteamID,
			rv.Language,
			rv.Review,
			rv.VotedUp,
			rv.TimestampCreated,
			rv.TimestampUpdated,
			rv.AuthorNumGamesOwned,
			rv.AuthorNumReviews,
			rv.AuthorPlaytimeForever,
			rv.AuthorPlaytimeLastTwoWks,
			rv.AuthorPlaytimeAtReview,
			rv.VotesUp,
			rv.VotesFunny,
			rv.WeightedVoteScore,
			rv.CommentCount,
			rv.SteamPurchase,
			rv.ReceivedForFree,
			rv.WrittenDuringEarlyAccess,
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) LogFetch(ctx context.Context, appID int64, count int, lastCursor string) error {
	_, err := r.db.ExecContext(ctx, insertFetchLogSQL, appID, count, lastCursor)
	return err
}

func (r *Repo) CountReviews(ctx context.Context, appID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countReviewsSQL, appID).Scan(&n)
	return n, err
}

func (r *Repo) ListReviews(ctx context.Context, appID int64, pg domain.PageQuery) (domain.ReviewsPage, error) {
	total, err := r.CountReviews(ctx, appID)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	if total == 0 {
		return domain.ReviewsPage{}, domain.ErrNotFound
	}

	limit := pg.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, appID, limit)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	defer rows.Close()

	out := make([]domain.NormalizedReview, 0, limit)
	for rows.Next() {
		var rv domain.NormalizedReview
		if err := rows.Scan(
			&rv.RecommendationID,
			&rv.SteamID,
			&rv.Language,
			&rv.Review,
			&rv.VotedUp,
			&rv.TimestampCreated,
			&rv.TimestampUpdated,
			&rv.AuthorNumGamesOwned,
			&rv.AuthorNumReviews,
			&rv.AuthorPlaytimeForever,
			&rv.AuthorPlaytimeLastTwoWks,
			&rv.AuthorPlaytimeAtReview,
			&rv.VotesUp,
			&rv.VotesFunny,
			&rv.WeightedVoteScore,
			&rv.CommentCount,
			&rv.SteamPurchase,
			&rv.ReceivedForFree,
			&rv.WrittenDuringEarlyAccess,
		); err != nil {
			return domain.ReviewsPage{}, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return domain.ReviewsPage{}, err
	}
	return domain.ReviewsPage{AppID: appID, Items: out, Total: total}, nil
}
