package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tweetsink/ingest-service/internal/model"
)

type tweetRepo struct {
	db *pgxpool.Pool
}

func newTweetRepo(db *pgxpool.Pool) Tweet {
	return &tweetRepo{
		db: db,
	}
}

func (r *tweetRepo) AllTweetIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT t.tweet_id FROM tweets t")
	if err != nil {
		return nil, fmt.Errorf("select tweet ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect tweet ids: %w", err)
	}

	return ids, nil
}

func (r *tweetRepo) InsertBatch(ctx context.Context, tweets []*model.Tweet) error {
	if len(tweets) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tweets batch: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, tweet := range tweets {
		batch.Queue(
			`INSERT INTO tweets(tweet_id, user_id, text, likes, retweets, views, replies, bookmarks, link, profile_image, created_at, received_at, sent_by_user)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id`,
			tweet.TweetID,
			tweet.UserID,
			tweet.Text,
			tweet.Likes,
			tweet.Retweets,
			tweet.Views,
			tweet.Replies,
			tweet.Bookmarks,
			tweet.Link,
			tweet.ProfileImage,
			tweet.CreatedAt,
			tweet.ReceivedAt,
			tweet.SentByUser,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for _, tweet := range tweets {
		if err := results.QueryRow().Scan(&tweet.ID); err != nil {
			results.Close()
			if IsUniqueViolation(err) {
				return &DuplicateTweetError{TweetID: tweet.TweetID, Err: err}
			}
			return fmt.Errorf("insert tweet %s: %w", tweet.TweetID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close tweets batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tweets batch: %w", err)
	}

	return nil
}
