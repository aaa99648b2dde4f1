package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tweetsink/ingest-service/internal/config"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// DuplicateTweetError reports the tweet_id that hit the unique constraint
// while inserting a batch.
type DuplicateTweetError struct {
	TweetID string
	Err     error
}

func (e *DuplicateTweetError) Error() string {
	return fmt.Sprintf("tweet %s already stored: %s", e.TweetID, e.Err.Error())
}

func (e *DuplicateTweetError) Unwrap() error {
	return e.Err
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	return pgxpool.NewWithConfig(ctx, poolConfig)
}

// IsUniqueViolation reports whether err comes from a unique constraint, e.g.
// a tweet_id inserted concurrently by another instance.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err comes from a foreign key, e.g. a
// tweet pointing at a user id that no longer exists.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
