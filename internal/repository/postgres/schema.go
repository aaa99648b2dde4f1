package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id              SERIAL PRIMARY KEY,
    username        VARCHAR(255) NOT NULL UNIQUE,
    followers       BIGINT NOT NULL DEFAULT 0,
    additional_info TEXT
);

CREATE TABLE IF NOT EXISTS tweets (
    id            SERIAL PRIMARY KEY,
    tweet_id      VARCHAR(50) NOT NULL UNIQUE,
    user_id       INTEGER NOT NULL REFERENCES users(id),
    text          TEXT NOT NULL,
    likes         BIGINT DEFAULT 0,
    retweets      BIGINT DEFAULT 0,
    views         BIGINT DEFAULT 0,
    replies       BIGINT DEFAULT 0,
    bookmarks     BIGINT DEFAULT 0,
    link          TEXT NOT NULL,
    profile_image TEXT,
    created_at    TIMESTAMPTZ NOT NULL,
    received_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    sent_by_user  VARCHAR(255) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tweets_user_id ON tweets(user_id);
CREATE INDEX IF NOT EXISTS idx_tweets_created_at ON tweets(created_at);
`

// EnsureSchema creates the users and tweets tables when they do not exist.
// It never alters existing tables.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
