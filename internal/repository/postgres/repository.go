package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tweetsink/ingest-service/internal/model"
)

type User interface {
	// FindByUsername returns pgx.ErrNoRows when the handle is unknown.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Create commits the user on its own, outside any batch transaction.
	// When the username already exists the stored row is returned unchanged.
	Create(ctx context.Context, user model.User) (*model.User, error)
}

type Tweet interface {
	AllTweetIDs(ctx context.Context) ([]string, error)
	// InsertBatch stores all tweets in a single transaction or none of them.
	InsertBatch(ctx context.Context, tweets []*model.Tweet) error
}

type PostgresRepository struct {
	User
	Tweet
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:  newUserRepo(db),
		Tweet: newTweetRepo(db),
	}
}
