package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tweetsink/ingest-service/internal/model"
)

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.username, u.followers, u.additional_info FROM users u WHERE u.username = $1",
		username,
	).Scan(
		&user.ID,
		&user.Username,
		&user.Followers,
		&user.AdditionalInfo,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO users(username, followers, additional_info) VALUES($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
		RETURNING id`,
		user.Username,
		user.Followers,
		user.AdditionalInfo,
	).Scan(&user.ID)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("create user %s: %w", user.Username, err)
	}

	// another request created the handle first
	existing, err := r.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("find user %s after conflict: %w", user.Username, err)
	}

	return existing, nil
}
