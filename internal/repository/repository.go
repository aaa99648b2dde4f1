package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tweetsink/ingest-service/internal/repository/postgres"
	"github.com/tweetsink/ingest-service/internal/repository/redisrepo"
)

type Repository struct {
	Postgres *postgres.PostgresRepository
	// Redis is nil when no REDIS_ADDR is configured.
	Redis *redisrepo.RedisRepository
}

func New(db *pgxpool.Pool, rdb *redis.Client) *Repository {
	repo := &Repository{
		Postgres: postgres.New(db),
	}
	if rdb != nil {
		repo.Redis = redisrepo.New(rdb)
	}
	return repo
}
