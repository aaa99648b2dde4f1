package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/tweetsink/ingest-service/internal/dto"
	"github.com/tweetsink/ingest-service/internal/metrics"
	"github.com/tweetsink/ingest-service/internal/model"
	"github.com/tweetsink/ingest-service/internal/repository"
	"github.com/tweetsink/ingest-service/internal/repository/redisrepo"
	"go.uber.org/zap"
)

const userCacheTTL = time.Hour

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userService) ResolveOrCreate(ctx context.Context, candidate dto.UserRequest) (*model.User, error) {
	user, err := s.findByUsername(ctx, candidate.Username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	created, err := s.repo.Postgres.User.Create(ctx, model.User{
		Username:       candidate.Username,
		Followers:      candidate.Followers,
		AdditionalInfo: candidate.AdditionalInfo,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s): %s", candidate.Username, err.Error())
		return nil, err
	}
	metrics.UsersCreated.Inc()

	s.cacheUser(ctx, created)

	return created, nil
}

func (s *userService) findByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.repo.Redis != nil {
		cachedUser, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, redisrepo.UserKey(username))
		if err == nil {
			return cachedUser, nil
		}
		if err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get user(%s) from redis: %s", username, err.Error())
		}
	}

	user, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from postgres: %s", username, err.Error())
		return nil, err
	}

	s.cacheUser(ctx, user)

	return user, nil
}

func (s *userService) cacheUser(ctx context.Context, user *model.User) {
	if s.repo.Redis == nil {
		return
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.UserKey(user.Username), user, userCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", user.Username, err.Error())
	}
}

func (s *userService) Evict(ctx context.Context, usernames ...string) {
	if s.repo.Redis == nil || len(usernames) == 0 {
		return
	}

	keys := make([]string, len(usernames))
	for i, username := range usernames {
		keys[i] = redisrepo.UserKey(username)
	}
	if err := s.repo.Redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to evict %d users from redis: %s", len(keys), err.Error())
	}
}
