package service

import (
	"context"
	"time"

	"github.com/tweetsink/ingest-service/internal/dedup"
	"github.com/tweetsink/ingest-service/internal/dto"
	"github.com/tweetsink/ingest-service/internal/model"
	"github.com/tweetsink/ingest-service/internal/repository"
	"go.uber.org/zap"
)

type Tweet interface {
	// WarmUp seeds the seen-set with every tweet id in the store and returns
	// how many ids were loaded.
	WarmUp(ctx context.Context) (int, error)
	// Ingest stores the tweets whose ids have not been seen yet and returns
	// how many were stored. Either all of them are committed or none.
	Ingest(ctx context.Context, tweets []dto.TweetRequest) (int, error)
}

type User interface {
	// ResolveOrCreate returns the stored user for candidate.Username,
	// creating it in its own transaction when it does not exist yet. Existing
	// users are returned unchanged.
	ResolveOrCreate(ctx context.Context, candidate dto.UserRequest) (*model.User, error)
	// Evict drops cached lookups for the given usernames.
	Evict(ctx context.Context, usernames ...string)
}

// Publisher delivers post-commit notifications; *rabbitmq.MQConn satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, queue string, v interface{}) error
}

type Service struct {
	Tweet
	User
}

// New wires the services. publisher may be nil.
func New(logger *zap.Logger, repo *repository.Repository, seen dedup.Set, publisher Publisher) *Service {
	users := newUserService(logger, repo)
	return &Service{
		Tweet: newTweetService(logger, repo, users, seen, publisher, time.Now),
		User:  users,
	}
}
