package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tweetsink/ingest-service/internal/dedup"
	"github.com/tweetsink/ingest-service/internal/dto"
	"github.com/tweetsink/ingest-service/internal/metrics"
	"github.com/tweetsink/ingest-service/internal/model"
	"github.com/tweetsink/ingest-service/internal/rabbitmq"
	"github.com/tweetsink/ingest-service/internal/repository"
	"github.com/tweetsink/ingest-service/internal/repository/postgres"
	"go.uber.org/zap"
)

type tweetService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	users     User
	seen      dedup.Set
	publisher Publisher
	now       func() time.Time
}

func newTweetService(logger *zap.Logger, repo *repository.Repository, users User, seen dedup.Set, publisher Publisher, now func() time.Time) Tweet {
	return &tweetService{
		logger:    logger,
		repo:      repo,
		users:     users,
		seen:      seen,
		publisher: publisher,
		now:       now,
	}
}

func (s *tweetService) WarmUp(ctx context.Context) (int, error) {
	ids, err := s.repo.Postgres.Tweet.AllTweetIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeedCache, err)
	}

	if err := s.seen.Seed(ctx, ids); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeedCache, err)
	}
	s.updateSeenGauge(ctx)

	return len(ids), nil
}

func (s *tweetService) Ingest(ctx context.Context, tweets []dto.TweetRequest) (int, error) {
	var reserved, usernames []string
	newTweets := make([]*model.Tweet, 0, len(tweets))

	for _, tweet := range tweets {
		isNew, err := s.seen.Reserve(ctx, tweet.TweetID)
		if err != nil {
			return 0, s.abort(ctx, reserved, usernames, err)
		}
		if !isNew {
			metrics.TweetsSkipped.Inc()
			continue
		}
		reserved = append(reserved, tweet.TweetID)

		user, err := s.users.ResolveOrCreate(ctx, tweet.User)
		if err != nil {
			return 0, s.abort(ctx, reserved, usernames, err)
		}
		usernames = append(usernames, user.Username)

		newTweets = append(newTweets, &model.Tweet{
			TweetID:      tweet.TweetID,
			UserID:       user.ID,
			Text:         *tweet.Text,
			Likes:        tweet.Likes,
			Retweets:     tweet.Retweets,
			Views:        tweet.Views,
			Replies:      tweet.Replies,
			Bookmarks:    tweet.Bookmarks,
			Link:         tweet.Link,
			ProfileImage: tweet.ProfileImage,
			CreatedAt:    tweet.CreatedAt.Time,
			ReceivedAt:   s.now().UTC(),
			SentByUser:   tweet.SentByUser,
		})
	}

	if err := s.repo.Postgres.Tweet.InsertBatch(ctx, newTweets); err != nil {
		return 0, s.abort(ctx, reserved, usernames, err)
	}

	metrics.Batches.WithLabelValues(metrics.BATCH_OK).Inc()
	metrics.TweetsStored.Add(float64(len(newTweets)))
	s.updateSeenGauge(ctx)

	if len(newTweets) > 0 {
		s.publishStored(ctx, newTweets)
	}

	return len(newTweets), nil
}

// abort releases the ids reserved by a batch that will not be committed so a
// re-submission can store them. An id the store reports as a duplicate stays
// marked, otherwise every later batch carrying it would fail the same way.
// Users created along the way stay in place.
func (s *tweetService) abort(ctx context.Context, reserved, usernames []string, cause error) error {
	ctx = context.WithoutCancel(ctx)

	result := metrics.BATCH_ERROR
	if postgres.IsUniqueViolation(cause) {
		result = metrics.BATCH_CONFLICT
	}
	metrics.Batches.WithLabelValues(result).Inc()

	var dupErr *postgres.DuplicateTweetError
	if errors.As(cause, &dupErr) {
		reserved = slices.DeleteFunc(reserved, func(id string) bool {
			return id == dupErr.TweetID
		})
	}

	if err := s.seen.Forget(ctx, reserved...); err != nil {
		s.logger.Sugar().Errorf("failed to release %d reserved tweet ids: %s", len(reserved), err.Error())
	}

	// a cached user id the store no longer knows
	if postgres.IsForeignKeyViolation(cause) {
		s.users.Evict(ctx, usernames...)
	}

	s.logger.Sugar().Errorf("failed to store tweets batch: %s", cause.Error())
	return fmt.Errorf("%w: %w", ErrStoreBatch, cause)
}

func (s *tweetService) publishStored(ctx context.Context, tweets []*model.Tweet) {
	if s.publisher == nil {
		return
	}

	ids := make([]string, len(tweets))
	for i, tweet := range tweets {
		ids[i] = tweet.TweetID
	}

	msg := dto.MQTweetsStoredMsg{
		Stored:     len(tweets),
		TweetIDs:   ids,
		ReceivedAt: s.now().UTC(),
	}
	if err := s.publisher.PublishJSON(ctx, rabbitmq.TWEETS_STORED_QUEUE, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish to queue(%s): %s", rabbitmq.TWEETS_STORED_QUEUE, err.Error())
	}
}

func (s *tweetService) updateSeenGauge(ctx context.Context) {
	n, err := s.seen.Len(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read tweet id cache size: %s", err.Error())
		return
	}
	metrics.SeenIDs.Set(float64(n))
}
