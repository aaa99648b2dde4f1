package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tweetsink/ingest-service/internal/model"
	"github.com/tweetsink/ingest-service/internal/repository"
	"github.com/tweetsink/ingest-service/internal/repository/postgres"
)

var errStoreDown = errors.New("connection refused")

type fakeUserRepo struct {
	mu        sync.Mutex
	nextID    int64
	byName    map[string]*model.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*model.User)}
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	if existing, ok := r.byName[user.Username]; ok {
		copied := *existing
		return &copied, nil
	}

	r.nextID++
	user.ID = r.nextID
	r.byName[user.Username] = &user
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}

func (r *fakeUserRepo) get(username string) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[username]
}

// fakeTweetRepo mimics the unique constraint on tweet_id and the
// all-or-nothing batch transaction.
type fakeTweetRepo struct {
	mu        sync.Mutex
	nextID    int64
	byTweetID map[string]*model.Tweet
	insertErr error
	allIDsErr error
}

func newFakeTweetRepo() *fakeTweetRepo {
	return &fakeTweetRepo{byTweetID: make(map[string]*model.Tweet)}
}

func (r *fakeTweetRepo) AllTweetIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.allIDsErr != nil {
		return nil, r.allIDsErr
	}
	ids := make([]string, 0, len(r.byTweetID))
	for id := range r.byTweetID {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeTweetRepo) InsertBatch(ctx context.Context, tweets []*model.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	for _, tweet := range tweets {
		if _, ok := r.byTweetID[tweet.TweetID]; ok {
			return &postgres.DuplicateTweetError{
				TweetID: tweet.TweetID,
				Err:     &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			}
		}
	}
	for _, tweet := range tweets {
		r.nextID++
		tweet.ID = r.nextID
		copied := *tweet
		r.byTweetID[tweet.TweetID] = &copied
	}
	return nil
}

func (r *fakeTweetRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byTweetID)
}

func (r *fakeTweetRepo) get(tweetID string) *model.Tweet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byTweetID[tweetID]
}

func newFakeRepository(users *fakeUserRepo, tweets *fakeTweetRepo) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:  users,
			Tweet: tweets,
		},
	}
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []interface{}
	queues   []string
	err      error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, queue string, v interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.queues = append(p.queues, queue)
	p.messages = append(p.messages, v)
	return p.err
}
