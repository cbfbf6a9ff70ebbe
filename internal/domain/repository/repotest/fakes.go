// Package repotest provides in-memory repository implementations for tests.
// State is exported so tests can seed and inspect rows directly.
package repotest

import (
	"context"
	"sort"
	"time"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
	repo "github.com/tweetr-app/tweetr/internal/domain/repository"
)

type UserRepo struct {
	NextID int64
	Users  map[int64]*entity.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: map[int64]*entity.User{}}
}

func (f *UserRepo) Create(ctx context.Context, u *entity.User) error {
	f.NextID++
	u.ID = f.NextID
	cp := *u
	f.Users[u.ID] = &cp
	return nil
}

func (f *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.Users))
	for _, u := range f.Users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update mirrors the SQL UPDATE: base fields only, password untouched.
func (f *UserRepo) Update(ctx context.Context, u *entity.User) error {
	stored, ok := f.Users[u.ID]
	if !ok {
		return repo.ErrNotFound
	}
	stored.Email = u.Email
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	stored.BirthDate = u.BirthDate
	return nil
}

func (f *UserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.Users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.Users, id)
	return nil
}

type TweetRepo struct {
	NextID int64
	Tweets map[int64]*entity.Tweet
}

func NewTweetRepo() *TweetRepo {
	return &TweetRepo{Tweets: map[int64]*entity.Tweet{}}
}

func (f *TweetRepo) Create(ctx context.Context, t *entity.Tweet) error {
	f.NextID++
	t.ID = f.NextID
	cp := *t
	f.Tweets[t.ID] = &cp
	return nil
}

func (f *TweetRepo) GetByID(ctx context.Context, id int64) (*entity.Tweet, error) {
	t, ok := f.Tweets[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *TweetRepo) List(ctx context.Context) ([]*entity.Tweet, error) {
	out := make([]*entity.Tweet, 0, len(f.Tweets))
	for _, t := range f.Tweets {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *TweetRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Tweet, error) {
	all, _ := f.List(ctx)
	out := make([]*entity.Tweet, 0)
	for _, t := range all {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *TweetRepo) UpdateContent(ctx context.Context, id int64, content string, updatedAt time.Time) error {
	t, ok := f.Tweets[id]
	if !ok {
		return repo.ErrNotFound
	}
	t.Content = content
	t.UpdatedAt = &updatedAt
	return nil
}

func (f *TweetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.Tweets[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.Tweets, id)
	return nil
}

var (
	_ repo.UserRepository  = (*UserRepo)(nil)
	_ repo.TweetRepository = (*TweetRepo)(nil)
)
