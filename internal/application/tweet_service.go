package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
	repo "github.com/tweetr-app/tweetr/internal/domain/repository"
)

// TweetService implements tweet CRUD, the ownership guard, and the assembly
// of tweets with their owning user.
type TweetService struct {
	Tweets repo.TweetRepository
	Users  repo.UserRepository
	Logger *logrus.Logger

	// now is swappable in tests
	now func() time.Time
}

func NewTweetService(tweets repo.TweetRepository, users repo.UserRepository, logger *logrus.Logger) *TweetService {
	return &TweetService{Tweets: tweets, Users: users, Logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Post creates a tweet on behalf of an existing user.
func (s *TweetService) Post(ctx context.Context, userID int64, content string) (TweetOut, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TweetOut{}, ErrUserNotFound
		}
		return TweetOut{}, err
	}

	t := &entity.Tweet{
		Content:   content,
		CreatedAt: s.now(),
		UpdatedAt: nil,
		UserID:    user.ID,
	}
	if err := s.Tweets.Create(ctx, t); err != nil {
		return TweetOut{}, err
	}

	stored, err := s.Tweets.GetByID(ctx, t.ID)
	if err != nil {
		return TweetOut{}, err
	}
	// The owner was fetched above; no second lookup needed.
	return toTweetOut(stored, toUserOut(user)), nil
}

func (s *TweetService) List(ctx context.Context) ([]TweetOut, error) {
	tweets, err := s.Tweets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TweetOut, 0, len(tweets))
	for _, t := range tweets {
		o, err := s.assemble(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *TweetService) ListByUser(ctx context.Context, userID int64) ([]TweetOut, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tweets, err := s.Tweets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	by := toUserOut(user)
	out := make([]TweetOut, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, toTweetOut(t, by))
	}
	return out, nil
}

func (s *TweetService) Get(ctx context.Context, tweetID int64) (TweetOut, error) {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TweetOut{}, ErrTweetNotFound
		}
		return TweetOut{}, err
	}
	return s.assemble(ctx, t)
}

// Update edits a tweet's content and stamps updated_at. The ownership guard
// runs first; the check and the write are two independent storage calls, so a
// concurrent delete between them surfaces as not-found on the write.
func (s *TweetService) Update(ctx context.Context, userID, tweetID int64, content string) (TweetOut, error) {
	user, _, err := s.checkOwnership(ctx, userID, tweetID)
	if err != nil {
		return TweetOut{}, err
	}

	if err := s.Tweets.UpdateContent(ctx, tweetID, content, s.now()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TweetOut{}, ErrTweetNotFound
		}
		return TweetOut{}, err
	}

	stored, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TweetOut{}, ErrTweetNotFound
		}
		return TweetOut{}, err
	}
	return toTweetOut(stored, toUserOut(user)), nil
}

// Delete removes a tweet and returns its pre-delete representation.
func (s *TweetService) Delete(ctx context.Context, userID, tweetID int64) (TweetOut, error) {
	user, t, err := s.checkOwnership(ctx, userID, tweetID)
	if err != nil {
		return TweetOut{}, err
	}

	out := toTweetOut(t, toUserOut(user))
	if err := s.Tweets.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TweetOut{}, ErrTweetNotFound
		}
		return TweetOut{}, err
	}
	return out, nil
}

// checkOwnership confirms the user exists, the tweet exists, and the tweet
// belongs to the user. Mandatory before any user-scoped tweet mutation.
func (s *TweetService) checkOwnership(ctx context.Context, userID, tweetID int64) (*entity.User, *entity.Tweet, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrTweetNotFound
		}
		return nil, nil, err
	}

	if t.UserID != user.ID {
		return nil, nil, ErrNotOwner
	}
	return user, t, nil
}

// assemble resolves a tweet's owner and builds the composed output. A missing
// owner is surfaced as ErrOrphanedTweet, distinguishable from a plain 404.
func (s *TweetService) assemble(ctx context.Context, t *entity.Tweet) (TweetOut, error) {
	owner, err := s.Users.GetByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			if s.Logger != nil {
				s.Logger.WithFields(logrus.Fields{
					"tweet_id": t.ID,
					"user_id":  t.UserID,
				}).Error("tweet references a deleted user")
			}
			return TweetOut{}, ErrOrphanedTweet
		}
		return TweetOut{}, err
	}
	return toTweetOut(t, toUserOut(owner)), nil
}
