package repository

import (
	"context"
	"time"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
)

// TweetRepository defines the storage gateway for tweet rows.
type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id int64) (*entity.Tweet, error)
	List(ctx context.Context) ([]*entity.Tweet, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Tweet, error)
	UpdateContent(ctx context.Context, id int64, content string, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}
