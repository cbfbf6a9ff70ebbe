package repository

import (
	"context"
	"errors"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
)

// ErrNotFound is returned by every repository when the requested row does not
// exist. Services translate it; callers never see a raw storage error.
var ErrNotFound = errors.New("not found")

// UserRepository defines the storage gateway for user rows.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
