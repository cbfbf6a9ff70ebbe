package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
	repo "github.com/tweetr-app/tweetr/internal/domain/repository"
	"github.com/tweetr-app/tweetr/pkg/helpers"
)

// UserService implements registration and user CRUD. The cipher is injected
// rather than held as package state so the key can come from configuration.
type UserService struct {
	Repo   repo.UserRepository
	Cipher *helpers.SecretCipher
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, cipher *helpers.SecretCipher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Cipher: cipher, Logger: logger}
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	BirthDate *entity.Date
	Password  string
}

type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	BirthDate *entity.Date
}

// Register encrypts the password, inserts the user, and re-fetches the stored
// row so the returned representation reflects what the database assigned.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (UserOut, error) {
	encrypted, err := s.Cipher.Encrypt(in.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password encryption failed")
		}
		return UserOut{}, err
	}

	u := &entity.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		Password:  encrypted,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return UserOut{}, err
	}

	stored, err := s.Repo.GetByID(ctx, u.ID)
	if err != nil {
		return UserOut{}, err
	}
	return toUserOut(stored), nil
}

func (s *UserService) List(ctx context.Context) ([]UserOut, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserOut, 0, len(users))
	for _, u := range users {
		out = append(out, toUserOut(u))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (UserOut, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserOut{}, ErrUserNotFound
		}
		return UserOut{}, err
	}
	return toUserOut(u), nil
}

// Update replaces all base fields. The password is never touched by this path.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (UserOut, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserOut{}, ErrUserNotFound
		}
		return UserOut{}, err
	}

	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.BirthDate = in.BirthDate
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserOut{}, ErrUserNotFound
		}
		return UserOut{}, err
	}

	stored, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return UserOut{}, err
	}
	return toUserOut(stored), nil
}

// Delete removes the user and returns the pre-delete representation. Tweets
// owned by the user are not cascaded; they become orphaned.
func (s *UserService) Delete(ctx context.Context, id int64) (UserOut, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserOut{}, ErrUserNotFound
		}
		return UserOut{}, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserOut{}, ErrUserNotFound
		}
		return UserOut{}, err
	}
	return toUserOut(u), nil
}
