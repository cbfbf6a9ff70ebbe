package application

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
	"github.com/tweetr-app/tweetr/internal/domain/repository/repotest"
	"github.com/tweetr-app/tweetr/pkg/helpers"
)

func newUserService(t *testing.T) (*UserService, *repotest.UserRepo) {
	t.Helper()
	cipher, err := helpers.NewSecretCipher("test-secret", "test-salt")
	require.NoError(t, err)
	repo := repotest.NewUserRepo()
	return NewUserService(repo, cipher, nil), repo
}

func TestRegisterReturnsUserOutWithoutPassword(t *testing.T) {
	svc, _ := newUserService(t)

	out, err := svc.Register(context.Background(), RegisterInput{
		Email:     "a@b.com",
		FirstName: "Ann",
		LastName:  "Lee",
		BirthDate: nil,
		Password:  "password1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "Ann", out.FirstName)
	assert.Equal(t, "Lee", out.LastName)
	assert.Nil(t, out.BirthDate)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "password1")
}

func TestRegisterStoresCiphertextNotPlaintext(t *testing.T) {
	svc, repo := newUserService(t)

	out, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "password1",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "password1", stored.Password)
	assert.False(t, strings.Contains(stored.Password, "password1"))

	// Same process secret can recover it; that is the whole cipher contract.
	plain, err := svc.Cipher.Decrypt(stored.Password)
	require.NoError(t, err)
	assert.Equal(t, "password1", plain)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserReplacesBaseFieldsOnly(t *testing.T) {
	svc, repo := newUserService(t)

	out, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "password1",
	})
	require.NoError(t, err)

	before, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), out.ID, UpdateUserInput{
		Email:     "ann@lee.dev",
		FirstName: "Anna",
		LastName:  "Lee",
		BirthDate: entity.NewDate(1991, time.May, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@lee.dev", updated.Email)
	assert.Equal(t, "Anna", updated.FirstName)
	require.NotNil(t, updated.BirthDate)
	assert.Equal(t, "1991-05-02", updated.BirthDate.String())

	after, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Update(context.Background(), 7, UpdateUserInput{
		Email: "x@y.com", FirstName: "X", LastName: "Y",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserReturnsPreDeleteState(t *testing.T) {
	svc, _ := newUserService(t)

	out, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "password1",
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out, deleted)

	_, err = svc.Get(context.Background(), out.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	svc, _ := newUserService(t)

	for _, email := range []string{"a@b.com", "c@d.com"} {
		_, err := svc.Register(context.Background(), RegisterInput{
			Email: email, FirstName: "Ann", LastName: "Lee", Password: "password1",
		})
		require.NoError(t, err)
	}

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@b.com", users[0].Email)
	assert.Equal(t, "c@d.com", users[1].Email)
}
