package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
	"github.com/tweetr-app/tweetr/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, first_name, last_name, birth_date, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Email, u.FirstName, u.LastName, u.BirthDate.TimePtr(), u.Password)

	return row.Scan(&u.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, birth_date, password
		FROM users
		WHERE id = $1
	`, id)

	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, first_name, last_name, birth_date, password
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update replaces the base fields only; the password column is never touched
// by this statement.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, birth_date = $4
		WHERE id = $5
	`, u.Email, u.FirstName, u.LastName, u.BirthDate.TimePtr(), u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var birth *time.Time
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &birth, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.BirthDate = entity.DateFromTime(birth)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
