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

type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

func (r *TweetRepository) Create(ctx context.Context, t *entity.Tweet) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tweets (content, created_at, updated_at, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, t.Content, t.CreatedAt, t.UpdatedAt, t.UserID)

	return row.Scan(&t.ID)
}

func (r *TweetRepository) GetByID(ctx context.Context, id int64) (*entity.Tweet, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, content, created_at, updated_at, user_id
		FROM tweets
		WHERE id = $1
	`, id)

	return scanTweet(row)
}

func (r *TweetRepository) List(ctx context.Context) ([]*entity.Tweet, error) {
	return r.queryTweets(ctx, `
		SELECT id, content, created_at, updated_at, user_id
		FROM tweets
		ORDER BY id
	`)
}

func (r *TweetRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Tweet, error) {
	return r.queryTweets(ctx, `
		SELECT id, content, created_at, updated_at, user_id
		FROM tweets
		WHERE user_id = $1
		ORDER BY id
	`, userID)
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id int64, content string, updatedAt time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tweets
		SET content = $1, updated_at = $2
		WHERE id = $3
	`, content, updatedAt, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) queryTweets(ctx context.Context, sql string, args ...any) ([]*entity.Tweet, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tweets := make([]*entity.Tweet, 0)
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func scanTweet(row pgx.Row) (*entity.Tweet, error) {
	t := &entity.Tweet{}
	if err := row.Scan(&t.ID, &t.Content, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
