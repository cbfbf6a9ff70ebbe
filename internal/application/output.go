package application

import (
	"time"

	"github.com/tweetr-app/tweetr/internal/domain/entity"
)

// UserOut is the outward user representation. It deliberately has no password
// field, so one can never leak regardless of code path.
type UserOut struct {
	ID        int64        `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	BirthDate *entity.Date `json:"birth_date"`
}

// TweetOut composes a tweet with its resolved owner.
type TweetOut struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	By        UserOut    `json:"by"`
}

func toUserOut(u *entity.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		BirthDate: u.BirthDate,
	}
}

func toTweetOut(t *entity.Tweet, by UserOut) TweetOut {
	return TweetOut{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		By:        by,
	}
}
