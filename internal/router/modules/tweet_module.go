package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tweetr-app/tweetr/internal/interface/http"
)

// TweetModule wires the tweet HTTP handlers into routes.
// POST /users/:user_id/post, GET /tweets, GET /tweets/:tweet_id,
// GET /users/:user_id/tweets, PUT /users/:user_id/tweets/:tweet_id/update,
// DELETE /users/:user_id/tweets/:tweet_id
type TweetModule struct {
	Handler *handlers.TweetHandler
}

func NewTweetModule(h *handlers.TweetHandler) *TweetModule {
	return &TweetModule{Handler: h}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/:user_id/post", m.Handler.Post)
	rg.GET("/tweets", m.Handler.List)
	rg.GET("/tweets/:tweet_id", m.Handler.Show)
	rg.GET("/users/:user_id/tweets", m.Handler.ListByUser)
	rg.PUT("/users/:user_id/tweets/:tweet_id/update", m.Handler.Update)
	rg.DELETE("/users/:user_id/tweets/:tweet_id", m.Handler.Delete)
}
