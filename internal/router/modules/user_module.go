package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tweetr-app/tweetr/internal/interface/http"
)

// UserModule wires the user HTTP handlers into routes.
// POST /users/new, GET /users, GET /users/:user_id,
// PUT /users/update/:user_id, DELETE /users/delete/:user_id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/new", m.Handler.Register)
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/:user_id", m.Handler.Show)
	rg.PUT("/users/update/:user_id", m.Handler.Update)
	rg.DELETE("/users/delete/:user_id", m.Handler.Delete)
}
