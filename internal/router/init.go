package router

import (
	"github.com/tweetr-app/tweetr/internal/application"
	"github.com/tweetr-app/tweetr/internal/container"
	pginfra "github.com/tweetr-app/tweetr/internal/infrastructure/postgres"
	handlers "github.com/tweetr-app/tweetr/internal/interface/http"
	"github.com/tweetr-app/tweetr/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container singletons
// are set.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	tweetRepo := pginfra.NewTweetRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, container.GetCipher(), container.GetLogger())
	tweetSvc := application.NewTweetService(tweetRepo, userRepo, container.GetLogger())

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetLogger())))
	r.Add(modules.NewTweetModule(handlers.NewTweetHandler(tweetSvc, container.GetLogger())))
}
