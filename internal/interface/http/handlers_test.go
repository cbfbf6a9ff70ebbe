package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tweetr-app/tweetr/internal/application"
	"github.com/tweetr-app/tweetr/internal/domain/repository/repotest"
	handlers "github.com/tweetr-app/tweetr/internal/interface/http"
	"github.com/tweetr-app/tweetr/internal/router/modules"
	"github.com/tweetr-app/tweetr/pkg/helpers"
	"github.com/tweetr-app/tweetr/pkg/validation"
)

var initOnce sync.Once

// testServer wires the real route modules over in-memory repositories.
type testServer struct {
	router *gin.Engine
	users  *repotest.UserRepo
	tweets *repotest.TweetRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	initOnce.Do(validation.Init)

	users := repotest.NewUserRepo()
	tweets := repotest.NewTweetRepo()

	cipher, err := helpers.NewSecretCipher("test-secret", "test-salt")
	require.NoError(t, err)

	userSvc := application.NewUserService(users, cipher, nil)
	tweetSvc := application.NewTweetService(tweets, users, nil)

	logger := helpers.NewLogger("tweetr-test", "production")

	r := gin.New()
	root := r.Group("/")
	modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)).Register(root)
	modules.NewTweetModule(handlers.NewTweetHandler(tweetSvc, logger)).Register(root)

	return &testServer{router: r, users: users, tweets: tweets}
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func registerUser(t *testing.T, s *testServer, email string) application.UserOut {
	t.Helper()
	w := s.do(t, http.MethodPost, "/users/new", gin.H{
		"email":      email,
		"first_name": "Ann",
		"last_name":  "Lee",
		"birth_date": nil,
		"password":   "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[application.UserOut](t, w)
}

func postTweet(t *testing.T, s *testServer, userID int64, content string) application.TweetOut {
	t.Helper()
	w := s.do(t, http.MethodPost, path("/users/%d/post", userID), gin.H{"content": content})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[application.TweetOut](t, w)
}
