package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

type samplePayload struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,personname"`
	Password string `json:"password" binding:"required,pwd"`
	Content  string `json:"content" binding:"required,tweetbody"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	initOnce.Do(Init)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bindSample(t, `{not json`)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindSample(t, `{"email":"nope","name":"Ann","password":"password1","content":"hi"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestToDetailsAliasBounds(t *testing.T) {
	err := bindSample(t, `{"email":"a@b.com","name":"`+strings.Repeat("n", 51)+`","password":"short","content":"`+strings.Repeat("c", 257)+`"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at most 50 characters long", details["name"])
	assert.Equal(t, "must be at least 8 characters long", details["password"])
	assert.Equal(t, "must be at most 256 characters long", details["content"])

	// Messages come from the underlying min/max tags, never the alias name.
	for field, msg := range details {
		assert.NotContains(t, msg, "failed validation", field)
	}
}

func TestToDetailsRequired(t *testing.T) {
	err := bindSample(t, `{}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["content"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
