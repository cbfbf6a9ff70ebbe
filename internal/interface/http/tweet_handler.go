package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tweetr-app/tweetr/internal/application"
	"github.com/tweetr-app/tweetr/pkg/response"
	"github.com/tweetr-app/tweetr/pkg/validation"
)

type TweetHandler struct {
	Svc    *application.TweetService
	Logger *logrus.Logger
}

func NewTweetHandler(svc *application.TweetService, logger *logrus.Logger) *TweetHandler {
	return &TweetHandler{Svc: svc, Logger: logger}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required,tweetbody"`
}

// writeTweetError maps service errors onto the API taxonomy: 404 for missing
// user/tweet ids, 400 for ownership mismatch, 500 for a dangling owner
// reference or any storage failure.
func (h *TweetHandler) writeTweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User ID not found", nil)
	case errors.Is(err, application.ErrTweetNotFound):
		response.Error(c, http.StatusNotFound, "Tweet ID not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusBadRequest, "The tweet does not belong to this user", nil)
	case errors.Is(err, application.ErrOrphanedTweet):
		h.Logger.WithError(err).Error("data integrity fault while assembling tweet")
		response.Error(c, http.StatusInternalServerError, "tweet owner could not be resolved", nil)
	default:
		h.Logger.WithError(err).Error("tweet operation failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func (h *TweetHandler) Post(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out, err := h.Svc.Post(c.Request.Context(), userID, req.Content)
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *TweetHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	out, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TweetHandler) Show(c *gin.Context) {
	tweetID, ok := pathID(c, "tweet_id")
	if !ok {
		return
	}
	out, err := h.Svc.Get(c.Request.Context(), tweetID)
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TweetHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	tweetID, ok := pathID(c, "tweet_id")
	if !ok {
		return
	}
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out, err := h.Svc.Update(c.Request.Context(), userID, tweetID, req.Content)
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

func (h *TweetHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	tweetID, ok := pathID(c, "tweet_id")
	if !ok {
		return
	}
	out, err := h.Svc.Delete(c.Request.Context(), userID, tweetID)
	if err != nil {
		h.writeTweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
