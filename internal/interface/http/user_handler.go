package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tweetr-app/tweetr/internal/application"
	"github.com/tweetr-app/tweetr/internal/domain/entity"
	"github.com/tweetr-app/tweetr/pkg/response"
	"github.com/tweetr-app/tweetr/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email     string       `json:"email" binding:"required,email"`
	FirstName string       `json:"first_name" binding:"required,personname"`
	LastName  string       `json:"last_name" binding:"required,personname"`
	BirthDate *entity.Date `json:"birth_date"`
	Password  string       `json:"password" binding:"required,pwd"`
}

type updateUserRequest struct {
	Email     string       `json:"email" binding:"required,email"`
	FirstName string       `json:"first_name" binding:"required,personname"`
	LastName  string       `json:"last_name" binding:"required,personname"`
	BirthDate *entity.Date `json:"birth_date"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Password:  req.Password,
	})
	if err != nil {
		h.Logger.WithError(err).WithField("ip", c.GetString("real_ip")).Error("user registration failed")
		response.Error(c, http.StatusInternalServerError, "failed to register user", nil)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	out, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User ID not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("fetch user failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch user", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User ID not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("update user failed")
		response.Error(c, http.StatusInternalServerError, "failed to update user", nil)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	out, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User ID not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete user", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}
