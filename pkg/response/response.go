package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope written on every failure response. Success
// responses carry the bare resource representation, so the envelope only
// exists on the error path.
type ErrorBody struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Message   string    `json:"message"`
	Error     any       `json:"error,omitempty"`
}

func Error(ctx *gin.Context, status int, message string, err any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorBody{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Message:   message,
		Error:     err,
	})
}
