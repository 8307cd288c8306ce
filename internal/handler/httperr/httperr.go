package httperr

import (
	"log/slog"
	"net/http"

	"charter-quote-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope of the API: a flat error string plus an
// optional hint for the caller.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AbortWithError renders the error envelope and keeps the original error on
// the gin context for the error-handling middleware and monitoring.
func AbortWithError(c *gin.Context, status int, err error, msg string, hint string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10),
		)
	}

	resp := Response{Status: status, Error: msg, Message: hint}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
