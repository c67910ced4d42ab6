package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope every error response uses.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the response. Unknown error types are wrapped
// as internal errors so no raw message leaks to the client.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr})
}
