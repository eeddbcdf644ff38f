package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code          string `json:"code,omitempty"` // UUID from PlatformError
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	ErrorInstance error  `json:"-"`
	RequestID     string `json:"request_id,omitempty"`
}

// HandleError handles domain errors and returns appropriate HTTP responses.
// Infrastructure failures never leak internal detail to the caller.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		// Storage failures collapse to a generic server error on the wire.
		if statusCode >= http.StatusInternalServerError {
			reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
				Code:      domainErr.GetUUID(),
				Error:     "internal server error",
				RequestID: domainErr.GetRequestID(),
			})
			return
		}

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Code:          domainErr.GetUUID(),
			Error:         domainErr.Message,
			Message:       domainErr.Message,
			ErrorInstance: domainErr,
			RequestID:     domainErr.GetRequestID(),
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:         message,
		Message:       message,
		ErrorInstance: err,
	})
}

// HandleErrorWithStatus aborts the request with an explicit status code.
func HandleErrorWithStatus(c *gin.Context, statusCode int, err error, message string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:         message,
		Message:       message,
		ErrorInstance: err,
	})
}
