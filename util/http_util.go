// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// ContextUserKey is where the auth middleware stores the *model.User.
const ContextUserKey = "currentUser"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if code >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}

	body := gin.H{"error": message}
	var permErr *docflow_errors.PermissionError
	if errors.As(err, &permErr) {
		body["reason"] = permErr.Reason
		body["action"] = permErr.Action
		if permErr.BlockingUserID != "" {
			body["blockingUserId"] = permErr.BlockingUserID
		}
	} else if code == http.StatusBadRequest && err != nil {
		body["details"] = err.Error()
	}
	c.AbortWithStatusJSON(code, body)
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, docflow_errors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, docflow_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, docflow_errors.ErrDocumentNotFound),
		errors.Is(err, docflow_errors.ErrDepartmentNotFound),
		errors.Is(err, docflow_errors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, docflow_errors.ErrDocumentConflict),
		errors.Is(err, docflow_errors.ErrDepartmentConflict):
		return http.StatusConflict
	case errors.Is(err, docflow_errors.ErrValidation),
		errors.Is(err, docflow_errors.ErrInvalidSearch),
		errors.Is(err, docflow_errors.ErrNoDocumentsSelected),
		errors.Is(err, docflow_errors.ErrInvalidDocumentData),
		errors.Is(err, docflow_errors.ErrInvalidDepartmentData),
		errors.Is(err, docflow_errors.ErrEmptyReason),
		errors.Is(err, docflow_errors.ErrInvalidStatus):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RespondWithServiceError picks the status from err.
func RespondWithServiceError(c *gin.Context, message string, err error) {
	RespondWithError(c, StatusFor(err), message, err)
}

func GetUserFromContext(c *gin.Context) (*model.User, error) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, docflow_errors.ErrUnauthorized
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		return nil, docflow_errors.ErrUnauthorized
	}
	return user, nil
}
