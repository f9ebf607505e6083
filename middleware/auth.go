// middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/util"
)

// UserLookup resolves the token subject to a user record.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// Auth verifies the bearer token and stores the current user in the context.
func Auth(tokens *util.TokenUtil, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided", zap.String("path", c.Request.URL.Path))
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", docflow_errors.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.Subject)
		if errors.Is(err, docflow_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", docflow_errors.ErrUnauthorized)
			return
		} else if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve user", err)
			return
		}

		c.Set(util.ContextUserKey, user)
		logger.Debug("Authenticated request", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
		c.Next()
	}
}

// RequireRoles rejects users outside the given roles. It must run after Auth.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := util.GetUserFromContext(c)
		if err != nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		if !slices.Contains(roles, user.Role) {
			logger.Warn("User does not have the required role",
				zap.String("userID", user.ID),
				zap.String("role", string(user.Role)))
			util.RespondWithError(c, http.StatusForbidden, "Forbidden",
				docflow_errors.Denied(c.Request.Method+" "+c.FullPath(), "", "role "+string(user.Role)+" is not allowed"))
			return
		}
		c.Next()
	}
}
