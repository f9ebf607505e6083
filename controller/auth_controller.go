// controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type tokenRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// AuthController issues tokens for seeded users. It is only mounted when
// dev login is enabled.
type AuthController struct {
	userService service.IUserService
	tokens      *util.TokenUtil
}

func NewAuthController(userService service.IUserService, tokens *util.TokenUtil) *AuthController {
	return &AuthController{
		userService: userService,
		tokens:      tokens,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/token", ac.IssueToken)
}

// IssueToken endpoint
func (ac *AuthController) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", err)
		return
	}

	user, err := ac.userService.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, docflow_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusUnauthorized, "Unknown user", docflow_errors.ErrUnauthorized)
		} else {
			util.RespondWithServiceError(c, "Failed to resolve user", err)
		}
		return
	}

	token, expiresAt, err := ac.tokens.Issue(*user)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	logger.Info("Token issued", zap.String("userID", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"user":      user,
	})
}
