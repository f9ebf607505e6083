// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.GET("/me", uc.CurrentUser)
		users.GET("/reviewers", uc.ListReviewers)
		users.GET("/:id", uc.GetUser)
	}
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListReviewers endpoint
func (uc *UserController) ListReviewers(c *gin.Context) {
	users, err := uc.userService.ListReviewers(c.Request.Context())
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list reviewers", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CurrentUser endpoint
func (uc *UserController) CurrentUser(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
