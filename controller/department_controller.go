// controller/department_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type DepartmentController struct {
	departmentService service.IDepartmentService
}

func NewDepartmentController(departmentService service.IDepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.RouterGroup) {
	departments := r.Group("/departments")
	{
		departments.GET("", dc.ListDepartments)
		departments.GET("/lookup", dc.LookupDepartment)
		departments.POST("", dc.CreateDepartment)
	}
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	departments, err := dc.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list departments", err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// LookupDepartment endpoint
func (dc *DepartmentController) LookupDepartment(c *gin.Context) {
	dept, err := dc.departmentService.LookupDepartment(c.Request.Context(), c.Query("path"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to look up department", err)
		return
	}

	c.JSON(http.StatusOK, dept)
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", docflow_errors.ErrInvalidDepartmentData)
		return
	}
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	dept, err := dc.departmentService.CreateDepartment(c.Request.Context(), req, user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to create department", err)
		return
	}

	c.JSON(http.StatusCreated, dept)
}
