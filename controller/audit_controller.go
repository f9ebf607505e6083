// controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/docflow/audit"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/util"
	helper_util "github.com/dev-mohitbeniwal/docflow/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes. Callers wrap r with the admin gate.
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit", ac.QueryLogs)
}

func parseTimeParam(c *gin.Context, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := helper_util.ParseTime(v)
	if err != nil {
		return time.Time{}, docflow_errors.Validation("%s must be an RFC3339 timestamp", key)
	}
	return t, nil
}

// QueryLogs endpoint
func (ac *AuditController) QueryLogs(c *gin.Context) {
	from, err := parseTimeParam(c, "from")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		return
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	logs, err := ac.auditService.QueryLogs(c.Request.Context(), audit.Query{
		From:       from,
		To:         to,
		UserID:     c.Query("userId"),
		ResourceID: c.Query("resourceId"),
	})
	if err != nil {
		util.RespondWithServiceError(c, "Failed to query audit logs", err)
		return
	}

	c.JSON(http.StatusOK, helper_util.Paginate(logs, limit, offset))
}
