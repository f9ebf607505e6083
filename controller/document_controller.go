// controller/document_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
	helper_util "github.com/dev-mohitbeniwal/docflow/util/helper"
	"github.com/dev-mohitbeniwal/docflow/workflow"
)

type reasonRequest struct {
	Reason string `json:"reason"`
}

type reassignRequest struct {
	AssigneeID string `json:"assigneeId" binding:"required"`
}

type bulkRequest struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm"`
}

type DocumentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DocumentController) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	{
		documents.GET("", dc.ListDocuments)
		documents.GET("/grouped", dc.GroupDocuments)
		documents.POST("", dc.UploadDocument)
		documents.GET("/:id", dc.GetDocument)
		documents.PUT("/:id", dc.EditDocument)
		documents.DELETE("/:id", dc.DeleteDocument)
		documents.GET("/:id/permissions", dc.GetPermissions)
		documents.GET("/:id/permissions/explain", dc.ExplainPermissions)
		documents.GET("/:id/feedback", dc.ListFeedback)
		documents.POST("/:id/approve", dc.ApproveDocument)
		documents.POST("/:id/reject", dc.RejectDocument)
		documents.POST("/:id/acknowledge", dc.AcknowledgeDocument)
		documents.POST("/:id/restore", dc.RestoreDocument)
		documents.POST("/:id/reassign", dc.ReassignDocument)
		documents.POST("/:id/revision", dc.RequestRevision)
		documents.POST("/:id/resubmit", dc.ResubmitDocument)
		documents.POST("/bulk/approve", dc.BulkApprove)
		documents.POST("/bulk/delete", dc.BulkDelete)
		documents.POST("/bulk/publish", dc.BulkPublish)
	}
}

// queryFromRequest starts from the default query so omitted filters mean All.
func queryFromRequest(c *gin.Context) model.DocumentQuery {
	q := model.DefaultQuery()
	q.Text = c.Query("q")
	set := func(dst *string, key string) {
		if v, ok := c.GetQuery(key); ok && v != "" {
			*dst = v
		}
	}
	set(&q.Filters.Department, "department")
	set(&q.Filters.Type, "type")
	set(&q.Filters.FileType, "fileType")
	set(&q.Filters.DateRange, "dateRange")
	set(&q.Filters.SecurityLevel, "securityLevel")
	set(&q.Filters.Status, "status")
	set(&q.Filters.Deleted, "deleted")
	if v := c.Query("sortBy"); v != "" {
		q.SortBy = model.SortKey(v)
	}
	if v := c.Query("sortOrder"); v != "" {
		q.SortOrder = model.SortOrder(v)
	}
	q.BulkMode = helper_util.IsTruthy(c.Query("bulk"))
	return q
}

// ListDocuments endpoint
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	docs, err := dc.documentService.ListDocuments(c.Request.Context(), queryFromRequest(c), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list documents", err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(docs)))
	c.JSON(http.StatusOK, helper_util.Paginate(docs, limit, offset))
}

// GroupDocuments endpoint
func (dc *DocumentController) GroupDocuments(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	groups, err := dc.documentService.GroupDocuments(c.Request.Context(), queryFromRequest(c), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to group documents", err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// UploadDocument endpoint
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	var req model.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid document data", docflow_errors.ErrInvalidDocumentData)
		return
	}
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	doc, err := dc.documentService.UploadDocument(c.Request.Context(), req, user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to upload document", err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GetDocument endpoint
func (dc *DocumentController) GetDocument(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	doc, err := dc.documentService.GetDocument(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve document", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// EditDocument endpoint
func (dc *DocumentController) EditDocument(c *gin.Context) {
	var req model.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid document data", docflow_errors.ErrInvalidDocumentData)
		return
	}
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	doc, err := dc.documentService.EditDocument(c.Request.Context(), c.Param("id"), req, user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to edit document", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument endpoint. The caller confirms with ?confirm=true.
func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	confirmer := workflow.Preconfirmed(helper_util.IsTruthy(c.Query("confirm")))
	deleted, err := dc.documentService.DeleteDocument(c.Request.Context(), c.Param("id"), user, confirmer)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to delete document", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetPermissions endpoint
func (dc *DocumentController) GetPermissions(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	perms, err := dc.documentService.GetPermissions(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to evaluate permissions", err)
		return
	}

	c.JSON(http.StatusOK, perms)
}

// ExplainPermissions endpoint
func (dc *DocumentController) ExplainPermissions(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	decisions, err := dc.documentService.ExplainPermissions(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to evaluate permissions", err)
		return
	}

	c.JSON(http.StatusOK, decisions)
}

// ListFeedback endpoint
func (dc *DocumentController) ListFeedback(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	feedback, err := dc.documentService.ListFeedback(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list feedback", err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// documentAction runs a transition that needs only the id and the user.
func (dc *DocumentController) documentAction(c *gin.Context, failure string, action func(c *gin.Context, id string, user *model.User) (*model.Document, error)) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	doc, err := action(c, c.Param("id"), user)
	if err != nil {
		util.RespondWithServiceError(c, failure, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ApproveDocument endpoint
func (dc *DocumentController) ApproveDocument(c *gin.Context) {
	dc.documentAction(c, "Failed to approve document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.ApproveDocument(c.Request.Context(), id, user)
	})
}

// AcknowledgeDocument endpoint
func (dc *DocumentController) AcknowledgeDocument(c *gin.Context) {
	dc.documentAction(c, "Failed to acknowledge document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.AcknowledgeDocument(c.Request.Context(), id, user)
	})
}

// RestoreDocument endpoint
func (dc *DocumentController) RestoreDocument(c *gin.Context) {
	dc.documentAction(c, "Failed to restore document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.RestoreDocument(c.Request.Context(), id, user)
	})
}

// ResubmitDocument endpoint
func (dc *DocumentController) ResubmitDocument(c *gin.Context) {
	dc.documentAction(c, "Failed to resubmit document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.ResubmitDocument(c.Request.Context(), id, user)
	})
}

// RejectDocument endpoint
func (dc *DocumentController) RejectDocument(c *gin.Context) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid rejection data", docflow_errors.ErrEmptyReason)
		return
	}
	dc.documentAction(c, "Failed to reject document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.RejectDocument(c.Request.Context(), id, req.Reason, user)
	})
}

// RequestRevision endpoint
func (dc *DocumentController) RequestRevision(c *gin.Context) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid revision data", docflow_errors.ErrEmptyReason)
		return
	}
	dc.documentAction(c, "Failed to request revision", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.RequestRevision(c.Request.Context(), id, req.Reason, user)
	})
}

// ReassignDocument endpoint
func (dc *DocumentController) ReassignDocument(c *gin.Context) {
	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid reassignment data", err)
		return
	}
	dc.documentAction(c, "Failed to reassign document", func(c *gin.Context, id string, user *model.User) (*model.Document, error) {
		return dc.documentService.ReassignDocument(c.Request.Context(), id, req.AssigneeID, user)
	})
}

func bindBulk(c *gin.Context) (bulkRequest, *model.User, bool) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid selection", err)
		return req, nil, false
	}
	user, err := util.GetUserFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return req, nil, false
	}
	return req, user, true
}

// BulkApprove endpoint
func (dc *DocumentController) BulkApprove(c *gin.Context) {
	req, user, ok := bindBulk(c)
	if !ok {
		return
	}

	result, err := dc.documentService.BulkApprove(c.Request.Context(), req.IDs, user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to approve documents", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkDelete endpoint. Nothing is removed unless the body sets confirm.
func (dc *DocumentController) BulkDelete(c *gin.Context) {
	req, user, ok := bindBulk(c)
	if !ok {
		return
	}

	result, err := dc.documentService.BulkDelete(c.Request.Context(), req.IDs, user, workflow.Preconfirmed(req.Confirm))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to delete documents", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkPublish endpoint
func (dc *DocumentController) BulkPublish(c *gin.Context) {
	req, user, ok := bindBulk(c)
	if !ok {
		return
	}

	result, err := dc.documentService.BulkPublish(c.Request.Context(), req.IDs, user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to publish documents", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
