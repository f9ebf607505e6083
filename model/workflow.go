// model/workflow.go
package model

import "time"

// Feedback is a reviewer note attached to a document, e.g. a rejection reason.
type Feedback struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"documentId"`
	UserID     string         `json:"userId"`
	UserName   string         `json:"userName"`
	Status     ApprovalStatus `json:"status"`
	Message    string         `json:"message"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type UploadRequest struct {
	Title         string        `json:"title" validate:"required,max=200"`
	Description   string        `json:"description" validate:"max=2000"`
	Tags          []string      `json:"tags" validate:"dive,required"`
	Department    string        `json:"department" validate:"required"`
	Type          string        `json:"type" validate:"required"`
	FileType      string        `json:"fileType" validate:"required"`
	Size          int64         `json:"size" validate:"gte=0"`
	SecurityLevel SecurityLevel `json:"securityLevel"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
}

// EditRequest carries the editable metadata; nil fields are left unchanged.
type EditRequest struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Department    *string        `json:"department,omitempty"`
	Type          *string        `json:"type,omitempty"`
	SecurityLevel *SecurityLevel `json:"securityLevel,omitempty"`
}

type BulkApproveResult struct {
	Approved []string `json:"approved"`
	Skipped  []string `json:"skipped"`
}

type BulkDeleteResult struct {
	Deleted   []string `json:"deleted"`
	Cancelled bool     `json:"cancelled"`
}

type BulkPublishResult struct {
	Published []string `json:"published"`
	Skipped   []string `json:"skipped"`
}

func (r BulkPublishResult) PublishedCount() int { return len(r.Published) }

func (r BulkPublishResult) SkippedCount() int { return len(r.Skipped) }

// Permissions is the action matrix for one document and one user.
type Permissions struct {
	CanEdit         bool `json:"canEdit"`
	CanDelete       bool `json:"canDelete"`
	CanApprove      bool `json:"canApprove"`
	CanChangeStatus bool `json:"canChangeStatus"`
	CanReassign     bool `json:"canReassign"`
	CanRestore      bool `json:"canRestore"`
}
