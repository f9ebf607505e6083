// Package workflow holds the document state transitions. Every function is a
// reducer: it takes the current collection and returns a new one, leaving the
// input untouched.
package workflow

import (
	"fmt"
	"slices"
	"strings"
	"time"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
)

func indexOf(docs []model.Document, id string) int {
	return slices.IndexFunc(docs, func(d model.Document) bool { return d.ID == id })
}

func find(docs []model.Document, id string) (int, model.Document, error) {
	i := indexOf(docs, id)
	if i < 0 {
		return -1, model.Document{}, fmt.Errorf("%w: %s", docflow_errors.ErrDocumentNotFound, id)
	}
	return i, docs[i].Clone(), nil
}

func replaceAt(docs []model.Document, i int, doc model.Document) []model.Document {
	next := slices.Clone(docs)
	next[i] = doc
	return next
}

func stamp(doc *model.Document, user *model.User, now time.Time) {
	at := now
	doc.ApprovedBy = user.Name
	doc.ApprovedAt = &at
}

func requireReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", fmt.Errorf("%w: %w", docflow_errors.ErrValidation, docflow_errors.ErrEmptyReason)
	}
	return reason, nil
}

func feedbackFor(doc model.Document, user *model.User, message string, now time.Time) model.Feedback {
	return model.Feedback{
		DocumentID: doc.ID,
		UserID:     user.ID,
		UserName:   user.Name,
		Status:     doc.ApprovalStatus,
		Message:    message,
		CreatedAt:  now,
	}
}

// Upload adds a new pending document at the front of the collection.
func Upload(docs []model.Document, id string, req model.UploadRequest, user *model.User, now time.Time) ([]model.Document, model.Document, error) {
	if user == nil {
		return docs, model.Document{}, docflow_errors.Denied("upload", "", "no authenticated user")
	}
	if indexOf(docs, id) >= 0 {
		return docs, model.Document{}, fmt.Errorf("%w: %s", docflow_errors.ErrDocumentConflict, id)
	}
	if req.SecurityLevel != "" && !req.SecurityLevel.Valid() {
		return docs, model.Document{}, docflow_errors.Validation("unknown security level %q", req.SecurityLevel)
	}

	doc := model.Document{
		ID:             id,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Tags:           slices.Clone(req.Tags),
		Department:     req.Department,
		Type:           req.Type,
		FileType:       req.FileType,
		Size:           req.Size,
		UploadedBy:     user.Name,
		UploadedAt:     now,
		ApprovalStatus: model.StatusPending,
		SecurityLevel:  req.SecurityLevel,
	}
	if req.AssignedTo != "" {
		at := now
		doc.AssignedTo = req.AssignedTo
		doc.AssignedDate = &at
	}

	next := make([]model.Document, 0, len(docs)+1)
	next = append(next, doc)
	next = append(next, docs...)
	return next, doc.Clone(), nil
}

// Edit applies metadata changes to a document the user may edit.
func Edit(docs []model.Document, id string, req model.EditRequest, user *model.User, now time.Time) ([]model.Document, model.Document, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, err
	}
	if err := engine.Explain(pdp_model.ActionEdit, doc, user); err != nil {
		return docs, model.Document{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return docs, model.Document{}, docflow_errors.Validation("title cannot be empty")
		}
		doc.Title = title
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.Tags != nil {
		doc.Tags = slices.Clone(req.Tags)
	}
	if req.Department != nil {
		if strings.TrimSpace(*req.Department) == "" {
			return docs, model.Document{}, docflow_errors.Validation("department cannot be empty")
		}
		doc.Department = *req.Department
	}
	if req.Type != nil {
		doc.Type = *req.Type
	}
	if req.SecurityLevel != nil {
		if !req.SecurityLevel.Valid() {
			return docs, model.Document{}, docflow_errors.Validation("unknown security level %q", *req.SecurityLevel)
		}
		doc.SecurityLevel = *req.SecurityLevel
	}
	modified := now
	doc.LastModified = &modified

	return replaceAt(docs, i, doc), doc.Clone(), nil
}

// Approve moves a pending document assigned to user to approved.
func Approve(docs []model.Document, id string, user *model.User, now time.Time) ([]model.Document, model.Document, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, err
	}
	if err := engine.Explain(pdp_model.ActionApprove, doc, user); err != nil {
		return docs, model.Document{}, err
	}

	doc.ApprovalStatus = model.StatusApproved
	stamp(&doc, user, now)
	return replaceAt(docs, i, doc), doc.Clone(), nil
}

// Reject moves a pending document to rejected. The reason is returned as
// feedback; it is not stored on the document.
func Reject(docs []model.Document, id, reason string, user *model.User, now time.Time) ([]model.Document, model.Document, model.Feedback, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}
	if err := engine.Explain(pdp_model.ActionApprove, doc, user); err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}
	reason, err = requireReason(reason)
	if err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}

	doc.ApprovalStatus = model.StatusRejected
	stamp(&doc, user, now)
	return replaceAt(docs, i, doc), doc.Clone(), feedbackFor(doc, user, reason, now), nil
}

// Acknowledge marks a document as read by an employee. Acknowledging an
// already acknowledged document changes nothing and reports changed=false.
func Acknowledge(docs []model.Document, id string, user *model.User, now time.Time) (next []model.Document, doc model.Document, changed bool, err error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, false, err
	}
	if err := engine.Explain(pdp_model.ActionAcknowledge, doc, user); err != nil {
		return docs, model.Document{}, false, err
	}
	if doc.IsDeleted {
		return docs, model.Document{}, false, docflow_errors.Denied(string(pdp_model.ActionAcknowledge), id, "document is deleted")
	}
	if doc.ApprovalStatus == model.StatusAcknowledged {
		return docs, doc, false, nil
	}

	if doc.ApprovalStatus == model.StatusPending {
		stamp(&doc, user, now)
	}
	doc.ApprovalStatus = model.StatusAcknowledged
	return replaceAt(docs, i, doc), doc.Clone(), true, nil
}

// RequestRevision sends a pending document back to its author.
func RequestRevision(docs []model.Document, id, reason string, user *model.User, now time.Time) ([]model.Document, model.Document, model.Feedback, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}
	if err := engine.Explain(pdp_model.ActionChangeStatus, doc, user); err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}
	if doc.ApprovalStatus != model.StatusPending {
		return docs, model.Document{}, model.Feedback{}, docflow_errors.Denied(string(pdp_model.ActionChangeStatus), id,
			fmt.Sprintf("document is %s, not pending", doc.ApprovalStatus))
	}
	reason, err = requireReason(reason)
	if err != nil {
		return docs, model.Document{}, model.Feedback{}, err
	}

	doc.ApprovalStatus = model.StatusRevision
	stamp(&doc, user, now)
	return replaceAt(docs, i, doc), doc.Clone(), feedbackFor(doc, user, reason, now), nil
}

// Resubmit returns a rejected or revised document to pending. The uploader
// or any reviewer may resubmit.
func Resubmit(docs []model.Document, id string, user *model.User, now time.Time) ([]model.Document, model.Document, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, err
	}
	if user == nil {
		return docs, model.Document{}, docflow_errors.Denied("resubmit", id, "no authenticated user")
	}
	if doc.ApprovalStatus != model.StatusRejected && doc.ApprovalStatus != model.StatusRevision {
		return docs, model.Document{}, docflow_errors.Denied("resubmit", id,
			fmt.Sprintf("document is %s; only rejected or revision documents can be resubmitted", doc.ApprovalStatus))
	}
	if doc.UploadedBy != user.Name && !user.Role.CanReview() {
		return docs, model.Document{}, docflow_errors.Denied("resubmit", id, "only the uploader or a reviewer can resubmit")
	}

	doc.ApprovalStatus = model.StatusPending
	doc.ApprovedBy = ""
	doc.ApprovedAt = nil
	modified := now
	doc.LastModified = &modified
	return replaceAt(docs, i, doc), doc.Clone(), nil
}

// Reassign hands the document to another reviewer.
func Reassign(docs []model.Document, id, assignee string, user *model.User, now time.Time) ([]model.Document, model.Document, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, err
	}
	if err := engine.Explain(pdp_model.ActionReassign, doc, user); err != nil {
		return docs, model.Document{}, err
	}
	if strings.TrimSpace(assignee) == "" {
		return docs, model.Document{}, docflow_errors.Validation("assignee cannot be empty")
	}

	at := now
	doc.AssignedTo = assignee
	doc.AssignedDate = &at
	return replaceAt(docs, i, doc), doc.Clone(), nil
}

// Restore brings a soft-deleted document back.
func Restore(docs []model.Document, id string, user *model.User) ([]model.Document, model.Document, error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, model.Document{}, err
	}
	if err := engine.Explain(pdp_model.ActionRestore, doc, user); err != nil {
		return docs, model.Document{}, err
	}

	doc.IsDeleted = false
	return replaceAt(docs, i, doc), doc.Clone(), nil
}
