package model

import "time"

// Document event types published on the event bus after a successful mutation.
const (
	EventDocumentUploaded      = "document.uploaded"
	EventDocumentEdited        = "document.edited"
	EventDocumentApproved      = "document.approved"
	EventDocumentRejected      = "document.rejected"
	EventDocumentAcknowledged  = "document.acknowledged"
	EventDocumentRevision      = "document.revision_requested"
	EventDocumentResubmitted   = "document.resubmitted"
	EventDocumentReassigned    = "document.reassigned"
	EventDocumentDeleted       = "document.deleted"
	EventDocumentRestored      = "document.restored"
	EventDocumentsPublished    = "documents.published"
	EventDocumentsBulkApproved = "documents.bulk_approved"
	EventDocumentsBulkDeleted  = "documents.bulk_deleted"
	EventDocumentAccessDenied  = "document.access_denied"
	EventDepartmentCreated     = "department.created"
)

// DocumentEventTypes lists every document event, for subscribers that want all of them.
var DocumentEventTypes = []string{
	EventDocumentUploaded,
	EventDocumentEdited,
	EventDocumentApproved,
	EventDocumentRejected,
	EventDocumentAcknowledged,
	EventDocumentRevision,
	EventDocumentResubmitted,
	EventDocumentReassigned,
	EventDocumentDeleted,
	EventDocumentRestored,
	EventDocumentsPublished,
	EventDocumentsBulkApproved,
	EventDocumentsBulkDeleted,
	EventDocumentAccessDenied,
}

// DocumentEvent describes a workflow outcome. For EventDocumentAccessDenied,
// Action names the attempted action and Detail the blocking reason.
type DocumentEvent struct {
	Type        string    `json:"type"`
	Action      string    `json:"action,omitempty"`
	DocumentIDs []string  `json:"documentIds"`
	ActorID     string    `json:"actorId"`
	ActorName   string    `json:"actorName"`
	Detail      string    `json:"detail,omitempty"`
	At          time.Time `json:"at"`
}
