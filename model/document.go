// model/document.go
package model

import "time"

type ApprovalStatus string

const (
	StatusPending      ApprovalStatus = "pending"
	StatusApproved     ApprovalStatus = "approved"
	StatusRejected     ApprovalStatus = "rejected"
	StatusRevision     ApprovalStatus = "revision"
	StatusAcknowledged ApprovalStatus = "acknowledged"
)

// Valid reports whether s is one of the known approval states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevision, StatusAcknowledged:
		return true
	}
	return false
}

type SecurityLevel string

const (
	SecurityPublic       SecurityLevel = "Public"
	SecurityRestricted   SecurityLevel = "Restricted"
	SecurityConfidential SecurityLevel = "Confidential"
	SecurityTopSecret    SecurityLevel = "Top Secret"
)

func (l SecurityLevel) Valid() bool {
	switch l {
	case SecurityPublic, SecurityRestricted, SecurityConfidential, SecurityTopSecret:
		return true
	}
	return false
}

type Document struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`

	Department string `json:"department"` // subject path, e.g. "Engineering/Backend"
	Type       string `json:"type"`
	FileType   string `json:"fileType"`
	Size       int64  `json:"size,omitempty"`

	UploadedBy   string     `json:"uploadedBy"`
	UploadedAt   time.Time  `json:"uploadedAt"`
	LastModified *time.Time `json:"lastModified,omitempty"`

	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ApprovedBy     string         `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time     `json:"approvedAt,omitempty"`
	AssignedTo     string         `json:"assignedTo,omitempty"`
	AssignedDate   *time.Time     `json:"assignedDate,omitempty"`
	PublishedAt    *time.Time     `json:"publishedAt,omitempty"`

	SecurityLevel SecurityLevel `json:"securityLevel,omitempty"`
	IsDeleted     bool          `json:"isDeleted,omitempty"`
}

// EffectiveSecurityLevel defaults an unset level to Public.
func (d Document) EffectiveSecurityLevel() SecurityLevel {
	if d.SecurityLevel == "" {
		return SecurityPublic
	}
	return d.SecurityLevel
}

// IsAssigned reports whether a reviewer holds the document.
func (d Document) IsAssigned() bool {
	return d.AssignedTo != ""
}

// Clone returns a copy that shares no slices or pointers with d.
func (d Document) Clone() Document {
	c := d
	if d.Tags != nil {
		c.Tags = append([]string(nil), d.Tags...)
	}
	c.LastModified = cloneTime(d.LastModified)
	c.ApprovedAt = cloneTime(d.ApprovedAt)
	c.AssignedDate = cloneTime(d.AssignedDate)
	c.PublishedAt = cloneTime(d.PublishedAt)
	return c
}

// CloneDocuments copies a collection so callers can never alias repository state.
func CloneDocuments(docs []Document) []Document {
	if docs == nil {
		return nil
	}
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
