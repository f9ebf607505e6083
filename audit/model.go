// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog records one attempted document action, granted or not.
type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name,omitempty"`
	Action        string          `json:"action"`
	ResourceID    string          `json:"resource_id"`
	AccessGranted bool            `json:"access_granted"`
	Reason        string          `json:"reason,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query narrows QueryLogs; empty fields match everything.
type Query struct {
	From       time.Time
	To         time.Time
	UserID     string
	ResourceID string
}
