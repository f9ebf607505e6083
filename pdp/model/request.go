package model

import (
	"time"

	"github.com/dev-mohitbeniwal/docflow/model"
)

type Action string

const (
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
	ActionApprove      Action = "approve"
	ActionChangeStatus Action = "change status of"
	ActionReassign     Action = "reassign"
	ActionRestore      Action = "restore"
	ActionAcknowledge  Action = "acknowledge"
	ActionPublish      Action = "publish"
)

// DocumentActions lists the per-document actions exposed in the permission matrix.
var DocumentActions = []Action{
	ActionEdit,
	ActionDelete,
	ActionApprove,
	ActionChangeStatus,
	ActionReassign,
	ActionRestore,
}

type AccessRequest struct {
	User      *model.User    `json:"user"`
	Document  model.Document `json:"document"`
	Action    Action         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}
