// Package engine decides which document actions a user may take.
//
// Every predicate is total: a nil user or a zero-value document yields false
// rather than a panic.
package engine

import (
	"fmt"

	"github.com/dev-mohitbeniwal/docflow/model"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
)

type rule struct {
	name  string
	check func(doc model.Document, user *model.User) pdp_model.RuleEvaluationResult
}

func pass(name string) pdp_model.RuleEvaluationResult {
	return pdp_model.RuleEvaluationResult{Rule: name, Matched: true}
}

func fail(name, reason string) pdp_model.RuleEvaluationResult {
	return pdp_model.RuleEvaluationResult{Rule: name, Reason: reason}
}

var (
	authenticated = rule{"authenticated", func(_ model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if user == nil || user.ID == "" {
			return fail("authenticated", "no authenticated user")
		}
		return pass("authenticated")
	}}

	notDeleted = rule{"not_deleted", func(doc model.Document, _ *model.User) pdp_model.RuleEvaluationResult {
		if doc.IsDeleted {
			return fail("not_deleted", "document is deleted")
		}
		return pass("not_deleted")
	}}

	notEmployee = rule{"not_employee", func(_ model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if user.Role == model.RoleEmployee {
			return fail("not_employee", "employees cannot modify documents")
		}
		return pass("not_employee")
	}}

	notAssignedElsewhere = rule{"not_assigned_elsewhere", func(doc model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if doc.IsAssigned() && doc.AssignedTo != user.ID {
			r := fail("not_assigned_elsewhere", fmt.Sprintf("assigned to another user (%s)", doc.AssignedTo))
			r.BlockingUserID = doc.AssignedTo
			return r
		}
		return pass("not_assigned_elsewhere")
	}}

	reviewerRole = rule{"reviewer_role", func(_ model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if !user.Role.CanReview() {
			return fail("reviewer_role", fmt.Sprintf("role %q cannot review documents", user.Role))
		}
		return pass("reviewer_role")
	}}

	pendingStatus = rule{"pending_status", func(doc model.Document, _ *model.User) pdp_model.RuleEvaluationResult {
		if doc.ApprovalStatus != model.StatusPending {
			return fail("pending_status", fmt.Sprintf("document is %s, not pending", statusLabel(doc.ApprovalStatus)))
		}
		return pass("pending_status")
	}}

	assignedToActor = rule{"assigned_to_actor", func(doc model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		switch {
		case !doc.IsAssigned():
			return fail("assigned_to_actor", "document is not assigned to you")
		case doc.AssignedTo != user.ID:
			r := fail("assigned_to_actor", fmt.Sprintf("assigned to another user (%s)", doc.AssignedTo))
			r.BlockingUserID = doc.AssignedTo
			return r
		}
		return pass("assigned_to_actor")
	}}

	adminRole = rule{"admin_role", func(_ model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if user.Role != model.RoleAdmin {
			return fail("admin_role", "only admins can perform this action")
		}
		return pass("admin_role")
	}}

	notApproved = rule{"not_approved", func(doc model.Document, _ *model.User) pdp_model.RuleEvaluationResult {
		if doc.ApprovalStatus == model.StatusApproved {
			return fail("not_approved", "approved documents cannot be reassigned")
		}
		return pass("not_approved")
	}}

	isDeleted = rule{"is_deleted", func(doc model.Document, _ *model.User) pdp_model.RuleEvaluationResult {
		if !doc.IsDeleted {
			return fail("is_deleted", "document is not deleted")
		}
		return pass("is_deleted")
	}}

	employeeRole = rule{"employee_role", func(_ model.Document, user *model.User) pdp_model.RuleEvaluationResult {
		if user.Role != model.RoleEmployee {
			return fail("employee_role", "only employees can acknowledge documents")
		}
		return pass("employee_role")
	}}
)

// rulesByAction holds the ordered rule chain for each action; the first
// failing rule names the blocking condition.
var rulesByAction = map[pdp_model.Action][]rule{
	pdp_model.ActionEdit:         {authenticated, notDeleted, notEmployee, notAssignedElsewhere, reviewerRole},
	pdp_model.ActionDelete:       {authenticated, notDeleted, notEmployee, notAssignedElsewhere, reviewerRole},
	pdp_model.ActionApprove:      {authenticated, reviewerRole, pendingStatus, assignedToActor},
	pdp_model.ActionChangeStatus: {authenticated, notAssignedElsewhere, reviewerRole},
	pdp_model.ActionReassign:     {authenticated, adminRole, notApproved},
	pdp_model.ActionRestore:      {authenticated, adminRole, isDeleted},
	pdp_model.ActionAcknowledge:  {authenticated, employeeRole},
	pdp_model.ActionPublish:      {authenticated, reviewerRole},
}

func statusLabel(s model.ApprovalStatus) string {
	if s == "" {
		return "unset"
	}
	return string(s)
}

// check runs the rule chain and returns the results up to and including the
// first failure.
func check(action pdp_model.Action, doc model.Document, user *model.User) []pdp_model.RuleEvaluationResult {
	rules, ok := rulesByAction[action]
	if !ok {
		return []pdp_model.RuleEvaluationResult{fail("known_action", fmt.Sprintf("unknown action %q", action))}
	}
	results := make([]pdp_model.RuleEvaluationResult, 0, len(rules))
	for _, r := range rules {
		res := r.check(doc, user)
		results = append(results, res)
		if !res.Matched {
			break
		}
	}
	return results
}

func allowed(action pdp_model.Action, doc model.Document, user *model.User) bool {
	results := check(action, doc, user)
	return results[len(results)-1].Matched
}

func CanEdit(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionEdit, doc, user)
}

// CanDelete shares the edit rule set.
func CanDelete(doc model.Document, user *model.User) bool {
	return CanEdit(doc, user)
}

func CanApprove(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionApprove, doc, user)
}

func CanChangeStatus(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionChangeStatus, doc, user)
}

func CanReassign(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionReassign, doc, user)
}

func CanRestore(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionRestore, doc, user)
}

func CanAcknowledge(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionAcknowledge, doc, user)
}

func CanPublish(doc model.Document, user *model.User) bool {
	return allowed(pdp_model.ActionPublish, doc, user)
}

// PermissionsFor returns the full action matrix for a document.
func PermissionsFor(doc model.Document, user *model.User) model.Permissions {
	return model.Permissions{
		CanEdit:         CanEdit(doc, user),
		CanDelete:       CanDelete(doc, user),
		CanApprove:      CanApprove(doc, user),
		CanChangeStatus: CanChangeStatus(doc, user),
		CanReassign:     CanReassign(doc, user),
		CanRestore:      CanRestore(doc, user),
	}
}
