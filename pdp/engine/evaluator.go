package engine

import (
	"context"

	"go.uber.org/zap"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
)

type DocumentEvaluator struct{}

func NewDocumentEvaluator() *DocumentEvaluator {
	return &DocumentEvaluator{}
}

func (de *DocumentEvaluator) Evaluate(ctx context.Context, request pdp_model.AccessRequest) pdp_model.AccessDecision {
	results := check(request.Action, request.Document, request.User)

	decision := pdp_model.AccessDecision{
		Effect:     pdp_model.EffectAllow,
		Action:     request.Action,
		DocumentID: request.Document.ID,
	}
	for _, r := range results {
		decision.EvaluatedRules = append(decision.EvaluatedRules, r.Rule)
	}

	last := results[len(results)-1]
	if !last.Matched {
		decision.Effect = pdp_model.EffectDeny
		decision.Reason = last.Reason
		decision.BlockingUserID = last.BlockingUserID
		logger.Debug("Access denied",
			zap.String("action", string(request.Action)),
			zap.String("documentID", request.Document.ID),
			zap.String("rule", last.Rule),
			zap.String("reason", last.Reason))
	}
	return decision
}

// EvaluateAll returns one decision per document action.
func (de *DocumentEvaluator) EvaluateAll(ctx context.Context, doc model.Document, user *model.User) []pdp_model.AccessDecision {
	decisions := make([]pdp_model.AccessDecision, 0, len(pdp_model.DocumentActions))
	for _, action := range pdp_model.DocumentActions {
		decisions = append(decisions, de.Evaluate(ctx, pdp_model.AccessRequest{
			User:     user,
			Document: doc,
			Action:   action,
		}))
	}
	return decisions
}

// Explain returns nil when the action is allowed, otherwise a
// *errors.PermissionError naming the blocking condition.
func Explain(action pdp_model.Action, doc model.Document, user *model.User) error {
	results := check(action, doc, user)
	last := results[len(results)-1]
	if last.Matched {
		return nil
	}
	err := docflow_errors.Denied(string(action), doc.ID, last.Reason)
	err.BlockingUserID = last.BlockingUserID
	return err
}
