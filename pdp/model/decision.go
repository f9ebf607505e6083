package model

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

type AccessDecision struct {
	Effect         string   `json:"effect"`
	Action         Action   `json:"action"`
	DocumentID     string   `json:"documentId"`
	Reason         string   `json:"reason,omitempty"`
	BlockingUserID string   `json:"blockingUserId,omitempty"`
	EvaluatedRules []string `json:"evaluatedRules,omitempty"`
}

func (d AccessDecision) Allowed() bool {
	return d.Effect == EffectAllow
}
