package model

// RuleEvaluationResult is the outcome of one permission rule.
type RuleEvaluationResult struct {
	Rule           string
	Matched        bool
	Reason         string
	BlockingUserID string
}
