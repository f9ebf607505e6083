package workflow

import "context"

// ConfirmationRequest describes a destructive action awaiting a yes/no answer.
type ConfirmationRequest struct {
	Action      string
	DocumentIDs []string
	Message     string
}

// Confirmer is the capability that gates destructive actions. Declining is a
// normal cancellation, not an error.
type Confirmer interface {
	Confirm(ctx context.Context, req ConfirmationRequest) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, req ConfirmationRequest) bool

func (f ConfirmFunc) Confirm(ctx context.Context, req ConfirmationRequest) bool {
	return f(ctx, req)
}

// Preconfirmed answers every request with the given value, e.g. a
// confirm flag submitted together with an HTTP request.
func Preconfirmed(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, ConfirmationRequest) bool { return answer })
}
