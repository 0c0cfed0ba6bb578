package ports

import "context"

// Authorizer gates admin-only operations. The acting identity is a claimed
// username supplied by the caller; the implementation resolves its role by
// lookup. Every mutating catalog operation and account deactivation must call
// Authorize before any other validation.
type Authorizer interface {
	Authorize(ctx context.Context, actingUsername string) error
}
