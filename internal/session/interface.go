package session

import (
	"context"

	"kwikr-directory/internal/model"
)

// UseCase manages portal sessions: the mapping from a browser cookie to the
// bearer credential issued by the auth service.
type UseCase interface {
	// Start stores a credential under a new session id.
	Start(ctx context.Context, input StartInput) (StartOutput, error)

	// End forgets the credential of a session.
	End(ctx context.Context, sessionID string) error

	// Resolve returns the scope of a session.
	Resolve(ctx context.Context, sessionID string) (model.Scope, error)
}
