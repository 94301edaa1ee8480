package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kwikr-directory/internal/model"
	"kwikr-directory/internal/session"
	"kwikr-directory/pkg/credential"
)

func newSessionID() string {
	return uuid.NewString()
}

func (uc *implUseCase) Start(ctx context.Context, input session.StartInput) (session.StartOutput, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return session.StartOutput{}, session.ErrEmptyToken
	}

	id := uc.newID()
	if err := uc.store.Save(ctx, id, token); err != nil {
		return session.StartOutput{}, fmt.Errorf("save credential: %w", err)
	}

	uc.l.Infof(ctx, "session.usecase.Start: session %s started", id)
	return session.StartOutput{SessionID: id, ExpiresAt: uc.now().Add(uc.ttl)}, nil
}

func (uc *implUseCase) End(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return session.ErrNoSession
	}
	if err := uc.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	uc.l.Infof(ctx, "session.usecase.End: session %s ended", sessionID)
	return nil
}

func (uc *implUseCase) Resolve(ctx context.Context, sessionID string) (model.Scope, error) {
	if sessionID == "" {
		return model.Scope{}, session.ErrNoSession
	}
	token, err := uc.store.Load(ctx, sessionID)
	if errors.Is(err, credential.ErrNotFound) {
		return model.Scope{}, session.ErrNoSession
	}
	if err != nil {
		return model.Scope{}, fmt.Errorf("load credential: %w", err)
	}
	return model.Scope{SessionID: sessionID, Token: token}, nil
}
