package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
)

var (
	ErrStateNotFound = errors.New("document state not found")
	ErrInvalidState  = errors.New("missing or unrecognized state")
)

// StateService maintains the single lifecycle-state record of each document.
type StateService interface {
	// Get returns the state record of the owner's document. The document's
	// existence is checked first, so a missing document and a missing state
	// record surface as distinct errors.
	Get(ctx context.Context, owner, documentID string) (*model.DocumentState, error)

	// Set overwrites the state unconditionally — there is no transition graph,
	// so any state may move to any other. The literal must match one of the
	// recognized state names exactly; this is validated before any lookup.
	Set(ctx context.Context, owner, documentID, literal string) (*model.DocumentState, error)
}

type stateService struct {
	docs   repository.DocumentRepository
	states repository.StateRepository
}

// NewStateService constructs a new StateService.
func NewStateService(docs repository.DocumentRepository, states repository.StateRepository) StateService {
	return &stateService{docs: docs, states: states}
}

func (s *stateService) Get(ctx context.Context, owner, documentID string) (*model.DocumentState, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if documentID == "" {
		return nil, ErrIDRequired
	}

	if _, err := s.docs.FindByID(ctx, owner, documentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	st, err := s.states.FindByDocumentID(ctx, owner, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *stateService) Set(ctx context.Context, owner, documentID, literal string) (*model.DocumentState, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if documentID == "" {
		return nil, ErrIDRequired
	}

	state, err := model.ParseState(literal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if _, err := s.docs.FindByID(ctx, owner, documentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	updated, err := s.states.Update(ctx, owner, documentID, state, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return updated, nil
}
