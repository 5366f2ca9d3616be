package service

import (
	"context"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
)

// BacklogService exposes the document-fetch audit log. Appending happens
// inside DocumentService.Get; this service only lists.
type BacklogService interface {
	List(ctx context.Context, owner string) ([]model.BacklogEntry, error)
}

type backlogService struct {
	backlog repository.BacklogRepository
}

// NewBacklogService constructs a new BacklogService.
func NewBacklogService(backlog repository.BacklogRepository) BacklogService {
	return &backlogService{backlog: backlog}
}

func (s *backlogService) List(ctx context.Context, owner string) ([]model.BacklogEntry, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	return s.backlog.ListByOwner(ctx, owner)
}
