package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/model"
)

type MockBacklogRepository struct {
	mock.Mock
}

func (m *MockBacklogRepository) Create(ctx context.Context, entry *model.BacklogEntry) (*model.BacklogEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BacklogEntry), args.Error(1)
}

func (m *MockBacklogRepository) ListByOwner(ctx context.Context, owner string) ([]model.BacklogEntry, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BacklogEntry), args.Error(1)
}

func (m *MockBacklogRepository) DeleteByDocumentID(ctx context.Context, owner, documentID string) error {
	args := m.Called(ctx, owner, documentID)
	return args.Error(0)
}
