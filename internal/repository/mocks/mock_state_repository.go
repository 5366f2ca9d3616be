package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/model"
)

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Create(ctx context.Context, st *model.DocumentState) (*model.DocumentState, error) {
	args := m.Called(ctx, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentState), args.Error(1)
}

func (m *MockStateRepository) FindByDocumentID(ctx context.Context, owner, documentID string) (*model.DocumentState, error) {
	args := m.Called(ctx, owner, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentState), args.Error(1)
}

func (m *MockStateRepository) Update(ctx context.Context, owner, documentID string, state model.State, at time.Time) (*model.DocumentState, error) {
	args := m.Called(ctx, owner, documentID, state, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentState), args.Error(1)
}

func (m *MockStateRepository) DeleteByDocumentID(ctx context.Context, owner, documentID string) error {
	args := m.Called(ctx, owner, documentID)
	return args.Error(0)
}
