package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/model"
)

type MockStateService struct {
	mock.Mock
}

func (m *MockStateService) Get(ctx context.Context, owner, documentID string) (*model.DocumentState, error) {
	args := m.Called(ctx, owner, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentState), args.Error(1)
}

func (m *MockStateService) Set(ctx context.Context, owner, documentID, literal string) (*model.DocumentState, error) {
	args := m.Called(ctx, owner, documentID, literal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentState), args.Error(1)
}
