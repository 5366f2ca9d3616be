package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/model"
)

type MockBacklogService struct {
	mock.Mock
}

func (m *MockBacklogService) List(ctx context.Context, owner string) ([]model.BacklogEntry, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BacklogEntry), args.Error(1)
}
