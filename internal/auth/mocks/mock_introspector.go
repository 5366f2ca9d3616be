package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/auth"
)

type MockIntrospector struct {
	mock.Mock
}

func (m *MockIntrospector) Introspect(ctx context.Context, token string) (*auth.Introspection, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Introspection), args.Error(1)
}
