package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"custodyapi/internal/model"
	"custodyapi/internal/service"
	"custodyapi/internal/storage"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, owner string) ([]model.DocumentSummary, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentSummary), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, owner, id string) (*model.Document, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Add(ctx context.Context, owner string, in service.AddDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, owner, id string) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *MockDocumentService) OpenPicture(ctx context.Context, owner, id, side string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, owner, id, side)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
