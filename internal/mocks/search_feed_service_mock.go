// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Index(ctx context.Context) ([]service.SearchDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.SearchDocument), args.Error(1)
}

func (m *MockSearchService) Search(ctx context.Context, query string, limit int) ([]service.SearchDocument, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.SearchDocument), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) RSS(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
