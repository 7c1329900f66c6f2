// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockContentRepositoryInterface struct {
	mock.Mock
}

func (m *MockContentRepositoryInterface) Items(ctx context.Context, collection string) ([]model.ContentItem, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentRepositoryInterface) Resume(ctx context.Context) (*model.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockContentRepositoryInterface) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillGroup), args.Error(1)
}
