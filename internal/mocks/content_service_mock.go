// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/guttosm/portfolio-service/internal/service/cache"
	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) List(ctx context.Context, q service.ListQuery) (*service.ListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, collection, slug string) (*model.ContentItem, error) {
	args := m.Called(ctx, collection, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentService) Tags(ctx context.Context, collection string) ([]model.TagCount, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TagCount), args.Error(1)
}

func (m *MockContentService) Resume(ctx context.Context, now time.Time) (*model.ResumeView, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResumeView), args.Error(1)
}

func (m *MockContentService) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillGroup), args.Error(1)
}

func (m *MockContentService) Published(ctx context.Context, collection string) ([]model.ContentItem, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentService) Refresh(key string) {
	m.Called(key)
}

func (m *MockContentService) ClearCache() {
	m.Called()
}

func (m *MockContentService) CacheStats() map[string]cache.Stats {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]cache.Stats)
}
