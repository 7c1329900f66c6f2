package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/mocks"
	"github.com/guttosm/portfolio-service/internal/pagination"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/guttosm/portfolio-service/internal/service/cache"
	"github.com/guttosm/portfolio-service/internal/testutil"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
}

// posts returns n published posts, newest first.
func posts(n int) []model.ContentItem {
	items := make([]model.ContentItem, 0, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := n; i >= 1; i-- {
		items = append(items, model.ContentItem{
			Slug:       fmt.Sprintf("post-%02d", i),
			Title:      fmt.Sprintf("Post %d", i),
			Date:       base.AddDate(0, 0, i),
			Collection: model.CollectionPosts,
			Tags:       []string{"go"},
		})
	}
	return items
}

func newFileBackedService(t *testing.T, cfg service.ContentConfig) *service.ContentServiceImpl {
	t.Helper()
	root := testutil.WriteContent(t, testutil.SampleContent)
	return service.NewContentService(repository.NewFileRepository(root), cfg)
}

func TestContentService_List(t *testing.T) {
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Items", mock.Anything, model.CollectionPosts).Return(posts(95), nil).Once()
	svc := service.NewContentService(repo, service.ContentConfig{PageSize: 10})

	tests := []struct {
		name       string
		query      service.ListQuery
		wantPage   int
		wantFirst  string
		wantLen    int
		wantRange  string
		wantHasNxt bool
	}{
		{
			name:       "first page by default",
			query:      service.ListQuery{Collection: model.CollectionPosts},
			wantPage:   1,
			wantFirst:  "post-95",
			wantLen:    10,
			wantRange:  "[1 2 3 4 5 6 ... 10]",
			wantHasNxt: true,
		},
		{
			name:       "middle page",
			query:      service.ListQuery{Collection: model.CollectionPosts, Page: 5},
			wantPage:   5,
			wantFirst:  "post-55",
			wantLen:    10,
			wantRange:  "[1 ... 3 4 5 6 7 ... 10]",
			wantHasNxt: true,
		},
		{
			name:      "last page is partial",
			query:     service.ListQuery{Collection: model.CollectionPosts, Page: 10},
			wantPage:  10,
			wantFirst: "post-05",
			wantLen:   5,
			wantRange: "[1 ... 5 6 7 8 9 10]",
		},
		{
			name:      "page beyond the end is clamped",
			query:     service.ListQuery{Collection: model.CollectionPosts, Page: 99},
			wantPage:  10,
			wantFirst: "post-05",
			wantLen:   5,
			wantRange: "[1 ... 5 6 7 8 9 10]",
		},
		{
			name:       "custom page size",
			query:      service.ListQuery{Collection: model.CollectionPosts, PageSize: 50},
			wantPage:   1,
			wantFirst:  "post-95",
			wantLen:    50,
			wantRange:  "[1 2]",
			wantHasNxt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, res.Pagination.CurrentPage)
			require.Len(t, res.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, res.Items[0].Slug)
			assert.Equal(t, tt.wantRange, fmt.Sprint(res.PageRange))
			assert.Equal(t, tt.wantHasNxt, res.Pagination.HasNextPage)
		})
	}

	// every page above came from a single load
	repo.AssertNumberOfCalls(t, "Items", 1)
}

func TestContentService_List_FiltersDraftsAndTags(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{PageSize: 10})
	ctx := context.Background()

	res, err := svc.List(ctx, service.ListQuery{Collection: model.CollectionPosts})
	require.NoError(t, err)
	assert.Equal(t, 2, len(res.Items), "drafts are hidden")

	res, err = svc.List(ctx, service.ListQuery{Collection: model.CollectionPosts, IncludeDrafts: true})
	require.NoError(t, err)
	assert.Equal(t, 3, len(res.Items))

	res, err = svc.List(ctx, service.ListQuery{Collection: model.CollectionPosts, Tag: "CACHING"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "ttl-caches", res.Items[0].Slug)
}

func TestContentService_List_Empty(t *testing.T) {
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Items", mock.Anything, model.CollectionNotes).Return([]model.ContentItem{}, nil)
	svc := service.NewContentService(repo, service.ContentConfig{})

	res, err := svc.List(context.Background(), service.ListQuery{Collection: model.CollectionNotes, Page: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.Equal(t, 1, res.Pagination.CurrentPage)
	assert.Empty(t, res.PageRange)
}

func TestContentService_List_Errors(t *testing.T) {
	repo := new(mocks.MockContentRepositoryInterface)
	svc := service.NewContentService(repo, service.ContentConfig{})
	ctx := context.Background()

	_, err := svc.List(ctx, service.ListQuery{Collection: "drafts"})
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)

	_, err = svc.List(ctx, service.ListQuery{Collection: model.CollectionPosts, PageSize: -1})
	assert.True(t, pagination.IsConfigurationError(err))

	repo.AssertNotCalled(t, "Items", mock.Anything, mock.Anything)
}

func TestContentService_LoadFailureIsNotCached(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Items", mock.Anything, model.CollectionPosts).Return(nil, boom).Once()
	repo.On("Items", mock.Anything, model.CollectionPosts).Return(posts(3), nil).Once()
	svc := service.NewContentService(repo, service.ContentConfig{})

	_, err := svc.List(context.Background(), service.ListQuery{Collection: model.CollectionPosts})
	assert.ErrorIs(t, err, boom)

	res, err := svc.List(context.Background(), service.ListQuery{Collection: model.CollectionPosts})
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
	repo.AssertExpectations(t)
}

func TestContentService_CacheExpiry(t *testing.T) {
	clock := newClock()
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Items", mock.Anything, model.CollectionPosts).Return(posts(3), nil)
	svc := service.NewContentService(repo, service.ContentConfig{CacheTTL: time.Minute}, cache.WithClock(clock.Now))
	ctx := context.Background()

	_, err := svc.Published(ctx, model.CollectionPosts)
	require.NoError(t, err)
	clock.Advance(59 * time.Second)
	_, err = svc.Published(ctx, model.CollectionPosts)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Items", 1)

	clock.Advance(time.Second)
	_, err = svc.Published(ctx, model.CollectionPosts)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Items", 2)
}

func TestContentService_Get(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})
	ctx := context.Background()

	item, err := svc.Get(ctx, model.CollectionPosts, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", item.Title)

	_, err = svc.Get(ctx, model.CollectionPosts, "draft")
	assert.ErrorIs(t, err, repository.ErrNotFound, "drafts are not served by slug")

	_, err = svc.Get(ctx, model.CollectionPosts, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Get(ctx, "drafts", "x")
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)
}

func TestContentService_Get_ReturnsCopy(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})
	ctx := context.Background()

	item, err := svc.Get(ctx, model.CollectionPosts, "hello-world")
	require.NoError(t, err)
	item.Title = "changed"

	again, err := svc.Get(ctx, model.CollectionPosts, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", again.Title)
}

func TestContentService_Tags(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})
	ctx := context.Background()

	// items arrive newest first, so ttl-caches' "go" is the first spelling seen
	all, err := svc.Tags(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []model.TagCount{
		{Tag: "go", Count: 3},
		{Tag: "Caching", Count: 1},
		{Tag: "gin", Count: 1},
		{Tag: "meta", Count: 1},
		{Tag: "misc", Count: 1},
	}, all)

	postTags, err := svc.Tags(ctx, model.CollectionPosts)
	require.NoError(t, err)
	assert.Equal(t, []model.TagCount{
		{Tag: "go", Count: 2},
		{Tag: "Caching", Count: 1},
		{Tag: "meta", Count: 1},
	}, postTags)

	_, err = svc.Tags(ctx, "drafts")
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)
}

func TestContentService_Resume(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	view, err := svc.Resume(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, view.Experience, 2)

	assert.True(t, view.Experience[0].Ongoing)
	assert.Equal(t, model.Span{Years: 1, Months: 8}, view.Experience[0].Duration)
	assert.False(t, view.Experience[1].Ongoing)
	assert.Equal(t, model.Span{Years: 2, Months: 10}, view.Experience[1].Duration)
	assert.Equal(t, model.Span{Years: 4, Months: 6}, view.TotalExperience)
	assert.Equal(t, now, view.GeneratedAt)
}

func TestContentService_Resume_NotFound(t *testing.T) {
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Resume", mock.Anything).Return(nil, repository.ErrNotFound)
	svc := service.NewContentService(repo, service.ContentConfig{})

	_, err := svc.Resume(context.Background(), time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContentService_Skills(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})

	groups, err := svc.Skills(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Languages", groups[0].Name)
}

func TestContentService_CacheAdministration(t *testing.T) {
	clock := newClock()
	repo := new(mocks.MockContentRepositoryInterface)
	repo.On("Items", mock.Anything, mock.Anything).Return(posts(2), nil)
	repo.On("Skills", mock.Anything).Return([]model.SkillGroup{{Name: "Languages"}}, nil)
	svc := service.NewContentService(repo, service.ContentConfig{}, cache.WithClock(clock.Now))
	ctx := context.Background()

	_, _ = svc.Published(ctx, model.CollectionPosts)
	clock.Advance(3 * time.Second)
	_, _ = svc.Published(ctx, model.CollectionProjects)
	_, _ = svc.Skills(ctx)
	clock.Advance(2 * time.Second)

	stats := svc.CacheStats()
	assert.Equal(t, []string{"posts", "projects"}, stats["content"].Keys)
	assert.Equal(t, []cache.EntryStat{{Key: "posts", Age: 5}, {Key: "projects", Age: 2}}, stats["content"].Entries)
	assert.Equal(t, 1, stats["skills"].Size)
	assert.Equal(t, 0, stats["resume"].Size)

	svc.Refresh("posts")
	assert.Equal(t, []string{"projects"}, svc.CacheStats()["content"].Keys)

	_, _ = svc.Published(ctx, model.CollectionPosts)
	repo.AssertNumberOfCalls(t, "Items", 3)

	svc.ClearCache()
	for name, s := range svc.CacheStats() {
		assert.Zero(t, s.Size, name)
	}
}

func TestContentService_Warm(t *testing.T) {
	svc := newFileBackedService(t, service.ContentConfig{})

	require.NoError(t, svc.Warm(context.Background()))

	stats := svc.CacheStats()
	assert.Equal(t, 3, stats["content"].Size)
	assert.Equal(t, 1, stats["resume"].Size)
	assert.Equal(t, 1, stats["skills"].Size)
}

func TestBuildResumeView_NoEducation(t *testing.T) {
	view := service.BuildResumeView(model.Resume{Name: "Someone"}, time.Now())
	assert.NotNil(t, view.Education)
	assert.NotNil(t, view.Experience)
	assert.Equal(t, model.Span{}, view.TotalExperience)
}
