package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/mocks"
	"github.com/guttosm/portfolio-service/internal/service"
)

func TestFeedService_RSS(t *testing.T) {
	svc := service.NewFeedService(newFileBackedService(t, service.ContentConfig{}), service.FeedOptions{
		Title:       "Example",
		SiteURL:     "https://example.com/",
		Description: "Writing about Go",
	})

	data, err := svc.RSS(context.Background())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err)

	assert.Equal(t, "rss", feed.FeedType)
	assert.Equal(t, "2.0", feed.FeedVersion)
	assert.Equal(t, "Example", feed.Title)
	assert.Equal(t, "https://example.com/", feed.Link)
	assert.Equal(t, "Writing about Go", feed.Description)

	require.Len(t, feed.Items, 2, "drafts are excluded")
	first := feed.Items[0]
	assert.Equal(t, "Memoizing loads with a TTL cache", first.Title)
	assert.Equal(t, "https://example.com/posts/ttl-caches/", first.Link)
	assert.Equal(t, "https://example.com/posts/ttl-caches/", first.GUID)
	assert.Equal(t, []string{"go"}, first.Categories)
	require.NotNil(t, first.PublishedParsed)
	assert.True(t, first.PublishedParsed.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Hello, world", feed.Items[1].Title)
}

func TestFeedService_RSS_Limit(t *testing.T) {
	items := make([]model.ContentItem, 0, 30)
	for i := range 30 {
		items = append(items, model.ContentItem{
			Slug:       fmt.Sprintf("post-%d", i),
			Title:      fmt.Sprintf("Post %d", i),
			Collection: model.CollectionPosts,
			Date:       time.Date(2024, 1, 30-i, 0, 0, 0, 0, time.UTC),
		})
	}
	content := new(mocks.MockContentService)
	content.On("Published", mock.Anything, model.CollectionPosts).Return(items, nil)

	data, err := service.NewFeedService(content, service.FeedOptions{Title: "Example", SiteURL: "https://example.com", Limit: 5}).RSS(context.Background())
	require.NoError(t, err)
	feed, err := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err)
	assert.Len(t, feed.Items, 5)
	assert.Equal(t, "Post 0", feed.Items[0].Title)

	data, err = service.NewFeedService(content, service.FeedOptions{Title: "Example"}).RSS(context.Background())
	require.NoError(t, err)
	feed, err = gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err)
	assert.Len(t, feed.Items, service.DefaultFeedLimit)
}

func TestFeedService_RSS_Empty(t *testing.T) {
	content := new(mocks.MockContentService)
	content.On("Published", mock.Anything, model.CollectionPosts).Return([]model.ContentItem{}, nil)

	data, err := service.NewFeedService(content, service.FeedOptions{Title: "Example", SiteURL: "https://example.com"}).RSS(context.Background())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}
