package service

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// DefaultFeedLimit is the number of posts in the feed when no limit is configured.
const DefaultFeedLimit = 20

// FeedOptions describes the channel of the RSS feed.
type FeedOptions struct {
	Title       string
	SiteURL     string
	Description string
	Language    string
	Limit       int
}

// FeedService renders the site feed.
type FeedService interface {
	RSS(ctx context.Context) ([]byte, error)
}

// FeedServiceImpl renders RSS 2.0 for published posts with gorilla/feeds.
type FeedServiceImpl struct {
	content ContentService
	opts    FeedOptions
	now     func() time.Time
}

// NewFeedService creates a feed service.
func NewFeedService(content ContentService, opts FeedOptions) *FeedServiceImpl {
	if opts.Limit <= 0 {
		opts.Limit = DefaultFeedLimit
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	return &FeedServiceImpl{content: content, opts: opts, now: time.Now}
}

// RSS renders the newest published posts as an RSS 2.0 document.
func (s *FeedServiceImpl) RSS(ctx context.Context) ([]byte, error) {
	posts, err := s.content.Published(ctx, model.CollectionPosts)
	if err != nil {
		return nil, err
	}
	if len(posts) > s.opts.Limit {
		posts = posts[:s.opts.Limit]
	}

	site := strings.TrimRight(s.opts.SiteURL, "/")
	updated := s.now()
	if len(posts) > 0 {
		updated = posts[0].LastModified()
	}

	feed := &feeds.Feed{
		Title:       s.opts.Title,
		Link:        &feeds.Link{Href: site + "/"},
		Description: s.opts.Description,
		Updated:     updated.UTC(),
		Items:       make([]*feeds.Item, 0, len(posts)),
	}
	for _, post := range posts {
		link := ItemURL(site, post)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       post.Title,
			Link:        &feeds.Link{Href: link},
			Description: post.Summary,
			Created:     post.Date.UTC(),
		})
	}

	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	rss.Language = s.opts.Language
	// RSS items carry a single category; the first tag is the primary one
	for i, post := range posts {
		if len(post.Tags) > 0 {
			rss.Items[i].Category = post.Tags[0]
		}
	}

	out, err := feeds.ToXML(rss)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
