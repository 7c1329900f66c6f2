// Package service implements the portfolio use cases on top of the content repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/pagination"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

const (
	resumeKey = "resume"
	skillsKey = "skills"
)

// ListQuery selects one page of a collection.
type ListQuery struct {
	Collection string
	// Page is 1-based; values outside the valid range are clamped.
	Page int
	// PageSize of 0 uses the configured default.
	PageSize      int
	Tag           string
	IncludeDrafts bool
}

// ListResult is one page of a collection with its navigation data.
//
// @Description Paginated collection listing
type ListResult struct {
	Items      []model.ContentItem `json:"items"`
	Pagination pagination.Result   `json:"pagination"`
	PageRange  []pagination.Entry  `json:"page_range" swaggertype:"array,string"`
} // @name ListResult

// ContentService serves content through the memo caches.
type ContentService interface {
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	Get(ctx context.Context, collection, slug string) (*model.ContentItem, error)
	Tags(ctx context.Context, collection string) ([]model.TagCount, error)
	Resume(ctx context.Context, now time.Time) (*model.ResumeView, error)
	Skills(ctx context.Context) ([]model.SkillGroup, error)
	// Published returns the non-draft items of a collection, newest first.
	Published(ctx context.Context, collection string) ([]model.ContentItem, error)
	Refresh(key string)
	ClearCache()
	CacheStats() map[string]cache.Stats
}

// ContentConfig holds listing defaults.
type ContentConfig struct {
	PageSize        int
	MaxVisiblePages int
	CacheTTL        time.Duration
	SingleFlight    bool
}

// ContentServiceImpl implements ContentService.
type ContentServiceImpl struct {
	repo   repository.ContentRepositoryInterface
	config ContentConfig

	items  cache.Cache[[]model.ContentItem]
	resume cache.Cache[*model.Resume]
	skills cache.Cache[[]model.SkillGroup]

	inspectors []cache.Inspector
}

// NewContentService creates a content service with its own caches.
func NewContentService(repo repository.ContentRepositoryInterface, cfg ContentConfig, opts ...cache.Option) *ContentServiceImpl {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.MaxVisiblePages <= 0 {
		cfg.MaxVisiblePages = pagination.DefaultMaxVisible
	}
	if cfg.SingleFlight {
		opts = append(opts, cache.WithSingleFlight())
	}

	items := cache.NewMemo[[]model.ContentItem](cfg.CacheTTL, append(opts, cache.WithName("content"))...)
	resume := cache.NewMemo[*model.Resume](cfg.CacheTTL, append(opts, cache.WithName("resume"))...)
	skills := cache.NewMemo[[]model.SkillGroup](cfg.CacheTTL, append(opts, cache.WithName("skills"))...)

	return &ContentServiceImpl{
		repo:       repo,
		config:     cfg,
		items:      items,
		resume:     resume,
		skills:     skills,
		inspectors: []cache.Inspector{items, resume, skills},
	}
}

// collectionItems returns every item of a collection, drafts included.
func (s *ContentServiceImpl) collectionItems(ctx context.Context, collection string) ([]model.ContentItem, error) {
	if !model.IsCollection(collection) {
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownCollection, collection)
	}
	return s.items.Get(ctx, collection, func(ctx context.Context) ([]model.ContentItem, error) {
		log.Debug().Str("collection", collection).Msg("Loading collection")
		return s.repo.Items(ctx, collection)
	})
}

// visible filters items without modifying the cached slice.
func visible(items []model.ContentItem, tag string, includeDrafts bool) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Draft && !includeDrafts {
			continue
		}
		if tag != "" && !item.HasTag(tag) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// List returns one page of a collection.
func (s *ContentServiceImpl) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = s.config.PageSize
	}
	// reject a bad page size before touching the source
	if pageSize < 0 {
		return nil, pagination.ErrInvalidPageSize
	}

	all, err := s.collectionItems(ctx, q.Collection)
	if err != nil {
		return nil, err
	}
	items := visible(all, q.Tag, q.IncludeDrafts)

	page, err := pagination.Compute(pagination.Request{
		TotalItems:   len(items),
		ItemsPerPage: pageSize,
		CurrentPage:  q.Page,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items:      pagination.Slice(items, page),
		Pagination: page,
		PageRange:  pagination.PageRange(page.CurrentPage, page.TotalPages, s.config.MaxVisiblePages),
	}, nil
}

// Published returns the non-draft items of a collection.
func (s *ContentServiceImpl) Published(ctx context.Context, collection string) ([]model.ContentItem, error) {
	all, err := s.collectionItems(ctx, collection)
	if err != nil {
		return nil, err
	}
	return visible(all, "", false), nil
}

// Get returns a published item by slug.
func (s *ContentServiceImpl) Get(ctx context.Context, collection, slug string) (*model.ContentItem, error) {
	all, err := s.collectionItems(ctx, collection)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slug == slug && !all[i].Draft {
			item := all[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%s/%s: %w", collection, slug, repository.ErrNotFound)
}

// Tags counts the tags of published items in one collection, or in all when collection is empty.
func (s *ContentServiceImpl) Tags(ctx context.Context, collection string) ([]model.TagCount, error) {
	names := model.Collections
	if collection != "" {
		names = []string{collection}
	}

	var items []model.ContentItem
	for _, name := range names {
		published, err := s.Published(ctx, name)
		if err != nil {
			return nil, err
		}
		items = append(items, published...)
	}
	return TagCounts(items), nil
}

// Resume returns the resume with durations computed against now.
func (s *ContentServiceImpl) Resume(ctx context.Context, now time.Time) (*model.ResumeView, error) {
	resume, err := s.resume.Get(ctx, resumeKey, func(ctx context.Context) (*model.Resume, error) {
		return s.repo.Resume(ctx)
	})
	if err != nil {
		return nil, err
	}
	return BuildResumeView(*resume, now), nil
}

// BuildResumeView computes every experience duration and their total.
func BuildResumeView(r model.Resume, now time.Time) *model.ResumeView {
	view := &model.ResumeView{
		Name:        r.Name,
		Headline:    r.Headline,
		Summary:     r.Summary,
		Location:    r.Location,
		Email:       r.Email,
		Experience:  make([]model.ExperienceView, 0, len(r.Experience)),
		Education:   r.Education,
		GeneratedAt: now,
	}
	if view.Education == nil {
		view.Education = []model.Education{}
	}
	for _, exp := range r.Experience {
		d := exp.Period.Duration(now)
		view.Experience = append(view.Experience, model.ExperienceView{
			Experience: exp,
			Ongoing:    exp.Period.End.IsOngoing(),
			Duration:   d,
		})
		view.TotalExperience = view.TotalExperience.Add(d)
	}
	return view
}

// Skills returns the skill groups.
func (s *ContentServiceImpl) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	return s.skills.Get(ctx, skillsKey, func(ctx context.Context) ([]model.SkillGroup, error) {
		return s.repo.Skills(ctx)
	})
}

// Refresh evicts key from every cache so the next read reloads it.
func (s *ContentServiceImpl) Refresh(key string) {
	for _, c := range s.inspectors {
		c.Evict(key)
	}
	log.Info().Str("key", key).Msg("Cache entry evicted")
}

// ClearCache empties every cache.
func (s *ContentServiceImpl) ClearCache() {
	for _, c := range s.inspectors {
		c.Clear()
	}
	log.Info().Msg("Content caches cleared")
}

// CacheStats returns a snapshot of every cache keyed by cache name.
func (s *ContentServiceImpl) CacheStats() map[string]cache.Stats {
	stats := make(map[string]cache.Stats, len(s.inspectors))
	for _, c := range s.inspectors {
		stats[c.Name()] = c.Stats()
	}
	return stats
}

// Warm loads every collection, the resume and the skills into the caches.
// A missing resume is not an error.
func (s *ContentServiceImpl) Warm(ctx context.Context) error {
	var errs []error
	for _, name := range model.Collections {
		if _, err := s.collectionItems(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if _, err := s.Resume(ctx, time.Now()); err != nil && !errors.Is(err, repository.ErrNotFound) {
		errs = append(errs, fmt.Errorf("resume: %w", err))
	}
	if _, err := s.Skills(ctx); err != nil {
		errs = append(errs, fmt.Errorf("skills: %w", err))
	}
	return errors.Join(errs...)
}
