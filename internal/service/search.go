package service

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 10

// SearchDocument is one entry of the client-side search index.
//
// @Description Search index entry
type SearchDocument struct {
	Slug       string    `json:"slug" example:"hello-world"`
	Title      string    `json:"title" example:"Hello, world"`
	Summary    string    `json:"summary,omitempty"`
	Tags       []string  `json:"tags"`
	Collection string    `json:"collection" example:"posts"`
	URL        string    `json:"url" example:"https://example.com/posts/hello-world/"`
	Date       time.Time `json:"date"`
	// Terms is the normalized text the client matches queries against.
	Terms string `json:"terms" example:"hello world first post go"`

	title string
} // @name SearchDocument

// SearchService builds the search index and answers queries against it.
type SearchService interface {
	Index(ctx context.Context) ([]SearchDocument, error)
	Search(ctx context.Context, query string, limit int) ([]SearchDocument, error)
}

// SearchServiceImpl implements SearchService over the cached content.
type SearchServiceImpl struct {
	content ContentService
	siteURL string
}

// NewSearchService creates a search service. siteURL prefixes document URLs.
func NewSearchService(content ContentService, siteURL string) *SearchServiceImpl {
	return &SearchServiceImpl{content: content, siteURL: siteURL}
}

// Index returns one document per published item of every collection.
func (s *SearchServiceImpl) Index(ctx context.Context) ([]SearchDocument, error) {
	docs := make([]SearchDocument, 0)
	for _, name := range model.Collections {
		items, err := s.content.Published(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			docs = append(docs, newSearchDocument(item, s.siteURL))
		}
	}
	return docs, nil
}

func newSearchDocument(item model.ContentItem, siteURL string) SearchDocument {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	parts := append([]string{item.Title, item.Summary}, tags...)
	return SearchDocument{
		Slug:       item.Slug,
		Title:      item.Title,
		Summary:    item.Summary,
		Tags:       tags,
		Collection: item.Collection,
		URL:        ItemURL(siteURL, item),
		Date:       item.Date,
		Terms:      Normalize(strings.Join(parts, " ")),
		title:      Normalize(item.Title),
	}
}

// Search returns documents containing every query term, title matches first.
func (s *SearchServiceImpl) Search(ctx context.Context, query string, limit int) ([]SearchDocument, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	terms := strings.Fields(Normalize(query))
	if len(terms) == 0 {
		return []SearchDocument{}, nil
	}

	index, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	type hit struct {
		doc   SearchDocument
		score int
	}
	var hits []hit
	for _, doc := range index {
		if !containsAll(doc.Terms, terms) {
			continue
		}
		score := 0
		for _, term := range terms {
			if strings.Contains(doc.title, term) {
				score++
			}
		}
		hits = append(hits, hit{doc: doc, score: score})
	}
	slices.SortStableFunc(hits, func(a, b hit) int { return b.score - a.score })

	results := make([]SearchDocument, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		results = append(results, h.doc)
	}
	return results, nil
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// Normalize folds text for matching: compatibility decomposition, diacritics
// removed, lower case, punctuation turned into single spaces.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	fields := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

// ItemURL returns the public URL of an item on the site.
func ItemURL(siteURL string, item model.ContentItem) string {
	return strings.TrimRight(siteURL, "/") + "/" + item.Collection + "/" + item.Slug + "/"
}
