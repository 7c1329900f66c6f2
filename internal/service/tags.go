package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// TagCounts counts tags across items ignoring case. The first spelling seen
// is the one reported. Results are ordered by count descending, then by tag.
func TagCounts(items []model.ContentItem) []model.TagCount {
	index := make(map[string]int)
	counts := make([]model.TagCount, 0)

	for _, item := range items {
		// an item counts once per tag even if it repeats it
		seen := make(map[string]struct{}, len(item.Tags))
		for _, tag := range item.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if i, ok := index[key]; ok {
				counts[i].Count++
				continue
			}
			index[key] = len(counts)
			counts = append(counts, model.TagCount{Tag: tag, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b model.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Tag), strings.ToLower(b.Tag))
	})
	return counts
}
