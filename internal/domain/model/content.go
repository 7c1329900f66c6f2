// Package model defines the core domain entities for the portfolio service.
package model

import (
	"slices"
	"strings"
	"time"
)

// Content collections served by the API.
const (
	CollectionPosts    = "posts"
	CollectionNotes    = "notes"
	CollectionProjects = "projects"
)

// Collections lists every content collection in display order.
var Collections = []string{CollectionPosts, CollectionNotes, CollectionProjects}

// IsCollection reports whether name is a known content collection.
func IsCollection(name string) bool {
	return slices.Contains(Collections, name)
}

// ContentItem is a single post, note or portfolio project.
//
// @Description Content entry of a collection
type ContentItem struct {
	Slug       string     `yaml:"slug" json:"slug" bson:"slug" validate:"required,slug,max=120" example:"hello-world"`
	Title      string     `yaml:"title" json:"title" bson:"title" validate:"required,max=200" example:"Hello, world"`
	Summary    string     `yaml:"summary" json:"summary,omitempty" bson:"summary,omitempty" validate:"max=500"`
	Body       string     `yaml:"body" json:"body,omitempty" bson:"body,omitempty"`
	Date       time.Time  `yaml:"date" json:"date" bson:"date" validate:"required"`
	Updated    *time.Time `yaml:"updated,omitempty" json:"updated,omitempty" bson:"updated,omitempty"`
	Tags       []string   `yaml:"tags" json:"tags" bson:"tags" validate:"dive,required,max=40"`
	Draft      bool       `yaml:"draft" json:"draft,omitempty" bson:"draft"`
	URL        string     `yaml:"url" json:"url,omitempty" bson:"url,omitempty" validate:"omitempty,url"`
	Repository string     `yaml:"repository" json:"repository,omitempty" bson:"repository,omitempty" validate:"omitempty,url"`
	Image      string     `yaml:"image" json:"image,omitempty" bson:"image,omitempty"`
	Collection string     `yaml:"collection" json:"collection" bson:"collection" validate:"omitempty,oneof=posts notes projects"`
} // @name ContentItem

// HasTag reports whether the item carries tag, ignoring case.
func (c ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// LastModified returns Updated when set, otherwise Date.
func (c ContentItem) LastModified() time.Time {
	if c.Updated != nil && c.Updated.After(c.Date) {
		return *c.Updated
	}
	return c.Date
}

// SortNewestFirst orders items by date descending, then slug for stability.
func SortNewestFirst(items []ContentItem) {
	slices.SortStableFunc(items, func(a, b ContentItem) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}

// TagCount is the number of items carrying a tag.
//
// @Description Tag usage count
type TagCount struct {
	Tag   string `json:"tag" example:"go"`
	Count int    `json:"count" example:"4"`
} // @name TagCount
