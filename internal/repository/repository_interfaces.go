// Package repository provides read access to portfolio content.
package repository

import (
	"context"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// ContentRepositoryInterface defines the operations every content source supports.
type ContentRepositoryInterface interface {
	// Items returns every item of a collection, newest first.
	Items(ctx context.Context, collection string) ([]model.ContentItem, error)
	// Resume returns the resume document.
	Resume(ctx context.Context) (*model.Resume, error)
	// Skills returns the skill groups in file order.
	Skills(ctx context.Context) ([]model.SkillGroup, error)
}
