package repository

import (
	"context"
	"errors"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// ContentRepositoryWithCircuitBreaker wraps a content repository with circuit breaker protection.
// While the circuit is open every call fails with circuitbreaker.ErrCircuitOpen.
type ContentRepositoryWithCircuitBreaker struct {
	repo           ContentRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewContentRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewContentRepositoryWithCircuitBreaker(repo ContentRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ContentRepositoryWithCircuitBreaker {
	return &ContentRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Items returns the items of a collection with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Items(ctx context.Context, collection string) ([]model.ContentItem, error) {
	// a bad collection name is a caller error, not a backend failure
	if !model.IsCollection(collection) {
		return r.repo.Items(ctx, collection)
	}
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() ([]model.ContentItem, error) {
		return r.repo.Items(ctx, collection)
	})
}

// Resume returns the resume with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Resume(ctx context.Context) (*model.Resume, error) {
	var notFound error
	resume, err := circuitbreaker.Run(ctx, r.circuitBreaker, func() (*model.Resume, error) {
		res, err := r.repo.Resume(ctx)
		if errors.Is(err, ErrNotFound) {
			// a missing resume is an answer, not an outage
			notFound = err
			return nil, nil
		}
		return res, err
	})
	if notFound != nil {
		return nil, notFound
	}
	return resume, err
}

// Skills returns the skill groups with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	return circuitbreaker.Run(ctx, r.circuitBreaker, func() ([]model.SkillGroup, error) {
		return r.repo.Skills(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ContentRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
