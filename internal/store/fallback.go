package store

import (
	"context"
	"errors"
	"log"

	"github.com/devjobs/backend/internal/models"
)

// FallbackJobStore composes a primary listing backend with a secondary one,
// retrying each failed call against the secondary. The failover is per call
// and never sticky: the next call goes to the primary again, so a recovered
// database is picked up without a restart.
//
// ErrNotFound is a business result and is passed through untouched.
type FallbackJobStore struct {
	primary   JobStore
	secondary JobStore
}

func NewFallbackJobStore(primary, secondary JobStore) *FallbackJobStore {
	return &FallbackJobStore{primary: primary, secondary: secondary}
}

// backendFailed reports whether err warrants a retry on the secondary.
func backendFailed(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound)
}

func (f *FallbackJobStore) List(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	jobs, err := f.primary.List(ctx, filter)
	if backendFailed(err) {
		log.Printf("job store: primary List failed, using fallback: %v", err)
		return f.secondary.List(ctx, filter)
	}
	return jobs, err
}

func (f *FallbackJobStore) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := f.primary.Get(ctx, id)
	if backendFailed(err) {
		log.Printf("job store: primary Get failed, using fallback: %v", err)
		return f.secondary.Get(ctx, id)
	}
	return job, err
}

func (f *FallbackJobStore) ListByOwner(ctx context.Context, userID string) ([]models.Job, error) {
	jobs, err := f.primary.ListByOwner(ctx, userID)
	if backendFailed(err) {
		log.Printf("job store: primary ListByOwner failed, using fallback: %v", err)
		return f.secondary.ListByOwner(ctx, userID)
	}
	return jobs, err
}

func (f *FallbackJobStore) Create(ctx context.Context, job *models.Job) error {
	err := f.primary.Create(ctx, job)
	if backendFailed(err) {
		log.Printf("job store: primary Create failed, using fallback: %v", err)
		return f.secondary.Create(ctx, job)
	}
	return err
}

func (f *FallbackJobStore) Update(ctx context.Context, job *models.Job) error {
	err := f.primary.Update(ctx, job)
	if backendFailed(err) {
		log.Printf("job store: primary Update failed, using fallback: %v", err)
		return f.secondary.Update(ctx, job)
	}
	return err
}

func (f *FallbackJobStore) Delete(ctx context.Context, id string) error {
	err := f.primary.Delete(ctx, id)
	if backendFailed(err) {
		log.Printf("job store: primary Delete failed, using fallback: %v", err)
		return f.secondary.Delete(ctx, id)
	}
	return err
}
