package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

// JobService owns the listing lifecycle: creation with moderation status,
// public visibility, and owner-gated mutation.
type JobService struct {
	store store.JobStore
}

func NewJobService(s store.JobStore) *JobService {
	return &JobService{store: s}
}

// Search returns approved listings matching the filter, newest first.
func (s *JobService) Search(ctx context.Context, filter store.JobFilter) ([]models.Job, error) {
	return s.store.List(ctx, filter)
}

// Get returns a single approved listing. Pending and rejected listings are
// indistinguishable from missing ones.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !job.Status.Visible() {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Create stores a new listing. Listings posted by an authenticated owner go
// live immediately; anonymous submissions wait for moderation.
func (s *JobService) Create(ctx context.Context, req *dtos.JobRequest, ownerID *string) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Location:     req.Location,
		Remote:       req.Remote,
		Technologies: pq.StringArray(req.Technologies),
		PostedBy:     ownerID,
		Status:       models.JobStatusPending,
	}
	if ownerID != nil {
		job.Status = models.JobStatusApproved
	}

	if err := s.fillValidatedFields(job, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListMine returns every listing owned by the user, whatever its status.
// This is the one place where an owner sees their own pending listings.
func (s *JobService) ListMine(ctx context.Context, ownerID string) ([]models.Job, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Update replaces the full mutable field set of an owned listing in a
// single store write. Status and ownership are never touched here.
func (s *JobService) Update(ctx context.Context, id, ownerID string, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.ownedJob(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.Location = req.Location
	job.Remote = req.Remote
	job.Technologies = pq.StringArray(req.Technologies)
	if err := s.fillValidatedFields(job, req); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes an owned listing.
func (s *JobService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.ownedJob(ctx, id, ownerID); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ownedJob fetches a listing and checks ownership. A missing listing and a
// listing owned by someone else both come back as ErrNotOwner: mutation
// attempts must not reveal whether a hidden listing exists.
func (s *JobService) ownedJob(ctx context.Context, id, ownerID string) (*models.Job, error) {
	job, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotOwner
	}
	if err != nil {
		return nil, err
	}
	if job.PostedBy == nil || *job.PostedBy != ownerID {
		return nil, ErrNotOwner
	}
	return job, nil
}

// fillValidatedFields applies the enum and salary-range rules shared by
// create and update. Requests coming through gin binding are already
// validated; programmatic callers get the same checks here.
func (s *JobService) fillValidatedFields(job *models.Job, req *dtos.JobRequest) error {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return fmt.Errorf("%w: salaryMin cannot exceed salaryMax", ErrInvalidInput)
	}

	job.EmploymentType = models.EmploymentFullTime
	if req.EmploymentType != "" {
		et, err := models.ParseEmploymentType(req.EmploymentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		job.EmploymentType = et
	}

	job.ExperienceLevel = models.ExperienceMid
	if req.ExperienceLevel != "" {
		el, err := models.ParseExperienceLevel(req.ExperienceLevel)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		job.ExperienceLevel = el
	}

	return nil
}
