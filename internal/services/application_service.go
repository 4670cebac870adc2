package services

import (
	"context"
	"errors"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

// ApplicationService records candidate applications against approved
// listings, one per (listing, applicant email) pair.
type ApplicationService struct {
	apps   store.ApplicationStore
	jobs   store.JobStore
	mailer *EmailService
}

func NewApplicationService(apps store.ApplicationStore, jobs store.JobStore, mailer *EmailService) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, mailer: mailer}
}

// Apply submits an application. Preconditions, first failure wins:
//
//  1. the listing exists and is approved — an unapproved listing answers
//     exactly like a missing one, so applicants cannot probe moderation state
//  2. the applicant has not applied to this listing before
//
// On success a confirmation email is sent fire-and-forget; mail failures
// never roll back the stored application.
func (s *ApplicationService) Apply(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, error) {
	job, err := s.jobs.Get(ctx, req.JobID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !job.Status.Visible() {
		return nil, ErrJobNotFound
	}

	exists, err := s.apps.ApplicationExists(ctx, req.JobID, req.ApplicantEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &models.Application{
		JobID:          req.JobID,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantName:  req.ApplicantName,
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.apps.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	app.Job = *job

	s.mailer.SendApplicationConfirmation(req.ApplicantEmail, req.ApplicantName, job.Title, job.Company)

	return app, nil
}

// List returns applications, optionally narrowed by listing and/or
// applicant email, newest first and joined with listing display fields.
func (s *ApplicationService) List(ctx context.Context, jobID, applicantEmail string) ([]models.Application, error) {
	return s.apps.ListApplications(ctx, jobID, applicantEmail)
}
