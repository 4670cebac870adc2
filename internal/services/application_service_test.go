package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/devjobs/backend/internal/config"
	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/services"
	"github.com/devjobs/backend/internal/store"
)

func noMailer() *services.EmailService {
	return services.NewEmailService(config.MailConfig{})
}

func newApplicationFixture(t *testing.T) (*services.ApplicationService, *models.Job) {
	t.Helper()
	mem := store.NewMemoryStore()
	svc := services.NewApplicationService(mem, mem, noMailer())

	jobs, err := mem.List(context.Background(), store.JobFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	return svc, &jobs[0]
}

func TestApply_OnePerListingAndEmail(t *testing.T) {
	svc, job := newApplicationFixture(t)
	ctx := context.Background()

	req := &dtos.ApplicationRequest{
		JobID:          job.ID,
		ApplicantEmail: "jane@example.com",
		ApplicantName:  "Jane Doe",
		CoverLetter:    "I would be a great fit.",
	}

	app, err := svc.Apply(ctx, req)
	if err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Errorf("new application status = %s, want pending", app.Status)
	}
	if app.Job.Title != job.Title {
		t.Errorf("application should carry the listing, got title %q", app.Job.Title)
	}

	if _, err := svc.Apply(ctx, req); !errors.Is(err, services.ErrAlreadyApplied) {
		t.Errorf("second Apply = %v, want ErrAlreadyApplied", err)
	}

	// A different applicant on the same listing is fine.
	other := *req
	other.ApplicantEmail = "john@example.com"
	other.ApplicantName = "John Doe"
	if _, err := svc.Apply(ctx, &other); err != nil {
		t.Errorf("different email should be allowed to apply: %v", err)
	}
}

func TestApply_UnapprovedListingLooksAbsent(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := services.NewApplicationService(mem, mem, noMailer())
	ctx := context.Background()

	pending := models.Job{Title: "Stealth role", Company: "X", Status: models.JobStatusPending}
	if err := mem.Create(ctx, &pending); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := &dtos.ApplicationRequest{
		JobID:          pending.ID,
		ApplicantEmail: "jane@example.com",
		ApplicantName:  "Jane Doe",
	}
	if _, err := svc.Apply(ctx, req); !errors.Is(err, services.ErrJobNotFound) {
		t.Errorf("Apply to pending listing = %v, want ErrJobNotFound", err)
	}

	req.JobID = "no-such-id"
	if _, err := svc.Apply(ctx, req); !errors.Is(err, services.ErrJobNotFound) {
		t.Errorf("Apply to missing listing = %v, want ErrJobNotFound", err)
	}
}

func TestApplicationList_Filters(t *testing.T) {
	svc, job := newApplicationFixture(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		req := &dtos.ApplicationRequest{JobID: job.ID, ApplicantEmail: email, ApplicantName: "Someone"}
		if _, err := svc.Apply(ctx, req); err != nil {
			t.Fatalf("Apply(%s): %v", email, err)
		}
	}

	apps, err := svc.List(ctx, job.ID, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("List by listing should return 2 applications, got %d", len(apps))
	}

	apps, err = svc.List(ctx, job.ID, "b@example.com")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 1 || apps[0].ApplicantEmail != "b@example.com" {
		t.Errorf("List by listing and email = %+v, want b's application only", apps)
	}
}
