package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

func TestMemoryStore_SeededListingsAreApproved(t *testing.T) {
	m := store.NewMemoryStore()

	jobs, err := m.List(context.Background(), store.JobFilter{})
	if err != nil {
		t.Fatalf("List returned unexpected error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("seeded store should list 3 approved jobs, got %d", len(jobs))
	}
	for _, j := range jobs {
		if j.Status != models.JobStatusApproved {
			t.Errorf("seeded job %q has status %s, want approved", j.Title, j.Status)
		}
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	first := models.Job{Title: "Older", Company: "A", Status: models.JobStatusApproved}
	if err := m.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second := models.Job{Title: "Newer", Company: "B", Status: models.JobStatusApproved}
	if err := m.Create(ctx, &second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	jobs, err := m.List(ctx, store.JobFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jobs) < 2 {
		t.Fatalf("expected at least 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Newer" {
		t.Errorf("newest listing should come first, got %q", jobs[0].Title)
	}
	if jobs[1].Title != "Older" {
		t.Errorf("second listing should be %q, got %q", "Older", jobs[1].Title)
	}
}

func TestMemoryStore_GetReturnsAnyStatus(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	pending := models.Job{Title: "Hidden", Company: "X", Status: models.JobStatusPending}
	if err := m.Create(ctx, &pending); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := m.Get(ctx, pending.ID)
	if err != nil {
		t.Fatalf("Get should find pending listings for the service layer: %v", err)
	}
	if got.Status != models.JobStatusPending {
		t.Errorf("Get returned status %s, want pending", got.Status)
	}

	if _, err := m.Get(ctx, "no-such-id"); err != store.ErrNotFound {
		t.Errorf("Get of missing id = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	job := models.Job{Title: "Original", Company: "X", Status: models.JobStatusApproved}
	if err := m.Create(ctx, &job); err != nil {
		t.Fatalf("Create: %v", err)
	}

	job.Title = "Renamed"
	if err := m.Update(ctx, &job); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := m.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Update did not persist, title = %q", got.Title)
	}

	if err := m.Delete(ctx, job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, job.ID); err != store.ErrNotFound {
		t.Errorf("deleted listing should be gone, Get = %v", err)
	}
	if err := m.Delete(ctx, job.ID); err != store.ErrNotFound {
		t.Errorf("deleting a missing listing = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_ListByOwner(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()
	owner := "user-1"

	mine := models.Job{Title: "Mine", Company: "X", PostedBy: &owner, Status: models.JobStatusPending}
	if err := m.Create(ctx, &mine); err != nil {
		t.Fatalf("Create: %v", err)
	}

	jobs, err := m.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Mine" {
		t.Errorf("ListByOwner = %+v, want the one owned pending listing", jobs)
	}

	// Seeded listings are anonymous and never appear in an owner view.
	jobs, err = m.ListByOwner(ctx, "someone-else")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("ListByOwner for unknown user should be empty, got %d", len(jobs))
	}
}

func TestMemoryStore_FavoritesJoinListings(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	jobs, _ := m.List(ctx, store.JobFilter{})
	target := jobs[0]

	fav := models.Favorite{JobID: target.ID, UserEmail: "fan@example.com"}
	if err := m.CreateFavorite(ctx, &fav); err != nil {
		t.Fatalf("CreateFavorite: %v", err)
	}

	favs, err := m.ListFavorites(ctx, "fan@example.com")
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favs))
	}
	if favs[0].Job.Title != target.Title {
		t.Errorf("favorite should carry joined listing, got job title %q", favs[0].Job.Title)
	}
}

func TestMemoryStore_DeleteFavoriteIdempotent(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	if err := m.DeleteFavorite(ctx, "absent-job", "nobody@example.com"); err != nil {
		t.Errorf("deleting an absent favorite should be a no-op, got %v", err)
	}
}

func TestMemoryStore_ApplicationsFilterAndJoin(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	jobs, _ := m.List(ctx, store.JobFilter{})
	jobA, jobB := jobs[0], jobs[1]

	apps := []models.Application{
		{JobID: jobA.ID, ApplicantEmail: "a@example.com", ApplicantName: "A"},
		{JobID: jobB.ID, ApplicantEmail: "a@example.com", ApplicantName: "A"},
		{JobID: jobA.ID, ApplicantEmail: "b@example.com", ApplicantName: "B"},
	}
	for i := range apps {
		if err := m.CreateApplication(ctx, &apps[i]); err != nil {
			t.Fatalf("CreateApplication: %v", err)
		}
	}

	byJob, err := m.ListApplications(ctx, jobA.ID, "")
	if err != nil {
		t.Fatalf("ListApplications: %v", err)
	}
	if len(byJob) != 2 {
		t.Errorf("filter by job should return 2 applications, got %d", len(byJob))
	}
	for _, a := range byJob {
		if a.Job.Title != jobA.Title {
			t.Errorf("application should carry joined listing title %q, got %q", jobA.Title, a.Job.Title)
		}
	}

	byBoth, err := m.ListApplications(ctx, jobA.ID, "b@example.com")
	if err != nil {
		t.Fatalf("ListApplications: %v", err)
	}
	if len(byBoth) != 1 || byBoth[0].ApplicantName != "B" {
		t.Errorf("combined filter should return B's application, got %+v", byBoth)
	}
}

func TestMemoryStore_AlertGetByEmailAbsent(t *testing.T) {
	m := store.NewMemoryStore()

	alert, err := m.GetAlertByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetAlertByEmail: %v", err)
	}
	if alert != nil {
		t.Errorf("absent alert should be nil, got %+v", alert)
	}
}
