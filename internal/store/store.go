// Package store abstracts the board's persistence behind small interfaces
// with two interchangeable backends: PostgreSQL (via gorm) and a seeded
// in-memory store used for demo mode and as a fallback target.
package store

import (
	"context"
	"errors"

	"github.com/devjobs/backend/internal/models"
)

// ErrNotFound is returned when a record does not exist. It is a business
// result, not a backend failure: the fallback decorator never retries it.
var ErrNotFound = errors.New("record not found")

// JobStore is the listing contract shared by all backends.
//
// List returns only approved listings matching the filter, newest first.
// Get returns a listing in any status; visibility rules live in the
// service layer, which also owns all ownership checks.
type JobStore interface {
	List(ctx context.Context, filter JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

// ApplicationStore records candidate submissions. ListApplications results
// carry the joined Job display fields, newest first. Method names are
// entity-qualified because one backend type implements every store interface.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	ApplicationExists(ctx context.Context, jobID, applicantEmail string) (bool, error)
	ListApplications(ctx context.Context, jobID, applicantEmail string) ([]models.Application, error)
}

// FavoriteStore is the saved-listings ledger. DeleteFavorite of an absent
// pair is a no-op, not an error.
type FavoriteStore interface {
	CreateFavorite(ctx context.Context, fav *models.Favorite) error
	FavoriteExists(ctx context.Context, jobID, userEmail string) (bool, error)
	DeleteFavorite(ctx context.Context, jobID, userEmail string) error
	ListFavorites(ctx context.Context, userEmail string) ([]models.Favorite, error)
}

// AlertStore keeps at most one saved-search row per email address.
// GetAlertByEmail returns (nil, nil) when no row exists.
type AlertStore interface {
	GetAlertByEmail(ctx context.Context, email string) (*models.EmailAlert, error)
	CreateAlert(ctx context.Context, alert *models.EmailAlert) error
	UpdateAlert(ctx context.Context, alert *models.EmailAlert) error
}

// UserStore backs registration and login. GetUserByEmail returns (nil, nil)
// when no such user exists.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}
