package services

import (
	"context"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

// FavoriteService is the saved-listings ledger. Add rejects duplicates;
// Remove is idempotent.
type FavoriteService struct {
	favorites store.FavoriteStore
}

func NewFavoriteService(favorites store.FavoriteStore) *FavoriteService {
	return &FavoriteService{favorites: favorites}
}

func (s *FavoriteService) Add(ctx context.Context, req *dtos.FavoriteRequest) (*models.Favorite, error) {
	exists, err := s.favorites.FavoriteExists(ctx, req.JobID, req.UserEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	fav := &models.Favorite{JobID: req.JobID, UserEmail: req.UserEmail}
	if err := s.favorites.CreateFavorite(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// Remove deletes the favorite if present; removing an absent favorite
// succeeds silently.
func (s *FavoriteService) Remove(ctx context.Context, jobID, userEmail string) error {
	return s.favorites.DeleteFavorite(ctx, jobID, userEmail)
}

func (s *FavoriteService) List(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	return s.favorites.ListFavorites(ctx, userEmail)
}
