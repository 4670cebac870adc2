package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/services"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

func NewFavoriteHandler(favs *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favs}
}

// Add is POST /favorites. Duplicate pairs are rejected.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dtos.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	fav, err := h.Favorites.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorite": fav})
}

// Remove is DELETE /favorites?jobId=&userEmail=. Removing an absent
// favorite still answers with success.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	jobID := c.Query("jobId")
	userEmail := c.Query("userEmail")
	if jobID == "" || userEmail == "" {
		badRequest(c, "Missing required parameters")
		return
	}

	if err := h.Favorites.Remove(c.Request.Context(), jobID, userEmail); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// List is GET /favorites?userEmail=.
func (h *FavoriteHandler) List(c *gin.Context) {
	userEmail := c.Query("userEmail")
	if userEmail == "" {
		badRequest(c, "User email required")
		return
	}

	favs, err := h.Favorites.List(c.Request.Context(), userEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}
