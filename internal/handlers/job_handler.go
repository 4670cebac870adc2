package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/auth"
	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/services"
	"github.com/devjobs/backend/internal/store"
)

type JobHandler struct {
	Jobs   *services.JobService
	Tokens *auth.Tokens
}

func NewJobHandler(jobs *services.JobService, tokens *auth.Tokens) *JobHandler {
	return &JobHandler{Jobs: jobs, Tokens: tokens}
}

// Search is GET /jobs. All filters are optional query parameters.
func (h *JobHandler) Search(c *gin.Context) {
	filter, err := store.FilterFromQuery(c.Request.URL.Query())
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	jobs, err := h.Jobs.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Create is POST /jobs. Auth is optional: authenticated owners get their
// listing approved immediately, anonymous submissions go to moderation.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	var ownerID *string
	if claims := optionalUser(c, h.Tokens); claims != nil {
		ownerID = &claims.UserID
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// GetByID is GET /jobs/:id and only ever serves approved listings.
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Mine is GET /jobs/mine: the caller's own listings in every status.
func (h *JobHandler) Mine(c *gin.Context) {
	claims, ok := requireUser(c, h.Tokens)
	if !ok {
		return
	}

	jobs, err := h.Jobs.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Update is PUT /jobs/:id, owner only.
func (h *JobHandler) Update(c *gin.Context) {
	claims, ok := requireUser(c, h.Tokens)
	if !ok {
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), c.Param("id"), claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete is DELETE /jobs/:id, owner only.
func (h *JobHandler) Delete(c *gin.Context) {
	claims, ok := requireUser(c, h.Tokens)
	if !ok {
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
