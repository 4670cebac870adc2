package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Submit is POST /applications. No account needed; the applicant email is
// the identity.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	app, err := h.Applications.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"application": app,
		"message":     "Application submitted successfully",
	})
}

// List is GET /applications?jobId=&applicantEmail= — both filters optional.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context(), c.Query("jobId"), c.Query("applicantEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
