package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/services"
)

type AlertHandler struct {
	Alerts *services.AlertService
}

func NewAlertHandler(alerts *services.AlertService) *AlertHandler {
	return &AlertHandler{Alerts: alerts}
}

// Subscribe is POST /email-alerts: upsert keyed by email.
func (h *AlertHandler) Subscribe(c *gin.Context) {
	var req dtos.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	alert, created, err := h.Alerts.Subscribe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	msg := "Email alert updated successfully"
	if created {
		msg = "Email alert created successfully"
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert, "message": msg})
}

// Get is GET /email-alerts?email=. A missing alert is answered with a null
// alert, not an error.
func (h *AlertHandler) Get(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "Email parameter required")
		return
	}

	alert, err := h.Alerts.Get(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

// Unsubscribe is DELETE /email-alerts?email=: soft-deactivate, keeping the
// row for history.
func (h *AlertHandler) Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "Email parameter required")
		return
	}

	if err := h.Alerts.Unsubscribe(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email alert deactivated"})
}
