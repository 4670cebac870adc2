package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjobs/backend/internal/auth"
)

// requireUser resolves the bearer token on a protected route. On failure it
// writes the 401 response and returns false.
func requireUser(c *gin.Context, tokens *auth.Tokens) (*auth.Claims, bool) {
	raw, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	claims, err := tokens.Verify(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return nil, false
	}
	return claims, true
}

// optionalUser resolves the bearer token on routes where auth is optional.
// A missing or invalid token means an anonymous caller, never an error.
func optionalUser(c *gin.Context, tokens *auth.Tokens) *auth.Claims {
	raw, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil
	}
	claims, err := tokens.Verify(raw)
	if err != nil {
		return nil
	}
	return claims
}
