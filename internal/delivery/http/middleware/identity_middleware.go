package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Identity resolves the X-Candidate-ID header into request-scoped
// identity keys. The header is optional here; routes that need a caller
// stack RequireIdentity (and RequireAdmin) on top.
func Identity(candidateUC domain.CandidateUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Candidate-ID")
		if id == "" {
			c.Next()
			return
		}

		candidate, err := candidateUC.GetCandidate(c, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "Unknown candidate identity", nil)
			} else {
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyCandidateID), candidate.ID)
		c.Set(string(domain.KeyIsAdmin), candidate.IsAdmin)
		c.Next()
	}
}

// RequireIdentity rejects requests that did not present a resolvable
// candidate identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyCandidateID)) == "" {
			response.Error(c, http.StatusUnauthorized, "Please log in to continue.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(string(domain.KeyIsAdmin)) {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this page.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
