package v1

import (
	"errors"
	"fmt"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/login", handler.Login)
	}
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// Login godoc
// @Summary      Log in by email
// @Description  Resolve a candidate (or admin) by email. There are no passwords; a malformed or unknown email yields 401.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login JSON"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Login(c, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.Unauthorized("Invalid email. Please try again."))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	message := fmt.Sprintf("Welcome, %s %s!", user.FirstName, user.LastName)
	response.Success(c, http.StatusOK, message, user)
}
