package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	ApplicationUC domain.ApplicationUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	identity := middleware.Identity(deps.CandidateUC)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login (no identity required)
	NewAuthHandler(v1, deps.AuthUC)

	// Public browsing; identity is optional and only enriches the
	// job-detail view with already_applied.
	public := v1.Group("")
	public.Use(identity)
	NewJobHandler(public, deps.JobUC, deps.ApplicationUC)

	// Candidate routes
	identified := v1.Group("")
	identified.Use(identity, middleware.RequireIdentity())
	NewApplicationHandler(identified, deps.ApplicationUC, deps.CandidateUC)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(identity, middleware.RequireIdentity(), middleware.RequireAdmin())
	NewAdminHandler(admin, deps.CandidateUC, deps.JobUC)

	return r
}
