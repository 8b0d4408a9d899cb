package v1

import (
	"net/http"
	"time"

	"go-skillmarket-backend/config"
	"go-skillmarket-backend/internal/delivery/http/middleware"
	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/auth"
	"go-skillmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	CourseUC     domain.CourseUsecase
	EnrollmentUC domain.EnrollmentUsecase
	SearchUC     domain.CandidateSearchUsecase
	UnlockUC     domain.ResumeUnlockUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Custom validators used by binding tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter limits on credential endpoints
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC, deps.Tokens, deps.Config, loginLimiter)
		NewCourseHandler(v1, deps.CourseUC)
		NewEnrollmentHandler(protected, deps.EnrollmentUC)
		NewCandidateHandler(protected, deps.SearchUC)
		NewResumeHandler(protected, deps.UnlockUC)
		NewUserHandler(protected, deps.AuthUC)
	}

	return r
}
