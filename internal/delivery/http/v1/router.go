package v1

import (
	"net/http"
	"time"

	"riseup-backend/config"
	"riseup-backend/internal/delivery/http/middleware"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"
	"riseup-backend/pkg/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CourseUC      domain.CourseUsecase
	ApplicationUC domain.ApplicationUsecase
	ResumeUC      domain.ResumeUsecase
	InterviewUC   domain.InterviewUsecase
	ChatUC        domain.ChatUsecase
	Sessions      *session.Manager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := api.Group("")

	// Credential endpoints get a tighter limit than the rest of the API
	authPublic := api.Group("", middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitAuthThreshold,
		Window:    window,
		KeyPrefix: "rl:auth:",
	}))

	protected := api.Group("")
	protected.Use(middleware.SessionAuth(deps.Sessions, deps.AuthUC))

	NewAuthHandler(authPublic, protected, deps.AuthUC, deps.Sessions)
	NewJobHandler(public, protected, deps.JobUC, deps.ApplicationUC)
	NewCourseHandler(public, protected, deps.CourseUC, deps.AuthUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewResumeHandler(public, protected, deps.ResumeUC)
	NewInterviewHandler(public, protected, deps.InterviewUC)
	NewConversationHandler(protected, deps.ChatUC)
	NewProfileHandler(public, deps.AuthUC)

	return r
}
