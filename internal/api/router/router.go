package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freelancehub/backend/internal/api/handler"
	"github.com/freelancehub/backend/shared/auth"
)

// Options carries router-level settings that do not belong to any single
// handler.
type Options struct {
	Tokens         *auth.TokenIssuer
	RateLimitRPS   float64
	RateLimitBurst int
}

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, opts Options) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())
	r.Use(MetricsMiddleware())
	if opts.RateLimitRPS > 0 {
		r.Use(RateLimitMiddleware(opts.RateLimitRPS, opts.RateLimitBurst))
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "freelancehub-api",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handler.NewAuthHandler(deps)
	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)

	requireAuth := AuthMiddleware(opts.Tokens, deps.Logger)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			// POST /api/v1/auth/register - Create an account
			authRoutes.POST("/register", authHandler.Register)

			// POST /api/v1/auth/login - Exchange credentials for a token
			authRoutes.POST("/login", authHandler.Login)

			// GET /api/v1/auth/me - Current account
			authRoutes.GET("/me", requireAuth, authHandler.Me)

			// PUT /api/v1/auth/me - Update profile
			authRoutes.PUT("/me", requireAuth, authHandler.UpdateMe)
		}

		jobs := v1.Group("/jobs")
		{
			// GET /api/v1/jobs - List active jobs, optionally by category
			jobs.GET("", jobHandler.ListJobs)

			// POST /api/v1/jobs - Post a new job (clients only)
			jobs.POST("", requireAuth, jobHandler.CreateJob)

			// GET /api/v1/jobs/mine - The client's own jobs
			jobs.GET("/mine", requireAuth, jobHandler.ListMyJobs)

			// GET /api/v1/jobs/:job_id - Job details
			jobs.GET("/:job_id", jobHandler.GetJob)

			// POST /api/v1/jobs/:job_id/close - Close a job (owner only)
			jobs.POST("/:job_id/close", requireAuth, jobHandler.CloseJob)

			// POST /api/v1/jobs/:job_id/apply - Apply to a job (freelancers only)
			jobs.POST("/:job_id/apply", requireAuth, applicationHandler.Apply)

			// GET /api/v1/jobs/:job_id/applications - Applications for an owned job
			jobs.GET("/:job_id/applications", requireAuth, applicationHandler.ListJobApplications)
		}

		applications := v1.Group("/applications")
		{
			// GET /api/v1/applications/mine - The freelancer's own applications
			applications.GET("/mine", requireAuth, applicationHandler.ListMyApplications)

			// PUT /api/v1/applications/:application_id/status - Accept or reject
			applications.PUT("/:application_id/status", requireAuth, applicationHandler.UpdateApplicationStatus)
		}
	}

	return r
}
