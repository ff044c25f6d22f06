package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/service"
)

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	logger *slog.Logger
	apps   *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger: deps.Logger,
		apps:   deps.Applications,
	}
}

// Apply handles POST /api/v1/jobs/:job_id/apply
// Submits the authenticated freelancer's application to a job
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID := c.Param("job_id")

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	app, err := h.apps.Apply(c.Request.Context(), callerFrom(c), jobID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewApplicationDTO(app))
}

// ListJobApplications handles GET /api/v1/jobs/:job_id/applications
// Lists applications for a job the authenticated client owns
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID := c.Param("job_id")

	apps, err := h.apps.ListForJob(c.Request.Context(), callerFrom(c), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.ApplicationDTO, len(apps))
	for i := range apps {
		out[i] = dto.NewApplicationWithFreelancerDTO(&apps[i])
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: out})
}

// ListMyApplications handles GET /api/v1/applications/mine
// Lists the authenticated freelancer's applications with job detail
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	apps, err := h.apps.ListMine(c.Request.Context(), callerFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.ApplicationDTO, len(apps))
	for i := range apps {
		out[i] = dto.NewApplicationWithJobDTO(&apps[i])
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: out})
}

// UpdateApplicationStatus handles PUT /api/v1/applications/:application_id/status
// Records the job owner's accept or reject decision
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	applicationID := c.Param("application_id")

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	app, err := h.apps.SetStatus(c.Request.Context(), callerFrom(c), applicationID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewApplicationDTO(app))
}
