package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/service"
)

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   *service.JobService
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}

// ListJobs handles GET /api/v1/jobs
// Lists active jobs, newest first, optionally filtered by category
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), req.Category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		out[i] = dto.NewJobWithClientDTO(&jobs[i])
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: out})
}

// GetJob handles GET /api/v1/jobs/:job_id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobWithClientDTO(job))
}

// CreateJob handles POST /api/v1/jobs
// Creates a new job owned by the authenticated client
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), callerFrom(c), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewJobDTO(job))
}

// ListMyJobs handles GET /api/v1/jobs/mine
// Lists the authenticated client's own jobs, closed ones included
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	jobs, err := h.jobs.ListMine(c.Request.Context(), callerFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		out[i] = dto.NewJobDTO(&jobs[i])
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: out})
}

// CloseJob handles POST /api/v1/jobs/:job_id/close
func (h *JobHandler) CloseJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.jobs.Close(c.Request.Context(), callerFrom(c), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}
