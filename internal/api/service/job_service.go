package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/model"
)

// JobService owns job lifecycle and visibility rules.
type JobService struct {
	jobs   JobStore
	events EventPublisher
	logger *slog.Logger
}

// NewJobService creates a JobService.
func NewJobService(jobs JobStore, events EventPublisher, logger *slog.Logger) *JobService {
	if events == nil {
		events = NopPublisher{}
	}
	return &JobService{
		jobs:   jobs,
		events: events,
		logger: logger,
	}
}

// List returns active jobs newest first, optionally filtered by category.
// Public; no caller required. An unrecognized category is rejected rather
// than silently ignored.
func (s *JobService) List(ctx context.Context, category string) ([]model.JobWithClient, error) {
	if category != "" && !domain.ValidCategory(category) {
		return nil, domain.NewValidationError("category", "invalid category selected")
	}

	jobs, err := s.jobs.ListActiveJobs(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

// Get returns an active job by id. Inactive jobs are invisible here, same
// as in listings.
func (s *JobService) Get(ctx context.Context, jobID string) (*model.JobWithClient, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.IsActive {
		return nil, domain.ErrJobNotFound
	}

	return job, nil
}

// Create persists a new job owned by the caller. Only authenticated
// clients may post jobs.
func (s *JobService) Create(ctx context.Context, caller domain.Caller, req *dto.CreateJobRequest) (*model.Job, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if caller.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}

	fields := map[string]string{}

	// Minimum lengths count characters, not bytes, so multibyte input is
	// measured the same as ASCII.
	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < domain.MinTitleLen {
		fields["title"] = fmt.Sprintf("must be at least %d characters long", domain.MinTitleLen)
	}

	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) < domain.MinDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at least %d characters long", domain.MinDescriptionLen)
	}

	if !domain.ValidCategory(req.Category) {
		fields["category"] = "invalid category selected"
	}

	experienceLevel := req.ExperienceLevel
	if experienceLevel == "" {
		experienceLevel = domain.ExperienceEntry
	} else if !domain.ValidExperienceLevel(experienceLevel) {
		fields["experience_level"] = "invalid experience level selected"
	}

	if req.Budget != nil && *req.Budget < 0 {
		fields["budget"] = "must not be negative"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	isFixedPrice := true
	if req.IsFixedPrice != nil {
		isFixedPrice = *req.IsFixedPrice
	}

	now := time.Now().UTC()
	job := &model.Job{
		JobID:           uuid.New().String(),
		ClientID:        caller.ID,
		Title:           title,
		Description:     description,
		Category:        req.Category,
		Budget:          req.Budget,
		IsFixedPrice:    isFixedPrice,
		ExperienceLevel: experienceLevel,
		Deadline:        req.Deadline,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.Info("job created",
		slog.String("job_id", job.JobID),
		slog.String("client_id", caller.ID),
		slog.String("category", job.Category),
	)
	s.events.JobCreated(ctx, job)

	return job, nil
}

// ListMine returns every job owned by the caller, active or not.
func (s *JobService) ListMine(ctx context.Context, caller domain.Caller) ([]model.Job, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if caller.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}

	jobs, err := s.jobs.ListJobsByClient(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list own jobs: %w", err)
	}

	return jobs, nil
}

// Close deactivates a job, hiding it from public listings and new
// applications. Only the owning client may close a job.
func (s *JobService) Close(ctx context.Context, caller domain.Caller, jobID string) (*model.Job, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != caller.ID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.jobs.CloseJob(ctx, jobID, now); err != nil {
		return nil, fmt.Errorf("close job: %w", err)
	}

	job.IsActive = false
	job.UpdatedAt = now

	s.logger.Info("job closed",
		slog.String("job_id", jobID),
		slog.String("client_id", caller.ID),
	)
	s.events.JobClosed(ctx, jobID, caller.ID, now)

	return &job.Job, nil
}
