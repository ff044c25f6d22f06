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

// ApplicationService owns the application workflow: submission, listing
// and the owner's accept/reject decision.
type ApplicationService struct {
	apps   ApplicationStore
	jobs   JobStore
	events EventPublisher
	logger *slog.Logger
}

// NewApplicationService creates an ApplicationService.
func NewApplicationService(apps ApplicationStore, jobs JobStore, events EventPublisher, logger *slog.Logger) *ApplicationService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ApplicationService{
		apps:   apps,
		jobs:   jobs,
		events: events,
		logger: logger,
	}
}

// Apply submits the caller's application to an active job. Only
// freelancers may apply, one application per freelancer per job, and the
// job owner never sees their own role rejected here because clients are
// turned away before the job is even looked up.
func (s *ApplicationService) Apply(ctx context.Context, caller domain.Caller, jobID string, req *dto.ApplyRequest) (*model.JobApplication, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if caller.Role != domain.RoleFreelancer {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, domain.ErrJobNotFound
	}

	exists, err := s.apps.ApplicationExists(ctx, jobID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	fields := map[string]string{}

	coverLetter := strings.TrimSpace(req.CoverLetter)
	if utf8.RuneCountInString(coverLetter) < domain.MinCoverLetterLen {
		fields["cover_letter"] = fmt.Sprintf("must be at least %d characters long", domain.MinCoverLetterLen)
	}

	if req.BidAmount != nil && *req.BidAmount <= 0 {
		fields["bid_amount"] = "must be greater than zero"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	app := &model.JobApplication{
		ApplicationID: uuid.New().String(),
		JobID:         jobID,
		FreelancerID:  caller.ID,
		CoverLetter:   coverLetter,
		BidAmount:     req.BidAmount,
		Status:        domain.ApplicationStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The insert re-checks the job and the unique constraint, so a close
	// or duplicate racing past the checks above still cannot slip through.
	if err := s.apps.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted",
		slog.String("application_id", app.ApplicationID),
		slog.String("job_id", jobID),
		slog.String("freelancer_id", caller.ID),
	)
	s.events.ApplicationSubmitted(ctx, app)

	return app, nil
}

// ListMine returns the caller's applications with job detail, newest
// first.
func (s *ApplicationService) ListMine(ctx context.Context, caller domain.Caller) ([]model.ApplicationWithJob, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if caller.Role != domain.RoleFreelancer {
		return nil, domain.ErrForbidden
	}

	apps, err := s.apps.ListApplicationsByFreelancer(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list own applications: %w", err)
	}

	return apps, nil
}

// ListForJob returns every application for a job the caller owns. A
// non-owner gets the same not-found answer as for a missing job, so the
// endpoint does not reveal which job ids exist.
func (s *ApplicationService) ListForJob(ctx context.Context, caller domain.Caller, jobID string) ([]model.ApplicationWithFreelancer, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != caller.ID {
		return nil, domain.ErrJobNotFound
	}

	apps, err := s.apps.ListApplicationsForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}

	return apps, nil
}

// SetStatus records the job owner's decision on a pending application.
// Accepted and rejected are terminal; deciding an already-decided
// application fails with ErrApplicationResolved.
func (s *ApplicationService) SetStatus(ctx context.Context, caller domain.Caller, applicationID string, req *dto.UpdateApplicationStatusRequest) (*model.JobApplication, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	app, err := s.apps.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetJobByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != caller.ID {
		return nil, domain.ErrForbidden
	}

	if !domain.ValidDecision(req.Status) {
		return nil, domain.NewValidationError("status", "must be either accepted or rejected")
	}

	updated, err := s.apps.UpdateApplicationStatus(ctx, applicationID, req.Status, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("application decided",
		slog.String("application_id", applicationID),
		slog.String("job_id", app.JobID),
		slog.String("status", updated.Status),
	)
	s.events.ApplicationDecided(ctx, updated)

	return updated, nil
}
