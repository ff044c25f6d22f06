package service

import (
	"context"
	"time"

	"github.com/freelancehub/backend/internal/api/model"
)

// JobStore is the persistence surface required by the job registry.
type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	GetJobByID(ctx context.Context, jobID string) (*model.JobWithClient, error)
	ListActiveJobs(ctx context.Context, category string) ([]model.JobWithClient, error)
	ListJobsByClient(ctx context.Context, clientID string) ([]model.Job, error)
	CloseJob(ctx context.Context, jobID string, closedAt time.Time) error
}

// ApplicationStore is the persistence surface required by the application
// workflow.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *model.JobApplication) error
	ApplicationExists(ctx context.Context, jobID, freelancerID string) (bool, error)
	GetApplicationByID(ctx context.Context, applicationID string) (*model.JobApplication, error)
	ListApplicationsByFreelancer(ctx context.Context, freelancerID string) ([]model.ApplicationWithJob, error)
	ListApplicationsForJob(ctx context.Context, jobID string) ([]model.ApplicationWithFreelancer, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, status string, updatedAt time.Time) (*model.JobApplication, error)
}

// UserStore is the persistence surface required by the identity operations.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
}

// EventPublisher receives domain events after successful mutations.
// Publishing is best-effort; implementations must not fail the request.
type EventPublisher interface {
	JobCreated(ctx context.Context, job *model.Job)
	JobClosed(ctx context.Context, jobID, clientID string, closedAt time.Time)
	ApplicationSubmitted(ctx context.Context, app *model.JobApplication)
	ApplicationDecided(ctx context.Context, app *model.JobApplication)
}

// NopPublisher drops all events. Used when the broker is disabled and in
// tests.
type NopPublisher struct{}

func (NopPublisher) JobCreated(context.Context, *model.Job) {}

func (NopPublisher) JobClosed(context.Context, string, string, time.Time) {}

func (NopPublisher) ApplicationSubmitted(context.Context, *model.JobApplication) {}

func (NopPublisher) ApplicationDecided(context.Context, *model.JobApplication) {}
