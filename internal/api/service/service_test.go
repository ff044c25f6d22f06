package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/freelancehub/backend/internal/api/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeJobStore struct {
	createJobFn        func(ctx context.Context, job *model.Job) error
	getJobByIDFn       func(ctx context.Context, jobID string) (*model.JobWithClient, error)
	listActiveJobsFn   func(ctx context.Context, category string) ([]model.JobWithClient, error)
	listJobsByClientFn func(ctx context.Context, clientID string) ([]model.Job, error)
	closeJobFn         func(ctx context.Context, jobID string, closedAt time.Time) error
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job *model.Job) error {
	return f.createJobFn(ctx, job)
}

func (f *fakeJobStore) GetJobByID(ctx context.Context, jobID string) (*model.JobWithClient, error) {
	return f.getJobByIDFn(ctx, jobID)
}

func (f *fakeJobStore) ListActiveJobs(ctx context.Context, category string) ([]model.JobWithClient, error) {
	return f.listActiveJobsFn(ctx, category)
}

func (f *fakeJobStore) ListJobsByClient(ctx context.Context, clientID string) ([]model.Job, error) {
	return f.listJobsByClientFn(ctx, clientID)
}

func (f *fakeJobStore) CloseJob(ctx context.Context, jobID string, closedAt time.Time) error {
	return f.closeJobFn(ctx, jobID, closedAt)
}

type fakeApplicationStore struct {
	createApplicationFn            func(ctx context.Context, app *model.JobApplication) error
	applicationExistsFn            func(ctx context.Context, jobID, freelancerID string) (bool, error)
	getApplicationByIDFn           func(ctx context.Context, applicationID string) (*model.JobApplication, error)
	listApplicationsByFreelancerFn func(ctx context.Context, freelancerID string) ([]model.ApplicationWithJob, error)
	listApplicationsForJobFn       func(ctx context.Context, jobID string) ([]model.ApplicationWithFreelancer, error)
	updateApplicationStatusFn      func(ctx context.Context, applicationID, status string, updatedAt time.Time) (*model.JobApplication, error)
}

func (f *fakeApplicationStore) CreateApplication(ctx context.Context, app *model.JobApplication) error {
	return f.createApplicationFn(ctx, app)
}

func (f *fakeApplicationStore) ApplicationExists(ctx context.Context, jobID, freelancerID string) (bool, error) {
	return f.applicationExistsFn(ctx, jobID, freelancerID)
}

func (f *fakeApplicationStore) GetApplicationByID(ctx context.Context, applicationID string) (*model.JobApplication, error) {
	return f.getApplicationByIDFn(ctx, applicationID)
}

func (f *fakeApplicationStore) ListApplicationsByFreelancer(ctx context.Context, freelancerID string) ([]model.ApplicationWithJob, error) {
	return f.listApplicationsByFreelancerFn(ctx, freelancerID)
}

func (f *fakeApplicationStore) ListApplicationsForJob(ctx context.Context, jobID string) ([]model.ApplicationWithFreelancer, error) {
	return f.listApplicationsForJobFn(ctx, jobID)
}

func (f *fakeApplicationStore) UpdateApplicationStatus(ctx context.Context, applicationID, status string, updatedAt time.Time) (*model.JobApplication, error) {
	return f.updateApplicationStatusFn(ctx, applicationID, status, updatedAt)
}

type fakeUserStore struct {
	createUserFn        func(ctx context.Context, user *model.User) error
	getUserByIDFn       func(ctx context.Context, userID string) (*model.User, error)
	getUserByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	updateUserFn        func(ctx context.Context, user *model.User) error
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	return f.getUserByIDFn(ctx, userID)
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.getUserByUsernameFn(ctx, username)
}

func (f *fakeUserStore) UpdateUser(ctx context.Context, user *model.User) error {
	return f.updateUserFn(ctx, user)
}

// recordingPublisher counts events so tests can assert which mutations
// published. It also keeps the last close timestamp so tests can compare
// it against the stored row.
type recordingPublisher struct {
	jobCreated           int
	jobClosed            int
	jobClosedAt          time.Time
	applicationSubmitted int
	applicationDecided   int
}

func (p *recordingPublisher) JobCreated(context.Context, *model.Job) { p.jobCreated++ }
func (p *recordingPublisher) JobClosed(_ context.Context, _, _ string, closedAt time.Time) {
	p.jobClosed++
	p.jobClosedAt = closedAt
}
func (p *recordingPublisher) ApplicationSubmitted(context.Context, *model.JobApplication) {
	p.applicationSubmitted++
}
func (p *recordingPublisher) ApplicationDecided(context.Context, *model.JobApplication) {
	p.applicationDecided++
}
