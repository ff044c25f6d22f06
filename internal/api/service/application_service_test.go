package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/dto"
	"github.com/freelancehub/backend/internal/api/model"
)

func pendingApplication(applicationID, jobID, freelancerID string) *model.JobApplication {
	now := time.Now().UTC()
	return &model.JobApplication{
		ApplicationID: applicationID,
		JobID:         jobID,
		FreelancerID:  freelancerID,
		CoverLetter:   "I have shipped several similar projects",
		Status:        domain.ApplicationStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	freelancer := domain.Caller{ID: "free-1", Role: domain.RoleFreelancer}

	validReq := func() *dto.ApplyRequest {
		return &dto.ApplyRequest{CoverLetter: "I have shipped several similar projects"}
	}

	jobStore := func(job *model.JobWithClient) *fakeJobStore {
		return &fakeJobStore{
			getJobByIDFn: func(_ context.Context, jobID string) (*model.JobWithClient, error) {
				if job == nil {
					return nil, domain.ErrJobNotFound
				}
				return job, nil
			},
		}
	}

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewApplicationService(&fakeApplicationStore{}, &fakeJobStore{}, nil, testLogger())

		_, err := svc.Apply(context.Background(), domain.Caller{}, "job-1", validReq())

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("client cannot apply", func(t *testing.T) {
		svc := NewApplicationService(&fakeApplicationStore{}, &fakeJobStore{}, nil, testLogger())

		_, err := svc.Apply(context.Background(), domain.Caller{ID: "c-1", Role: domain.RoleClient}, "job-1", validReq())

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing job", func(t *testing.T) {
		svc := NewApplicationService(&fakeApplicationStore{}, jobStore(nil), nil, testLogger())

		_, err := svc.Apply(context.Background(), freelancer, "nope", validReq())

		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("closed job looks missing", func(t *testing.T) {
		job := activeJob("job-1", "client-1")
		job.IsActive = false
		svc := NewApplicationService(&fakeApplicationStore{}, jobStore(job), nil, testLogger())

		_, err := svc.Apply(context.Background(), freelancer, "job-1", validReq())

		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("duplicate application", func(t *testing.T) {
		apps := &fakeApplicationStore{
			applicationExistsFn: func(context.Context, string, string) (bool, error) {
				return true, nil
			},
		}
		svc := NewApplicationService(apps, jobStore(activeJob("job-1", "client-1")), nil, testLogger())

		_, err := svc.Apply(context.Background(), freelancer, "job-1", validReq())

		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})

	t.Run("validation failures", func(t *testing.T) {
		apps := &fakeApplicationStore{
			applicationExistsFn: func(context.Context, string, string) (bool, error) {
				return false, nil
			},
		}
		svc := NewApplicationService(apps, jobStore(activeJob("job-1", "client-1")), nil, testLogger())

		zero := 0.0
		_, err := svc.Apply(context.Background(), freelancer, "job-1", &dto.ApplyRequest{
			CoverLetter: "short",
			BidAmount:   &zero,
		})

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "cover_letter")
		assert.Contains(t, ve.Fields, "bid_amount")
	})

	t.Run("cover letter minimum counts characters, not bytes", func(t *testing.T) {
		apps := &fakeApplicationStore{
			applicationExistsFn: func(context.Context, string, string) (bool, error) {
				return false, nil
			},
			createApplicationFn: func(context.Context, *model.JobApplication) error {
				return nil
			},
		}
		svc := NewApplicationService(apps, jobStore(activeJob("job-1", "client-1")), nil, testLogger())

		// Seven characters, twenty-one bytes: below the ten-character minimum.
		_, err := svc.Apply(context.Background(), freelancer, "job-1", &dto.ApplyRequest{
			CoverLetter: "経験があります",
		})

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "cover_letter")

		_, err = svc.Apply(context.Background(), freelancer, "job-1", &dto.ApplyRequest{
			CoverLetter: "同様の案件を何件も納品してきました",
		})

		require.NoError(t, err)
	})

	t.Run("successful submission", func(t *testing.T) {
		var stored *model.JobApplication
		apps := &fakeApplicationStore{
			applicationExistsFn: func(context.Context, string, string) (bool, error) {
				return false, nil
			},
			createApplicationFn: func(_ context.Context, app *model.JobApplication) error {
				stored = app
				return nil
			},
		}
		events := &recordingPublisher{}
		svc := NewApplicationService(apps, jobStore(activeJob("job-1", "client-1")), events, testLogger())

		bid := 250.0
		req := validReq()
		req.BidAmount = &bid

		got, err := svc.Apply(context.Background(), freelancer, "job-1", req)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, got.ApplicationID)
		assert.Equal(t, freelancer.ID, got.FreelancerID)
		assert.Equal(t, domain.ApplicationStatusPending, got.Status)
		assert.Equal(t, &bid, got.BidAmount)
		assert.Equal(t, 1, events.applicationSubmitted)
	})

	t.Run("constraint race surfaces as duplicate", func(t *testing.T) {
		apps := &fakeApplicationStore{
			applicationExistsFn: func(context.Context, string, string) (bool, error) {
				return false, nil
			},
			createApplicationFn: func(context.Context, *model.JobApplication) error {
				return domain.ErrDuplicateApplication
			},
		}
		svc := NewApplicationService(apps, jobStore(activeJob("job-1", "client-1")), nil, testLogger())

		_, err := svc.Apply(context.Background(), freelancer, "job-1", validReq())

		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})
}

func TestApplicationService_ListMine(t *testing.T) {
	t.Run("freelancer sees own applications", func(t *testing.T) {
		apps := &fakeApplicationStore{
			listApplicationsByFreelancerFn: func(_ context.Context, freelancerID string) ([]model.ApplicationWithJob, error) {
				return []model.ApplicationWithJob{
					{JobApplication: *pendingApplication("app-1", "job-1", freelancerID)},
				}, nil
			},
		}
		svc := NewApplicationService(apps, &fakeJobStore{}, nil, testLogger())

		got, err := svc.ListMine(context.Background(), domain.Caller{ID: "free-1", Role: domain.RoleFreelancer})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		svc := NewApplicationService(&fakeApplicationStore{}, &fakeJobStore{}, nil, testLogger())

		_, err := svc.ListMine(context.Background(), domain.Caller{ID: "c-1", Role: domain.RoleClient})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestApplicationService_ListForJob(t *testing.T) {
	owner := domain.Caller{ID: "client-1", Role: domain.RoleClient}

	t.Run("owner lists applications", func(t *testing.T) {
		jobs := &fakeJobStore{
			getJobByIDFn: func(_ context.Context, jobID string) (*model.JobWithClient, error) {
				return activeJob(jobID, owner.ID), nil
			},
		}
		apps := &fakeApplicationStore{
			listApplicationsForJobFn: func(_ context.Context, jobID string) ([]model.ApplicationWithFreelancer, error) {
				return []model.ApplicationWithFreelancer{
					{JobApplication: *pendingApplication("app-1", jobID, "free-1")},
				}, nil
			},
		}
		svc := NewApplicationService(apps, jobs, nil, testLogger())

		got, err := svc.ListForJob(context.Background(), owner, "job-1")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-owner gets not found, not forbidden", func(t *testing.T) {
		jobs := &fakeJobStore{
			getJobByIDFn: func(_ context.Context, jobID string) (*model.JobWithClient, error) {
				return activeJob(jobID, "someone-else"), nil
			},
		}
		svc := NewApplicationService(&fakeApplicationStore{}, jobs, nil, testLogger())

		_, err := svc.ListForJob(context.Background(), owner, "job-1")

		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})
}

func TestApplicationService_SetStatus(t *testing.T) {
	owner := domain.Caller{ID: "client-1", Role: domain.RoleClient}

	stores := func(app *model.JobApplication, jobOwner string) (*fakeApplicationStore, *fakeJobStore) {
		apps := &fakeApplicationStore{
			getApplicationByIDFn: func(_ context.Context, applicationID string) (*model.JobApplication, error) {
				if app == nil {
					return nil, domain.ErrApplicationNotFound
				}
				return app, nil
			},
			updateApplicationStatusFn: func(_ context.Context, _, status string, updatedAt time.Time) (*model.JobApplication, error) {
				updated := *app
				updated.Status = status
				updated.UpdatedAt = updatedAt
				return &updated, nil
			},
		}
		jobs := &fakeJobStore{
			getJobByIDFn: func(_ context.Context, jobID string) (*model.JobWithClient, error) {
				return activeJob(jobID, jobOwner), nil
			},
		}
		return apps, jobs
	}

	t.Run("owner accepts a pending application", func(t *testing.T) {
		apps, jobs := stores(pendingApplication("app-1", "job-1", "free-1"), owner.ID)
		events := &recordingPublisher{}
		svc := NewApplicationService(apps, jobs, events, testLogger())

		got, err := svc.SetStatus(context.Background(), owner, "app-1", &dto.UpdateApplicationStatusRequest{
			Status: domain.ApplicationStatusAccepted,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, got.Status)
		assert.Equal(t, 1, events.applicationDecided)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		apps, jobs := stores(pendingApplication("app-1", "job-1", "free-1"), "someone-else")
		svc := NewApplicationService(apps, jobs, nil, testLogger())

		_, err := svc.SetStatus(context.Background(), owner, "app-1", &dto.UpdateApplicationStatusRequest{
			Status: domain.ApplicationStatusAccepted,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("pending is not a valid decision", func(t *testing.T) {
		apps, jobs := stores(pendingApplication("app-1", "job-1", "free-1"), owner.ID)
		svc := NewApplicationService(apps, jobs, nil, testLogger())

		_, err := svc.SetStatus(context.Background(), owner, "app-1", &dto.UpdateApplicationStatusRequest{
			Status: domain.ApplicationStatusPending,
		})

		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "status")
	})

	t.Run("already decided application", func(t *testing.T) {
		app := pendingApplication("app-1", "job-1", "free-1")
		apps, jobs := stores(app, owner.ID)
		apps.updateApplicationStatusFn = func(context.Context, string, string, time.Time) (*model.JobApplication, error) {
			return nil, domain.ErrApplicationResolved
		}
		svc := NewApplicationService(apps, jobs, nil, testLogger())

		_, err := svc.SetStatus(context.Background(), owner, "app-1", &dto.UpdateApplicationStatusRequest{
			Status: domain.ApplicationStatusRejected,
		})

		assert.ErrorIs(t, err, domain.ErrApplicationResolved)
	})

	t.Run("missing application", func(t *testing.T) {
		apps, jobs := stores(nil, owner.ID)
		svc := NewApplicationService(apps, jobs, nil, testLogger())

		_, err := svc.SetStatus(context.Background(), owner, "nope", &dto.UpdateApplicationStatusRequest{
			Status: domain.ApplicationStatusAccepted,
		})

		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}
