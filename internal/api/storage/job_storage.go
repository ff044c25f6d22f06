package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/model"
)

const jobWithClientColumns = `
	j.job_id, j.client_id, j.title, j.description, j.category,
	j.budget, j.is_fixed_price, j.experience_level, j.deadline,
	j.is_active, j.created_at, j.updated_at,
	u.username AS client_username, u.email AS client_email,
	u.first_name AS client_first_name, u.last_name AS client_last_name,
	u.bio AS client_bio
`

func (s *Storage) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			job_id, client_id, title, description, category,
			budget, is_fixed_price, experience_level, deadline,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobID,
		job.ClientID,
		job.Title,
		job.Description,
		job.Category,
		job.Budget,
		job.IsFixedPrice,
		job.ExperienceLevel,
		job.Deadline,
		job.IsActive,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetJobByID returns the job regardless of its active flag; callers decide
// whether inactive jobs are visible for their operation.
func (s *Storage) GetJobByID(ctx context.Context, jobID string) (*model.JobWithClient, error) {
	var job model.JobWithClient
	query := `
		SELECT ` + jobWithClientColumns + `
		FROM jobs j
		JOIN users u ON u.user_id = j.client_id
		WHERE j.job_id = $1
	`

	err := s.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// ListActiveJobs returns active jobs newest first, optionally filtered by
// category.
func (s *Storage) ListActiveJobs(ctx context.Context, category string) ([]model.JobWithClient, error) {
	query := `
		SELECT ` + jobWithClientColumns + `
		FROM jobs j
		JOIN users u ON u.user_id = j.client_id
		WHERE j.is_active = TRUE
	`
	args := []interface{}{}

	if category != "" {
		query += ` AND j.category = $1`
		args = append(args, category)
	}

	query += ` ORDER BY j.created_at DESC, j.job_id DESC`

	var jobs []model.JobWithClient
	err := s.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// ListJobsByClient returns every job owned by the client, active or not,
// newest first.
func (s *Storage) ListJobsByClient(ctx context.Context, clientID string) ([]model.Job, error) {
	query := `
		SELECT
			job_id, client_id, title, description, category,
			budget, is_fixed_price, experience_level, deadline,
			is_active, created_at, updated_at
		FROM jobs
		WHERE client_id = $1
		ORDER BY created_at DESC, job_id DESC
	`

	var jobs []model.Job
	err := s.db.SelectContext(ctx, &jobs, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// CloseJob flips is_active to false. Closing an already-closed job is a
// no-op that still succeeds.
func (s *Storage) CloseJob(ctx context.Context, jobID string, closedAt time.Time) error {
	query := `
		UPDATE jobs
		SET is_active = FALSE, updated_at = $2
		WHERE job_id = $1
	`

	res, err := s.db.ExecContext(ctx, query, jobID, closedAt)
	if err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}
