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

const applicationColumns = `
	application_id, job_id, freelancer_id, cover_letter,
	bid_amount, status, created_at, updated_at
`

// CreateApplication inserts an application inside a transaction that
// re-checks the job is still active, so a job closed concurrently with a
// submission cannot gain applications. The (job_id, freelancer_id) unique
// constraint rejects duplicates atomically.
func (s *Storage) CreateApplication(ctx context.Context, app *model.JobApplication) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var isActive bool
	err = tx.GetContext(ctx, &isActive,
		`SELECT is_active FROM jobs WHERE job_id = $1 FOR SHARE`, app.JobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrJobNotFound
		}
		return fmt.Errorf("failed to check job: %w", err)
	}
	if !isActive {
		return domain.ErrJobNotFound
	}

	query := `
		INSERT INTO job_applications (
			application_id, job_id, freelancer_id, cover_letter,
			bid_amount, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8
		)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		app.ApplicationID,
		app.JobID,
		app.FreelancerID,
		app.CoverLetter,
		app.BidAmount,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ApplicationExists reports whether the freelancer already applied to the
// job. Used for early conflict reporting; the unique constraint remains the
// authoritative guard.
func (s *Storage) ApplicationExists(ctx context.Context, jobID, freelancerID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM job_applications
			WHERE job_id = $1 AND freelancer_id = $2
		)
	`

	err := s.db.GetContext(ctx, &exists, query, jobID, freelancerID)
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}

	return exists, nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, applicationID string) (*model.JobApplication, error) {
	var app model.JobApplication
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE application_id = $1`

	err := s.db.GetContext(ctx, &app, query, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

// ListApplicationsByFreelancer returns the freelancer's applications with
// job and job-owner detail attached, newest first.
func (s *Storage) ListApplicationsByFreelancer(ctx context.Context, freelancerID string) ([]model.ApplicationWithJob, error) {
	query := `
		SELECT
			a.application_id, a.job_id, a.freelancer_id, a.cover_letter,
			a.bid_amount, a.status, a.created_at, a.updated_at,
			j.title AS job_title, j.description AS job_description,
			j.category AS job_category, j.budget AS job_budget,
			j.is_fixed_price AS job_is_fixed_price,
			j.experience_level AS job_experience_level,
			j.deadline AS job_deadline, j.is_active AS job_is_active,
			j.created_at AS job_created_at, j.updated_at AS job_updated_at,
			j.client_id,
			u.username AS client_username, u.email AS client_email,
			u.first_name AS client_first_name, u.last_name AS client_last_name,
			u.bio AS client_bio
		FROM job_applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN users u ON u.user_id = j.client_id
		WHERE a.freelancer_id = $1
		ORDER BY a.created_at DESC, a.application_id DESC
	`

	var apps []model.ApplicationWithJob
	err := s.db.SelectContext(ctx, &apps, query, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// ListApplicationsForJob returns every application for the job with
// freelancer detail attached, newest first.
func (s *Storage) ListApplicationsForJob(ctx context.Context, jobID string) ([]model.ApplicationWithFreelancer, error) {
	query := `
		SELECT
			a.application_id, a.job_id, a.freelancer_id, a.cover_letter,
			a.bid_amount, a.status, a.created_at, a.updated_at,
			u.username AS freelancer_username, u.email AS freelancer_email,
			u.first_name AS freelancer_first_name,
			u.last_name AS freelancer_last_name,
			u.bio AS freelancer_bio
		FROM job_applications a
		JOIN users u ON u.user_id = a.freelancer_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC, a.application_id DESC
	`

	var apps []model.ApplicationWithFreelancer
	err := s.db.SelectContext(ctx, &apps, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// UpdateApplicationStatus moves a pending application to the given status.
// The status = 'pending' guard makes terminal states terminal even under
// concurrent decisions; callers that have already confirmed the application
// exists receive ErrApplicationResolved when the guard fails.
func (s *Storage) UpdateApplicationStatus(ctx context.Context, applicationID, status string, updatedAt time.Time) (*model.JobApplication, error) {
	query := `
		UPDATE job_applications
		SET status = $2, updated_at = $3
		WHERE application_id = $1 AND status = 'pending'
		RETURNING ` + applicationColumns

	var app model.JobApplication
	err := s.db.GetContext(ctx, &app, query, applicationID, status, updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationResolved
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &app, nil
}
