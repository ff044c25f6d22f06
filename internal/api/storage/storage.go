package storage

import (
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/shared/postgresql"
)

// Storage provides database access for all marketplace entities.
type Storage struct {
	db *sqlx.DB
}

// NewStorage creates a Storage backed by the shared PostgreSQL client.
func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// NewStorageWithDB creates a Storage from a raw sqlx handle. Used by tests.
func NewStorageWithDB(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

const pgUniqueViolation = "23505"

// mapConstraintError translates a PostgreSQL unique-constraint violation
// into the matching domain conflict error. Uniqueness is enforced by the
// database so that concurrent inserts cannot race past an application-level
// check.
func mapConstraintError(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case "job_applications_job_freelancer_key":
		return domain.ErrDuplicateApplication
	case "users_username_key":
		return domain.ErrUsernameTaken
	case "users_email_key":
		return domain.ErrEmailTaken
	}
	return nil
}
