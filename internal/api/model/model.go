package model

import "time"

type User struct {
	UserID       string    `db:"user_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Bio          string    `db:"bio"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Job struct {
	JobID           string     `db:"job_id"`
	ClientID        string     `db:"client_id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Category        string     `db:"category"`
	Budget          *float64   `db:"budget"`
	IsFixedPrice    bool       `db:"is_fixed_price"`
	ExperienceLevel string     `db:"experience_level"`
	Deadline        *time.Time `db:"deadline"`
	IsActive        bool       `db:"is_active"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type JobApplication struct {
	ApplicationID string    `db:"application_id"`
	JobID         string    `db:"job_id"`
	FreelancerID  string    `db:"freelancer_id"`
	CoverLetter   string    `db:"cover_letter"`
	BidAmount     *float64  `db:"bid_amount"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// JobWithClient is a job row joined with its owning client, for listings
// that expose client detail alongside the job.
type JobWithClient struct {
	Job
	ClientUsername  string `db:"client_username"`
	ClientEmail     string `db:"client_email"`
	ClientFirstName string `db:"client_first_name"`
	ClientLastName  string `db:"client_last_name"`
	ClientBio       string `db:"client_bio"`
}

// ApplicationWithJob is an application row joined with its job and the
// job's owning client, for a freelancer's my-applications view. Job and
// client columns are aliased flat to keep sqlx scanning unambiguous.
type ApplicationWithJob struct {
	JobApplication
	JobTitle           string     `db:"job_title"`
	JobDescription     string     `db:"job_description"`
	JobCategory        string     `db:"job_category"`
	JobBudget          *float64   `db:"job_budget"`
	JobIsFixedPrice    bool       `db:"job_is_fixed_price"`
	JobExperienceLevel string     `db:"job_experience_level"`
	JobDeadline        *time.Time `db:"job_deadline"`
	JobIsActive        bool       `db:"job_is_active"`
	JobCreatedAt       time.Time  `db:"job_created_at"`
	JobUpdatedAt       time.Time  `db:"job_updated_at"`
	ClientID           string     `db:"client_id"`
	ClientUsername     string     `db:"client_username"`
	ClientEmail        string     `db:"client_email"`
	ClientFirstName    string     `db:"client_first_name"`
	ClientLastName     string     `db:"client_last_name"`
	ClientBio          string     `db:"client_bio"`
}

// ApplicationWithFreelancer is an application row joined with its
// freelancer, for the job owner's applications view.
type ApplicationWithFreelancer struct {
	JobApplication
	FreelancerUsername  string `db:"freelancer_username"`
	FreelancerEmail     string `db:"freelancer_email"`
	FreelancerFirstName string `db:"freelancer_first_name"`
	FreelancerLastName  string `db:"freelancer_last_name"`
	FreelancerBio       string `db:"freelancer_bio"`
}
