package dto

import (
	"time"

	"github.com/freelancehub/backend/internal/api/model"
)

type CreateJobRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Category        string     `json:"category" binding:"required"`
	Budget          *float64   `json:"budget"`
	IsFixedPrice    *bool      `json:"is_fixed_price"`
	ExperienceLevel string     `json:"experience_level"`
	Deadline        *time.Time `json:"deadline"`
}

type ListJobsRequest struct {
	Category string `form:"category"`
}

type JobDTO struct {
	JobID           string   `json:"job_id"`
	Client          *UserDTO `json:"client,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Budget          *float64 `json:"budget"`
	IsFixedPrice    bool     `json:"is_fixed_price"`
	ExperienceLevel string   `json:"experience_level"`
	Deadline        *string  `json:"deadline"`
	IsActive        bool     `json:"is_active"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type ListJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}

func NewJobDTO(j *model.Job) JobDTO {
	return JobDTO{
		JobID:           j.JobID,
		Title:           j.Title,
		Description:     j.Description,
		Category:        j.Category,
		Budget:          j.Budget,
		IsFixedPrice:    j.IsFixedPrice,
		ExperienceLevel: j.ExperienceLevel,
		Deadline:        formatTimePtr(j.Deadline),
		IsActive:        j.IsActive,
		CreatedAt:       j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       j.UpdatedAt.Format(time.RFC3339),
	}
}

func NewJobWithClientDTO(j *model.JobWithClient) JobDTO {
	out := NewJobDTO(&j.Job)
	out.Client = &UserDTO{
		UserID:    j.ClientID,
		Username:  j.ClientUsername,
		Email:     j.ClientEmail,
		Role:      "client",
		FirstName: j.ClientFirstName,
		LastName:  j.ClientLastName,
		Bio:       j.ClientBio,
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
