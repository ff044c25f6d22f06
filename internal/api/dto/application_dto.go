package dto

import (
	"time"

	"github.com/freelancehub/backend/internal/api/model"
)

type ApplyRequest struct {
	CoverLetter string   `json:"cover_letter" binding:"required"`
	BidAmount   *float64 `json:"bid_amount"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationDTO struct {
	ApplicationID string   `json:"application_id"`
	JobID         string   `json:"job_id"`
	Job           *JobDTO  `json:"job,omitempty"`
	Freelancer    *UserDTO `json:"freelancer,omitempty"`
	CoverLetter   string   `json:"cover_letter"`
	BidAmount     *float64 `json:"bid_amount"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
}

func NewApplicationDTO(a *model.JobApplication) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID: a.ApplicationID,
		JobID:         a.JobID,
		CoverLetter:   a.CoverLetter,
		BidAmount:     a.BidAmount,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewApplicationWithJobDTO(a *model.ApplicationWithJob) ApplicationDTO {
	out := NewApplicationDTO(&a.JobApplication)
	out.Job = &JobDTO{
		JobID:           a.JobID,
		Title:           a.JobTitle,
		Description:     a.JobDescription,
		Category:        a.JobCategory,
		Budget:          a.JobBudget,
		IsFixedPrice:    a.JobIsFixedPrice,
		ExperienceLevel: a.JobExperienceLevel,
		Deadline:        formatTimePtr(a.JobDeadline),
		IsActive:        a.JobIsActive,
		CreatedAt:       a.JobCreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.JobUpdatedAt.Format(time.RFC3339),
		Client: &UserDTO{
			UserID:    a.ClientID,
			Username:  a.ClientUsername,
			Email:     a.ClientEmail,
			Role:      "client",
			FirstName: a.ClientFirstName,
			LastName:  a.ClientLastName,
			Bio:       a.ClientBio,
		},
	}
	return out
}

func NewApplicationWithFreelancerDTO(a *model.ApplicationWithFreelancer) ApplicationDTO {
	out := NewApplicationDTO(&a.JobApplication)
	out.Freelancer = &UserDTO{
		UserID:    a.FreelancerID,
		Username:  a.FreelancerUsername,
		Email:     a.FreelancerEmail,
		Role:      "freelancer",
		FirstName: a.FreelancerFirstName,
		LastName:  a.FreelancerLastName,
		Bio:       a.FreelancerBio,
	}
	return out
}
