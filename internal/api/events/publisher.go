package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/freelancehub/backend/internal/api/model"
	"github.com/freelancehub/backend/shared/rabbitmq"
)

// Routing keys for the domain event exchange.
const (
	RoutingKeyJobCreated               = "job.created"
	RoutingKeyJobClosed                = "job.closed"
	RoutingKeyApplicationSubmitted     = "application.submitted"
	RoutingKeyApplicationStatusChanged = "application.status_changed"
)

type jobCreatedEvent struct {
	JobID     string    `json:"job_id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type jobClosedEvent struct {
	JobID    string    `json:"job_id"`
	ClientID string    `json:"client_id"`
	ClosedAt time.Time `json:"closed_at"`
}

type applicationEvent struct {
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	FreelancerID  string    `json:"freelancer_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher emits domain events to RabbitMQ. Publishing is best-effort:
// failures are logged and never surfaced to the caller, so a broker
// outage cannot fail API requests.
type Publisher struct {
	client *rabbitmq.Client
	logger *slog.Logger
}

// NewPublisher creates a Publisher over an established broker client.
func NewPublisher(client *rabbitmq.Client, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger,
	}
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to encode event",
			slog.String("routing_key", routingKey),
			slog.Any("error", err),
		)
		return
	}

	if err := p.client.PublishWithRetry(ctx, routingKey, body, "application/json"); err != nil {
		p.logger.Error("Failed to publish event",
			slog.String("routing_key", routingKey),
			slog.Any("error", err),
		)
	}
}

func (p *Publisher) JobCreated(ctx context.Context, job *model.Job) {
	p.publish(ctx, RoutingKeyJobCreated, jobCreatedEvent{
		JobID:     job.JobID,
		ClientID:  job.ClientID,
		Title:     job.Title,
		Category:  job.Category,
		CreatedAt: job.CreatedAt,
	})
}

// JobClosed emits the close event stamped with the same timestamp that was
// written to the job row.
func (p *Publisher) JobClosed(ctx context.Context, jobID, clientID string, closedAt time.Time) {
	p.publish(ctx, RoutingKeyJobClosed, jobClosedEvent{
		JobID:    jobID,
		ClientID: clientID,
		ClosedAt: closedAt,
	})
}

func (p *Publisher) ApplicationSubmitted(ctx context.Context, app *model.JobApplication) {
	p.publish(ctx, RoutingKeyApplicationSubmitted, applicationEvent{
		ApplicationID: app.ApplicationID,
		JobID:         app.JobID,
		FreelancerID:  app.FreelancerID,
		Status:        app.Status,
		OccurredAt:    app.CreatedAt,
	})
}

func (p *Publisher) ApplicationDecided(ctx context.Context, app *model.JobApplication) {
	p.publish(ctx, RoutingKeyApplicationStatusChanged, applicationEvent{
		ApplicationID: app.ApplicationID,
		JobID:         app.JobID,
		FreelancerID:  app.FreelancerID,
		Status:        app.Status,
		OccurredAt:    app.UpdatedAt,
	})
}
