package repository

import (
	"context"
	"errors"

	"github.com/Alwanly/webhook-submitter/internal/models"
)

// ErrEmptyRegistrationResponse is returned when the registration endpoint
// answers without a body or with a JSON null.
var ErrEmptyRegistrationResponse = errors.New("empty registration response")

// IRegistrationClient defines the interface for obtaining a webhook
type IRegistrationClient interface {
	// Register posts the applicant and returns the issued webhook and token
	Register(ctx context.Context, applicant models.Applicant) (*models.RegistrationResponse, error)
}

// IWebhookClient defines the interface for submitting a solution
type IWebhookClient interface {
	// Submit posts the query to url, passing accessToken as the raw Authorization value
	Submit(ctx context.Context, url, accessToken, query string) (*models.SubmissionResponse, error)
}
