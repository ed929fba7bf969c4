package usecase

import (
	"context"
	"io"

	"github.com/Alwanly/webhook-submitter/internal/models"
)

// IUseCase defines the business logic interface for the webhook submitter
type IUseCase interface {
	// Register obtains a webhook URL and access token for the configured applicant
	Register(ctx context.Context) (*models.RegistrationResponse, error)
	// Submit posts query to webhookURL, or to the fallback URL when webhookURL is nil or empty
	Submit(ctx context.Context, webhookURL, accessToken *string, query string) (*models.SubmissionResponse, error)
	// Report writes the submission outcome to w
	Report(w io.Writer, resp *models.SubmissionResponse) error
	// Run performs register, submit and report in order
	Run(ctx context.Context, w io.Writer) (*models.SubmissionResponse, error)
}
