package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Alwanly/webhook-submitter/internal/config"
	"github.com/Alwanly/webhook-submitter/internal/models"
	"github.com/Alwanly/webhook-submitter/internal/solution"
	"github.com/Alwanly/webhook-submitter/internal/submitter/repository"
	"github.com/Alwanly/webhook-submitter/pkg/logger"
)

const banner = ">>> ===================================="

var _ IUseCase = (*UseCase)(nil)

type UseCase struct {
	registrationClient repository.IRegistrationClient
	webhookClient      repository.IWebhookClient
	cfg                *config.SubmitterConfig
	log                *logger.CanonicalLogger
}

func NewUseCase(registrationClient repository.IRegistrationClient, webhookClient repository.IWebhookClient, cfg *config.SubmitterConfig, log *logger.CanonicalLogger) *UseCase {
	return &UseCase{
		registrationClient: registrationClient,
		webhookClient:      webhookClient,
		cfg:                cfg,
		log:                log,
	}
}

// Register obtains a webhook URL and access token for the configured applicant
func (uc *UseCase) Register(ctx context.Context) (*models.RegistrationResponse, error) {
	applicant := models.Applicant{
		Name:  uc.cfg.ApplicantName,
		RegNo: uc.cfg.ApplicantRegNo,
		Email: uc.cfg.ApplicantEmail,
	}

	uc.log.Info("sending registration request",
		logger.String(logger.FieldTargetURL, uc.cfg.RegistrationURL),
		logger.String(logger.FieldRegNo, applicant.RegNo),
	)

	resp, err := uc.registrationClient.Register(ctx, applicant)
	if err != nil {
		return nil, fmt.Errorf("registration: %w", err)
	}

	uc.log.Info("received webhook",
		logger.String(logger.FieldWebhookURL, deref(resp.WebhookURL)),
		logger.Bool(logger.FieldHasToken, deref(resp.AccessToken) != ""),
	)

	return resp, nil
}

// Submit posts query to webhookURL, or to the fallback URL when webhookURL is nil or empty
func (uc *UseCase) Submit(ctx context.Context, webhookURL, accessToken *string, query string) (*models.SubmissionResponse, error) {
	url := deref(webhookURL)
	fallback := url == ""
	if fallback {
		url = uc.cfg.FallbackWebhookURL
	}

	uc.log.Info("submitting solution",
		logger.String(logger.FieldTargetURL, url),
		logger.Bool(logger.FieldFallback, fallback),
	)

	resp, err := uc.webhookClient.Submit(ctx, url, deref(accessToken), query)
	if err != nil {
		return nil, fmt.Errorf("submission: %w", err)
	}

	uc.log.Info("submission answered",
		logger.Int(logger.FieldStatusCode, resp.StatusCode),
		logger.Int(logger.FieldBodyLength, len(resp.Body)),
	)

	return resp, nil
}

// Report writes the submission outcome to w
func (uc *UseCase) Report(w io.Writer, resp *models.SubmissionResponse) error {
	status := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	_, err := fmt.Fprintf(w, "%s\n>>> FINAL RESPONSE: %s\n>>> BODY: %s\n%s\n", banner, status, resp.Body, banner)
	return err
}

// Run performs register, submit and report in order. Nothing is submitted
// when registration fails.
func (uc *UseCase) Run(ctx context.Context, w io.Writer) (*models.SubmissionResponse, error) {
	reg, err := uc.Register(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := uc.Submit(ctx, reg.WebhookURL, reg.AccessToken, solution.FinalQuery)
	if err != nil {
		return nil, err
	}

	if err := uc.Report(w, resp); err != nil {
		return resp, fmt.Errorf("report: %w", err)
	}
	return resp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
