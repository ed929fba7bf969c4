package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Alwanly/webhook-submitter/internal/models"
	"github.com/Alwanly/webhook-submitter/internal/submitter/dto"
	"github.com/Alwanly/webhook-submitter/pkg/logger"
)

type webhookClient struct {
	httpClient *http.Client
	logger     *logger.CanonicalLogger
}

// NewWebhookClient creates a new webhook client repository
func NewWebhookClient(httpClient *http.Client, log *logger.CanonicalLogger) IWebhookClient {
	return &webhookClient{
		httpClient: httpClient,
		logger:     log,
	}
}

// Submit posts the query and returns whatever the webhook answered.
// Non-2xx statuses are not errors here; only transport failures are.
func (w *webhookClient) Submit(ctx context.Context, url, accessToken, query string) (*models.SubmissionResponse, error) {
	requestBody, err := json.Marshal(dto.SubmitRequest{FinalQuery: query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// raw token, no scheme prefix
	if accessToken != "" {
		req.Header.Set("Authorization", accessToken)
	}

	start := time.Now()
	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.logger.HTTPError(http.MethodPost, url, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	w.logger.HTTP(http.MethodPost, url, resp.StatusCode, time.Since(start).Milliseconds())

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read submission response: %w", err)
	}

	return &models.SubmissionResponse{
		StatusCode: resp.StatusCode,
		Body:       string(b),
	}, nil
}
