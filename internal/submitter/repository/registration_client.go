package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Alwanly/webhook-submitter/internal/config"
	"github.com/Alwanly/webhook-submitter/internal/models"
	"github.com/Alwanly/webhook-submitter/internal/submitter/dto"
	"github.com/Alwanly/webhook-submitter/pkg/logger"
)

type registrationClient struct {
	httpClient *http.Client
	url        string
	logger     *logger.CanonicalLogger
}

// NewRegistrationClient creates a new registration client repository
func NewRegistrationClient(cfg *config.SubmitterConfig, httpClient *http.Client, log *logger.CanonicalLogger) IRegistrationClient {
	return &registrationClient{
		httpClient: httpClient,
		url:        cfg.RegistrationURL,
		logger:     log,
	}
}

func (c *registrationClient) Register(ctx context.Context, applicant models.Applicant) (*models.RegistrationResponse, error) {
	reqData := dto.RegisterRequest{
		Name:  applicant.Name,
		RegNo: applicant.RegNo,
		Email: applicant.Email,
	}

	body, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending registration request",
		logger.String(logger.FieldTargetURL, c.url),
		logger.String(logger.FieldRegNo, applicant.RegNo),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.HTTPError(http.MethodPost, c.url, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.HTTP(http.MethodPost, c.url, resp.StatusCode, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("registration failed with status %d: %s", resp.StatusCode, string(b))
	}

	var regResp *dto.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&regResp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRegistrationResponse
		}
		return nil, fmt.Errorf("failed to decode registration response: %w", err)
	}
	if regResp == nil {
		return nil, ErrEmptyRegistrationResponse
	}

	return &models.RegistrationResponse{
		WebhookURL:  regResp.WebhookURL,
		AccessToken: regResp.AccessToken,
	}, nil
}
