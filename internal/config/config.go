package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/Alwanly/webhook-submitter/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	DefaultRegistrationURL    = "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA"
	DefaultFallbackWebhookURL = "https://bfhldevapigw.healthrx.co.in/hiring/testWebhook/JAVA"

	DefaultApplicantName  = "Nipun Poswal"
	DefaultApplicantRegNo = "REG12348"
	DefaultApplicantEmail = "nipun@example.com"
)

type SubmitterConfig struct {
	RegistrationURL    string `validate:"required,url"`
	FallbackWebhookURL string `validate:"required,url"`
	ApplicantName      string `validate:"required"`
	ApplicantRegNo     string `validate:"required"`
	ApplicantEmail     string `validate:"required,email"`

	// RequestTimeout of zero leaves the transport default in place.
	RequestTimeout time.Duration `validate:"gte=0"`
}

// LoadSubmitterConfig reads submitter config from the environment, falling
// back to the fixed endpoints and applicant. A .env file in the working
// directory is loaded first when present.
func LoadSubmitterConfig() (*SubmitterConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var reqTimeout time.Duration
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		reqTimeout = time.Duration(i) * time.Second
	}

	cfg := &SubmitterConfig{
		RegistrationURL:    envOrDefault("REGISTRATION_URL", DefaultRegistrationURL),
		FallbackWebhookURL: envOrDefault("FALLBACK_WEBHOOK_URL", DefaultFallbackWebhookURL),
		ApplicantName:      envOrDefault("APPLICANT_NAME", DefaultApplicantName),
		ApplicantRegNo:     envOrDefault("APPLICANT_REG_NO", DefaultApplicantRegNo),
		ApplicantEmail:     envOrDefault("APPLICANT_EMAIL", DefaultApplicantEmail),
		RequestTimeout:     reqTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against its struct tags.
func (c *SubmitterConfig) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid submitter config: %v: %w", validator.TranslateError(err), err)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
