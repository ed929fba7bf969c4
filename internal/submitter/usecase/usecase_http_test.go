package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/Alwanly/webhook-submitter/internal/solution"
	"github.com/Alwanly/webhook-submitter/internal/submitter/repository"
	"github.com/Alwanly/webhook-submitter/pkg/logger"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	registerKey = "POST https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA"
	fallbackKey = "POST https://bfhldevapigw.healthrx.co.in/hiring/testWebhook/JAVA"
)

type capturedRequest struct {
	auth string
	body []byte
}

func newMockedUseCase(t *testing.T) (*UseCase, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	client := &http.Client{Transport: transport}

	cfg := testConfig()
	log := logger.NewNop()
	uc := NewUseCase(
		repository.NewRegistrationClient(cfg, client, log),
		repository.NewWebhookClient(client, log),
		cfg,
		log,
	)
	return uc, transport
}

func capture(into *capturedRequest, status int, body string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		into.auth = req.Header.Get("Authorization")
		into.body, _ = io.ReadAll(req.Body)
		return httpmock.NewStringResponse(status, body), nil
	}
}

func TestRunOverHTTP_ReturnedWebhook(t *testing.T) {
	uc, transport := newMockedUseCase(t)

	transport.RegisterResponder(http.MethodPost, "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA",
		httpmock.NewStringResponder(http.StatusOK, `{"webhookUrl":"https://hooks.example.test/solution","accessToken":"eyJ.token"}`))

	var got capturedRequest
	transport.RegisterResponder(http.MethodPost, "https://hooks.example.test/solution",
		capture(&got, http.StatusOK, `{"success":true,"message":"Webhook processed successfully"}`))

	var out bytes.Buffer
	resp, err := uc.Run(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "eyJ.token", got.auth)

	want, err := json.Marshal(map[string]string{"finalQuery": solution.FinalQuery})
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got.body))

	counts := transport.GetCallCountInfo()
	assert.Equal(t, 1, counts[registerKey])
	assert.Equal(t, 0, counts[fallbackKey])
	assert.Contains(t, out.String(), "Webhook processed successfully")
}

func TestRunOverHTTP_FallbackURL(t *testing.T) {
	uc, transport := newMockedUseCase(t)

	transport.RegisterResponder(http.MethodPost, "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA",
		httpmock.NewStringResponder(http.StatusOK, `{"webhookUrl":null,"accessToken":"tok"}`))

	var got capturedRequest
	transport.RegisterResponder(http.MethodPost, "https://bfhldevapigw.healthrx.co.in/hiring/testWebhook/JAVA",
		capture(&got, http.StatusOK, "accepted"))

	_, err := uc.Run(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 1, transport.GetCallCountInfo()[fallbackKey])
	assert.Equal(t, "tok", got.auth)
}

func TestRunOverHTTP_EmptyRegistrationSendsNothing(t *testing.T) {
	uc, transport := newMockedUseCase(t)

	transport.RegisterResponder(http.MethodPost, "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA",
		httpmock.NewStringResponder(http.StatusOK, ""))
	transport.RegisterResponder(http.MethodPost, "https://bfhldevapigw.healthrx.co.in/hiring/testWebhook/JAVA",
		httpmock.NewStringResponder(http.StatusOK, "accepted"))

	_, err := uc.Run(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, repository.ErrEmptyRegistrationResponse)
	assert.Equal(t, 1, transport.GetTotalCallCount())
	assert.Equal(t, 0, transport.GetCallCountInfo()[fallbackKey])
}
