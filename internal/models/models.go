package models

// Applicant identifies who is registering for a webhook.
type Applicant struct {
	Name  string
	RegNo string
	Email string
}

// RegistrationResponse is what the registration endpoint hands back.
// Both fields may be absent or null in the server reply.
type RegistrationResponse struct {
	WebhookURL  *string
	AccessToken *string
}

// SubmissionResponse is the raw outcome of the webhook submission.
type SubmissionResponse struct {
	StatusCode int
	Body       string
}

// Successful reports whether the webhook answered with a 2xx status.
func (r *SubmissionResponse) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
