package dto

// RegisterRequest is the body posted to the registration endpoint
type RegisterRequest struct {
	Name  string `json:"name" example:"Nipun Poswal"`
	RegNo string `json:"regNo" example:"REG12348"`
	Email string `json:"email" example:"nipun@example.com"`
}

// RegisterResponse represents the registration endpoint reply
type RegisterResponse struct {
	WebhookURL  *string `json:"webhookUrl"`
	AccessToken *string `json:"accessToken"`
}
