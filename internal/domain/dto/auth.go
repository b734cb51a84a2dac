package dto

// TokenResponse is returned by POST /api/v1/auth/{provider}/exchange.
type TokenResponse struct {
	Token     string          `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn int64           `json:"expiresIn" example:"86400"`
	Profile   ProfileResponse `json:"profile"`
}
