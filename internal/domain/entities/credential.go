package entities

import "time"

// Credential is the bearer token issued by POST /token.
type Credential struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Username    string    `json:"username,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (c Credential) Empty() bool {
	return c.AccessToken == ""
}

// Valid reports whether the credential can still be attached to requests.
func (c Credential) Valid(now time.Time) bool {
	if c.Empty() {
		return false
	}
	return c.ExpiresAt.IsZero() || now.Before(c.ExpiresAt)
}
