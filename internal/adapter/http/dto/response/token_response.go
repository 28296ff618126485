package response

import (
	"strings"
	"time"

	"sklad/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when the token carries no readable exp claim.
const DefaultTokenTTL = 7 * 24 * time.Hour

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ToCredential derives the stored credential. The signature is not checked
// here (the backend does that on every call); only exp is read so the
// console can stop sending a token it knows is stale.
func (r TokenResponse) ToCredential(username string, now time.Time) entities.Credential {
	return entities.Credential{
		AccessToken: r.AccessToken,
		TokenType:   strings.ToLower(r.TokenType),
		Username:    username,
		ExpiresAt:   TokenExpiry(r.AccessToken, now),
	}
}

func TokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return now.Add(DefaultTokenTTL)
	}
	return claims.ExpiresAt.Time
}
