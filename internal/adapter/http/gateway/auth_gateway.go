package gateway

import (
	"context"
	"net/http"
	"strings"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
	"sklad/pkg"

	"golang.org/x/oauth2"
)

const tokenPath = "/token"

// AuthGateway performs the OAuth2 password grant against POST /token.
type AuthGateway struct {
	c *client.Client
}

var _ interfaces.IAuthGateway = (*AuthGateway)(nil)

func NewAuthGateway(c *client.Client) *AuthGateway {
	return &AuthGateway{c: c}
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (entities.Credential, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  g.c.BaseURL() + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.c.HTTPClient())

	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return entities.Credential{}, loginError(err)
	}
	resp := response.TokenResponse{AccessToken: tok.AccessToken, TokenType: tok.TokenType}
	return resp.ToCredential(username, g.c.Now()), nil
}

// loginError keeps the backend's detail text when the grant is rejected.
func loginError(err error) error {
	rErr, ok := err.(*oauth2.RetrieveError)
	if !ok {
		return pkg.NewDomainError("LOGIN_FAILED", "login failed: "+err.Error(), err, 0)
	}
	status := http.StatusBadRequest
	if rErr.Response != nil {
		status = rErr.Response.StatusCode
	}
	msg := strings.TrimSpace(rErr.ErrorDescription)
	if msg == "" {
		msg = client.ExtractMessage(rErr.Body)
	}
	if msg == "" {
		msg = "incorrect username or password"
	}
	return pkg.NewDomainError("LOGIN_FAILED", msg, err, status)
}
