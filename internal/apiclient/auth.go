package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges credentials for a bearer token. The endpoint is OAuth2
// password flow, so the payload is form-encoded and the email travels in the
// username field.
func (c *Client) Token(ctx context.Context, creds domain.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	var res tokenResponse
	if err := c.postForm(ctx, "/token", form, &res); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("token: %w", err)
	}

	return res.AccessToken, nil
}

type signupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, creds domain.Credentials) error {
	payload := signupPayload{
		Email:    creds.Email,
		Password: creds.Password,
	}

	if err := c.postJSON(ctx, "/signup", payload, nil); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	return nil
}
