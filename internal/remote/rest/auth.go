package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/remote"
)

// AuthClient implements remote.AuthAPI against the backend's
// /api/v1/auth endpoints.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthClient) Authenticate(ctx context.Context, email, secret string) (*remote.Credentials, error) {
	var creds remote.Credentials
	err := a.client.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{
		Email:    email,
		Password: secret,
	}, &creds)
	if err != nil {
		return nil, asCredentialError(err)
	}
	return &creds, nil
}

func (a *AuthClient) CreateAccount(ctx context.Context, name, email, secret string) (*remote.Credentials, error) {
	var creds remote.Credentials
	err := a.client.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: secret,
	}, &creds)
	if err != nil {
		return nil, asCredentialError(err)
	}
	return &creds, nil
}

// asCredentialError rewrites the generic 401 mapping for the auth
// endpoints, where a 401 means the email/password pair was rejected
// rather than a missing session.
func asCredentialError(err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		return fmt.Errorf("%w: email or password rejected", domain.ErrInvalidCredentials)
	}
	return err
}
