package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tareas/internal/adapter/api/dto"
	"tareas/internal/core/ports"
)

// AuthClient performs the unauthenticated login and signup calls.
type AuthClient struct {
	baseURL string
	http    *http.Client
}

var _ ports.AuthGateway = (*AuthClient)(nil)

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout),
	}
}

// Login exchanges credentials for a backend-issued bearer token.
func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := dto.LoginRequest{Email: email, Password: password}

	var out dto.LoginResponse
	if err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/users/login", "", payload, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Signup registers a new account and returns the backend's confirmation
// message.
func (c *AuthClient) Signup(ctx context.Context, name, email, password string) (string, error) {
	payload := dto.SignupRequest{Name: name, Email: email, Password: password}

	var out dto.MessageResponse
	if err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/users/crear", "", payload, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
