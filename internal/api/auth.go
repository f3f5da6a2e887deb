package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coconutqa/cinescope-e2e/internal/models"
)

const (
	loginEndpoint    = "/login"
	registerEndpoint = "/register"
	logoutEndpoint   = "/logout"
)

// AuthClient wraps the auth service endpoints.
type AuthClient struct {
	requester *Requester
	session   *Session
}

func NewAuthClient(session *Session, baseURL string) *AuthClient {
	return &AuthClient{
		requester: NewRequester(session, baseURL),
		session:   session,
	}
}

// Register submits a registration payload. Default expected status is 201.
func (c *AuthClient) Register(ctx context.Context, user models.UserData, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodPost,
		Endpoint:       registerEndpoint,
		Body:           user,
		ExpectedStatus: expectedStatus(http.StatusCreated, expect),
	})
}

// Login submits credentials. Default expected status is 200.
func (c *AuthClient) Login(ctx context.Context, creds models.Credentials, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodPost,
		Endpoint:       loginEndpoint,
		Body:           creds,
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}

// Authenticate logs in and installs the returned access token as the
// session's Authorization header, so every client sharing the session acts
// as this user from now on.
func (c *AuthClient) Authenticate(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	res, err := c.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	var login models.LoginResponse
	if err := res.Decode(&login); err != nil {
		return nil, err
	}
	if login.AccessToken == "" {
		return nil, fmt.Errorf("login response for %s carries no access token", creds.Email)
	}

	c.session.SetHeader("Authorization", "Bearer "+login.AccessToken)
	return &login, nil
}

// Logout ends the server-side session and drops the local Authorization
// header.
func (c *AuthClient) Logout(ctx context.Context, expect ...int) (*Response, error) {
	res, err := c.requester.Send(ctx, Request{
		Method:         http.MethodGet,
		Endpoint:       logoutEndpoint,
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
	if err != nil {
		return res, err
	}

	c.session.RemoveHeader("Authorization")
	return res, nil
}
