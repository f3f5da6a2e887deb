package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coconutqa/cinescope-e2e/internal/models"
)

// UsersClient wraps the user management endpoints of the auth service.
// Every operation requires SUPER_ADMIN rights on the shared session.
type UsersClient struct {
	requester *Requester
}

func NewUsersClient(session *Session, baseURL string) *UsersClient {
	return &UsersClient{requester: NewRequester(session, baseURL)}
}

// Get fetches a user by locator: either an id or an email.
func (c *UsersClient) Get(ctx context.Context, locator string, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodGet,
		Endpoint:       fmt.Sprintf("/user/%s", locator),
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}

// Create registers a user on behalf of an administrator; unlike public
// registration it honors the verified/banned flags. Default status is 201.
func (c *UsersClient) Create(ctx context.Context, user models.UserData, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodPost,
		Endpoint:       "/user",
		Body:           user,
		ExpectedStatus: expectedStatus(http.StatusCreated, expect),
	})
}

// Delete removes a user by id.
func (c *UsersClient) Delete(ctx context.Context, id string, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodDelete,
		Endpoint:       fmt.Sprintf("/user/%s", id),
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}
