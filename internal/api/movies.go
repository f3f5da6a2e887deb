package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coconutqa/cinescope-e2e/internal/models"
)

// MoviesClient wraps the movies service endpoints.
type MoviesClient struct {
	requester *Requester
}

func NewMoviesClient(session *Session, baseURL string) *MoviesClient {
	return &MoviesClient{requester: NewRequester(session, baseURL)}
}

// List fetches movies, optionally narrowed by filter.
func (c *MoviesClient) List(ctx context.Context, filter *models.MovieFilter, expect ...int) (*Response, error) {
	req := Request{
		Method:         http.MethodGet,
		Endpoint:       "/movies",
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	}
	if filter != nil {
		req.Query = filter.Query()
	}

	return c.requester.Send(ctx, req)
}

// Get fetches one movie by id.
func (c *MoviesClient) Get(ctx context.Context, id int, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodGet,
		Endpoint:       fmt.Sprintf("/movies/%d", id),
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}

// Create adds a movie. Default expected status is 201.
func (c *MoviesClient) Create(ctx context.Context, data models.MovieData, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodPost,
		Endpoint:       "/movies",
		Body:           data,
		ExpectedStatus: expectedStatus(http.StatusCreated, expect),
	})
}

// Update patches an existing movie.
func (c *MoviesClient) Update(ctx context.Context, id int, data models.MovieData, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodPatch,
		Endpoint:       fmt.Sprintf("/movies/%d", id),
		Body:           data,
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}

// Delete removes a movie by id.
func (c *MoviesClient) Delete(ctx context.Context, id int, expect ...int) (*Response, error) {
	return c.requester.Send(ctx, Request{
		Method:         http.MethodDelete,
		Endpoint:       fmt.Sprintf("/movies/%d", id),
		ExpectedStatus: expectedStatus(http.StatusOK, expect),
	})
}
