// Package e2e contains the end-to-end suites for the Cinescope deployment:
// REST API tests for auth, user management and movies, database
// cross-validation, and browser UI flows. The suites require a live
// deployment and are gated behind the E2E environment variable.
package e2e

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/coconutqa/cinescope-e2e/internal/api"
	"github.com/coconutqa/cinescope-e2e/internal/config"
	"github.com/coconutqa/cinescope-e2e/internal/entity"
	"github.com/coconutqa/cinescope-e2e/internal/generator"
	"github.com/coconutqa/cinescope-e2e/internal/models"
)

// invalidMovieID is an id no fixture ever creates.
const invalidMovieID = 99999

func requireLiveDeployment(t *testing.T) {
	t.Helper()
	if os.Getenv("E2E") == "" {
		t.Skip("requires a live Cinescope deployment; set E2E=1 to run")
	}
}

// baseSuite carries the configuration, a suite-scoped anonymous session for
// read-only tests, and the per-test session pool shared by every e2e suite.
// Each test's own sessions are created through newUserSession and closed in
// AfterEach; a failing close or cleanup never blocks the remaining teardown
// steps.
type baseSuite struct {
	suite.Suite

	cfg *config.Config

	// anon is the suite-scoped unauthenticated manager shared by read-only
	// tests. It is created once per suite and closed once in AfterAll;
	// nothing may install credentials on it.
	anon *api.Manager

	sessions []*api.Manager
	cleanups []func(ctx context.Context) error
}

func (s *baseSuite) BeforeAll(t provider.T) {
	t.WithNewStep("Load suite configuration", func(sCtx provider.StepCtx) {
		cfg, err := config.Load()
		sCtx.Require().NoError(err)
		s.cfg = cfg
	})

	s.anon = api.NewManager(api.NewSession(), s.cfg.AuthBaseURL, s.cfg.MoviesBaseURL)
}

func (s *baseSuite) AfterAll(t provider.T) {
	if s.anon != nil {
		if err := s.anon.CloseSession(); err != nil {
			t.Logf("closing shared session failed: %v", err)
		}
	}
}

func (s *baseSuite) AfterEach(t provider.T) {
	ctx := context.Background()

	for _, cleanup := range s.cleanups {
		if err := cleanup(ctx); err != nil {
			t.Logf("cleanup step failed: %v", err)
		}
	}
	s.cleanups = nil

	for _, manager := range s.sessions {
		if err := manager.CloseSession(); err != nil {
			t.Logf("closing session failed: %v", err)
		}
	}
	s.sessions = nil
}

// newUserSession creates a fresh transport session with its own manager and
// registers it in the pool for teardown.
func (s *baseSuite) newUserSession() *api.Manager {
	manager := api.NewManager(api.NewSession(), s.cfg.AuthBaseURL, s.cfg.MoviesBaseURL)
	s.sessions = append(s.sessions, manager)
	return manager
}

// deferCleanup registers a best-effort teardown action for the current test.
func (s *baseSuite) deferCleanup(fn func(ctx context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// superAdmin builds an authenticated actor from the configured superadmin
// credentials.
func (s *baseSuite) superAdmin(t provider.T) *entity.Actor {
	t.Require().NotEmpty(s.cfg.SuperAdmin.Email, "SUPERADMIN_EMAIL must be configured")

	actor := entity.NewActor(
		s.cfg.SuperAdmin.Email,
		s.cfg.SuperAdmin.Password,
		[]models.Role{models.RoleSuperAdmin},
		s.newUserSession(),
	)

	_, err := actor.API.Auth.Authenticate(context.Background(), actor.Creds())
	t.Require().NoError(err)

	return actor
}

// commonActor has the super admin register a fresh pre-verified user with
// the given role, then authenticates as that user on its own session.
func (s *baseSuite) commonActor(t provider.T, admin *entity.Actor, role models.Role) *entity.Actor {
	ctx := context.Background()

	data := generator.User().WithFlags(true, false)
	data.Roles = []models.Role{role}

	_, err := admin.API.Users.Create(ctx, data)
	t.Require().NoError(err)

	actor := entity.NewActor(data.Email, data.Password, data.Roles, s.newUserSession())
	_, err = actor.API.Auth.Authenticate(ctx, actor.Creds())
	t.Require().NoError(err)

	return actor
}

func (s *baseSuite) commonUser(t provider.T, admin *entity.Actor) *entity.Actor {
	return s.commonActor(t, admin, models.RoleUser)
}

func (s *baseSuite) commonAdmin(t provider.T, admin *entity.Actor) *entity.Actor {
	return s.commonActor(t, admin, models.RoleAdmin)
}

// createMovie creates a random movie through the super admin and schedules
// its deletion after the test.
func (s *baseSuite) createMovie(t provider.T, admin *entity.Actor) models.Movie {
	movie := s.createMovieForDeleteTest(t, admin)

	s.deferCleanup(func(ctx context.Context) error {
		_, err := admin.API.Movies.Delete(ctx, movie.ID)
		return err
	})

	return movie
}

// createMovieForDeleteTest creates a movie without scheduling the deletion;
// delete tests remove it themselves.
func (s *baseSuite) createMovieForDeleteTest(t provider.T, admin *entity.Actor) models.Movie {
	res, err := admin.API.Movies.Create(context.Background(), generator.Movie())
	t.Require().NoError(err)
	t.Require().Equal(http.StatusCreated, res.StatusCode)

	var movie models.Movie
	t.Require().NoError(res.Decode(&movie))
	t.Require().NotZero(movie.ID)

	return movie
}
