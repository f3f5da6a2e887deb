package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/coconutqa/cinescope-e2e/internal/generator"
	"github.com/coconutqa/cinescope-e2e/internal/models"
)

type AuthAPISuite struct {
	baseSuite
}

func TestAuthAPISuite(t *testing.T) {
	requireLiveDeployment(t)
	suite.RunSuite(t, new(AuthAPISuite))
}

func (s *AuthAPISuite) TestRegisterUser(t provider.T) {
	t.Epic("Auth API")
	t.Feature("Registration")
	t.Title("Registering a new user echoes the submitted email")

	ctx := context.Background()
	manager := s.newUserSession()
	userData := generator.User()

	var registered models.RegisterUserResponse

	t.WithNewStep("Register a randomly generated user", func(sCtx provider.StepCtx) {
		res, err := manager.Auth.Register(ctx, userData)
		sCtx.Require().NoError(err)
		sCtx.Require().NoError(res.Decode(&registered))
	})

	t.WithNewStep("Validate the response shape and email", func(sCtx provider.StepCtx) {
		sCtx.Require().NoError(models.Validate(registered))
		sCtx.Assert().Equal(userData.Email, registered.Email)
		sCtx.Assert().Contains(registered.Roles, models.RoleUser)
	})
}

func (s *AuthAPISuite) TestRegisterAndLoginUser(t provider.T) {
	t.Epic("Auth API")
	t.Feature("Login")
	t.Title("A freshly registered user can log in and receives a token")

	ctx := context.Background()
	manager := s.newUserSession()
	userData := generator.User()

	t.WithNewStep("Register the user", func(sCtx provider.StepCtx) {
		_, err := manager.Auth.Register(ctx, userData)
		sCtx.Require().NoError(err)
	})

	t.WithNewStep("Log in with the same credentials", func(sCtx provider.StepCtx) {
		res, err := manager.Auth.Login(ctx, models.Credentials{
			Email:    userData.Email,
			Password: userData.Password,
		})
		sCtx.Require().NoError(err)

		var login models.LoginResponse
		sCtx.Require().NoError(res.Decode(&login))
		sCtx.Assert().NotEmpty(login.AccessToken, "access token missing from login response")
		sCtx.Assert().Equal(userData.Email, login.User.Email)
	})
}

func (s *AuthAPISuite) TestLoginScenarios(t provider.T) {
	t.Epic("Auth API")
	t.Feature("Login")
	t.Title("Login accepts valid credentials and rejects invalid ones")

	scenarios := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		needsCreds     bool
	}{
		{"superadmin login", s.cfg.SuperAdmin.Email, s.cfg.SuperAdmin.Password, http.StatusOK, true},
		{"unknown user", "test_login1@email.com", "asdqwe123Q!", http.StatusUnauthorized, false},
		{"empty email", "", "password", http.StatusUnauthorized, false},
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.name, func(t provider.T) {
			if sc.needsCreds && (sc.email == "" || sc.password == "") {
				t.Skip("requires SUPERADMIN_EMAIL and SUPERADMIN_PASSWORD")
			}

			manager := s.newUserSession()

			res, err := manager.Auth.Login(context.Background(), models.Credentials{
				Email:    sc.email,
				Password: sc.password,
			}, sc.expectedStatus)

			t.Require().NoError(err)
			t.Assert().Equal(sc.expectedStatus, res.StatusCode)
		})
	}
}
