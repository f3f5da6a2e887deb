// Package entity holds the Actor value object: one authenticated identity
// in a test, pairing credentials and roles with an owned API session.
package entity

import (
	"github.com/coconutqa/cinescope-e2e/internal/api"
	"github.com/coconutqa/cinescope-e2e/internal/models"
)

// Actor is the unit of "who is making this call" in fixtures and tests.
// The API manager (and its transport session) belongs exclusively to this
// actor; the fixture that created the actor closes the session at teardown.
type Actor struct {
	Email    string
	Password string
	Roles    []models.Role
	API      *api.Manager
}

func NewActor(email, password string, roles []models.Role, manager *api.Manager) *Actor {
	return &Actor{
		Email:    email,
		Password: password,
		Roles:    roles,
		API:      manager,
	}
}

// Creds returns the login payload for this actor.
func (a *Actor) Creds() models.Credentials {
	return models.Credentials{
		Email:    a.Email,
		Password: a.Password,
	}
}
