package api

// Manager aggregates the resource clients behind one logical session. All
// three clients share the session, so authentication performed through Auth
// carries over to Users and Movies.
type Manager struct {
	session *Session

	Auth   *AuthClient
	Users  *UsersClient
	Movies *MoviesClient
}

// NewManager builds the client set over a single session. The auth service
// hosts both /login-style endpoints and /user management; movies live on
// their own host.
func NewManager(session *Session, authBaseURL, moviesBaseURL string) *Manager {
	return &Manager{
		session: session,
		Auth:    NewAuthClient(session, authBaseURL),
		Users:   NewUsersClient(session, authBaseURL),
		Movies:  NewMoviesClient(session, moviesBaseURL),
	}
}

// CloseSession releases the underlying transport session.
func (m *Manager) CloseSession() error {
	return m.session.Close()
}
