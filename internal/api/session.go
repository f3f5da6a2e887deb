package api

import (
	"net/http"
	"net/http/cookiejar"
	"time"
)

const defaultTransportTimeout = 30 * time.Second

// Session is one transport connection with its own cookie jar and header
// overrides, the Go counterpart of requests.Session. A session is owned by
// exactly one actor and closed once at teardown; the suite never shares a
// session between actors.
type Session struct {
	client  *http.Client
	headers map[string]string
}

func NewSession() *Session {
	jar, _ := cookiejar.New(nil)

	return &Session{
		client: &http.Client{
			Jar:     jar,
			Timeout: defaultTransportTimeout,
		},
		headers: make(map[string]string),
	}
}

// SetHeader installs a session-level header sent with every subsequent
// request, e.g. the Authorization bearer token after login.
func (s *Session) SetHeader(key, value string) {
	s.headers[key] = value
}

// RemoveHeader drops a session-level header.
func (s *Session) RemoveHeader(key string) {
	delete(s.headers, key)
}

func (s *Session) do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

// Close releases the transport resources. Safe to call more than once.
func (s *Session) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
