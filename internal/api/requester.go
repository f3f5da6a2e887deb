// Package api implements the HTTP layer of the suite: a shared-session
// requester with an expected-status gate and curl-style logging, thin
// resource clients for the auth and movies services, and the manager tying
// them to one session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

var baseHeaders = map[string]string{
	"Content-Type": "application/json",
	"Accept":       "application/json",
}

// Request describes one call through the requester. ExpectedStatus zero
// means 200; Silent suppresses the log record.
type Request struct {
	Method         string
	Endpoint       string
	Body           any
	Query          url.Values
	ExpectedStatus int
	Silent         bool
}

// Response is the fully read result of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// Ok reports whether the status is in the 2xx/3xx range.
func (r *Response) Ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

// StatusError is returned when the actual status code differs from the
// expected one. It is the sole correctness gate at this layer.
type StatusError struct {
	Method   string
	URL      string
	Expected int
	Actual   int
	Body     []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d, expected %d",
		e.Method, e.URL, e.Actual, e.Expected)
}

// Requester issues HTTP calls over a shared session against one base URL.
type Requester struct {
	session *Session
	baseURL string
	logger  *slog.Logger
}

func NewRequester(session *Session, baseURL string) *Requester {
	return &Requester{
		session: session,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

// Send performs the call synchronously and enforces the expected status.
// Fixed JSON headers are merged under session-level overrides. No retries;
// the transport timeout is the only time bound.
func (r *Requester) Send(ctx context.Context, req Request) (*Response, error) {
	fullURL := r.baseURL + req.Endpoint
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", req.Method, fullURL, err)
	}
	for k, v := range baseHeaders {
		httpReq.Header.Set(k, v)
	}
	for k, v := range r.session.headers {
		httpReq.Header.Set(k, v)
	}

	httpRes, err := r.session.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, fullURL, err)
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", req.Method, fullURL, err)
	}

	res := &Response{
		StatusCode: httpRes.StatusCode,
		Header:     httpRes.Header,
		Body:       body,
	}

	if !req.Silent {
		r.logCall(httpReq, payload, res)
	}

	expected := req.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}
	if res.StatusCode != expected {
		return res, &StatusError{
			Method:   req.Method,
			URL:      fullURL,
			Expected: expected,
			Actual:   res.StatusCode,
			Body:     body,
		}
	}

	return res, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		return payload, nil
	}
}

// logCall emits a curl-equivalent record of the request plus, for non-ok
// responses, the status and body highlighted. A failure on the logging path
// is reported on its own and never replaces the call outcome.
func (r *Requester) logCall(req *http.Request, payload []byte, res *Response) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("request logging failed", "panic", fmt.Sprint(p))
		}
	}()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%scurl -X %s '%s'%s", green, req.Method, req.URL.String(), reset)
	for key, values := range req.Header {
		for _, v := range values {
			fmt.Fprintf(&sb, " \\\n-H '%s: %s'", key, v)
		}
	}
	if len(payload) > 0 && !bytes.Equal(payload, []byte("{}")) {
		fmt.Fprintf(&sb, " \\\n-d '%s'", payload)
	}
	r.logger.Info(sb.String())

	if !res.Ok() {
		r.logger.Info(fmt.Sprintf("RESPONSE:\nSTATUS_CODE: %s%d%s\nDATA: %s%s%s",
			red, res.StatusCode, reset, red, res.Body, reset))
	}
}

func expectedStatus(fallback int, expect []int) int {
	if len(expect) > 0 {
		return expect[0]
	}
	return fallback
}
