// Package test_helpers provides a configurable mock Mention API server for
// tests that exercise the client end to end.
package test_helpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RequestEntry records one request the mock server received.
type RequestEntry struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// MockResponse defines a canned response for one path.
type MockResponse struct {
	Status int
	Body   string
}

// MockServer is an httptest-backed Mention API double. Responses are keyed
// by URL path; every received request is logged for later assertions.
type MockServer struct {
	server *httptest.Server

	mu          sync.Mutex
	responses   map[string]*MockResponse
	defaultResp *MockResponse
	requestLog  []RequestEntry
}

// NewMockServer starts a mock server with a generic JSON default response.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]*MockResponse),
		defaultResp: &MockResponse{
			Status: http.StatusOK,
			Body:   `{}`,
		},
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handle))
	return ms
}

// URL returns the base URL of the mock server, suitable for Config.BaseURL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close shuts down the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse configures the response for a specific path.
func (ms *MockServer) SetResponse(path string, response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[path] = response
}

// SetDefaultResponse configures the response for paths without one.
func (ms *MockServer) SetDefaultResponse(response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.defaultResp = response
}

// Requests returns a copy of the request log.
func (ms *MockServer) Requests() []RequestEntry {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]RequestEntry{}, ms.requestLog...)
}

// LastRequest returns the most recent request to path, or nil.
func (ms *MockServer) LastRequest(path string) *RequestEntry {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := len(ms.requestLog) - 1; i >= 0; i-- {
		if ms.requestLog[i].Path == path {
			entry := ms.requestLog[i]
			return &entry
		}
	}
	return nil
}

// CallCount returns how many requests hit path.
func (ms *MockServer) CallCount(path string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	count := 0
	for _, entry := range ms.requestLog {
		if entry.Path == path {
			count++
		}
	}
	return count
}

func (ms *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requestLog = append(ms.requestLog, RequestEntry{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	response, ok := ms.responses[r.URL.Path]
	if !ok {
		response = ms.defaultResp
	}
	ms.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Status)
	w.Write([]byte(response.Body))
}

// NewMentionMockServer starts a mock server pre-configured with plausible
// Mention API responses for the common endpoints.
func NewMentionMockServer() *MockServer {
	ms := NewMockServer()

	ms.SetResponse("/app/data", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"languages":{"en":"English","fr":"French"},"countries":{"US":"United States"},"sources":["web","twitter","blogs","forums","news","facebook","images","videos"]}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"alerts":[{"id":1001,"name":"space","languages":["en"]}]}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts/1001", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"alert":{"id":1001,"name":"space","languages":["en"],"query":{"type":"basic","included_keywords":["NASA"]}}}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts/1001/mentions", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"mentions":[{"id":5001,"title":"NASA launches","tone":1,"favorite":true,"folder":"inbox"},{"id":5002,"title":"Ariane update","tone":0}]}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts/1001/mentions/5001", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"mention":{"id":5001,"title":"NASA launches","tone":1,"favorite":true,"folder":"inbox"}}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts/1001/mentions/5001/children", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"mentions":[{"id":5003,"title":"re: NASA launches","tone":0}]}`,
	})

	ms.SetResponse("/accounts/acc-1/alerts/1001/mentions/markallread", &MockResponse{
		Status: http.StatusOK,
		Body:   `{}`,
	})

	return ms
}
