package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrs "github.com/mazi76erX2/mention-go/pkg/errors"
)

type staticToken string

func (t staticToken) GetToken(context.Context) (string, error) {
	return string(t), nil
}

type failingToken struct{}

func (failingToken) GetToken(context.Context) (string, error) {
	return "", errors.New("token store unavailable")
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(nil, staticToken("test-token"), baseURL, "mention-go-test/1.0", nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestClient_NewRequestHeaders(t *testing.T) {
	c := newTestClient(t, "https://api.mention.net/api")

	spec := &RequestSpec{Method: http.MethodGet, Path: "/app/data"}
	req, err := c.NewRequest(context.Background(), spec)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if got := req.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != "mention-go-test/1.0" {
		t.Errorf("User-Agent = %q", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("Content-Type set on bodyless request: %q", got)
	}
	if req.URL.String() != "https://api.mention.net/api/app/data" {
		t.Errorf("URL = %q", req.URL.String())
	}
}

func TestClient_NewRequestBody(t *testing.T) {
	c := newTestClient(t, "https://api.mention.net/api")

	spec := &RequestSpec{
		Method: http.MethodPost,
		Path:   "/accounts/A/alerts",
		Body:   []byte(`{"name":"space"}`),
	}
	req, err := c.NewRequest(context.Background(), spec)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if req.ContentLength != int64(len(spec.Body)) {
		t.Errorf("ContentLength = %d, want %d", req.ContentLength, len(spec.Body))
	}
}

func TestClient_NewRequestQueryPreserved(t *testing.T) {
	c := newTestClient(t, "https://api.mention.net/api")

	spec := &RequestSpec{
		Method: http.MethodGet,
		Path:   "/accounts/A/alerts/B/mentions",
		Query:  "favorite=true&folder=inbox&limit=1000",
	}
	req, err := c.NewRequest(context.Background(), spec)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if req.URL.RawQuery != spec.Query {
		t.Errorf("RawQuery = %q, want %q", req.URL.RawQuery, spec.Query)
	}
}

func TestClient_NewRequestTokenFailure(t *testing.T) {
	c, err := NewClient(nil, failingToken{}, "https://api.mention.net/api", "ua", nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = c.NewRequest(context.Background(), &RequestSpec{Method: http.MethodGet, Path: "/app/data"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var cerr *pkgerrs.ClientError
	if !errors.As(err, &cerr) {
		t.Errorf("expected *pkgerrs.ClientError, got %T", err)
	}
}

func TestClient_DoDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("server saw Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"space"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	req, err := c.NewRequest(context.Background(), &RequestSpec{Method: http.MethodGet, Path: "/app/data"})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	var out struct {
		Name string `json:"name"`
	}
	resp, err := c.Do(req, &out)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if out.Name != "space" {
		t.Errorf("decoded name = %q", out.Name)
	}
}

func TestClient_DoSurfacesAPIErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error":"nope"}`))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			req, err := c.NewRequest(context.Background(), &RequestSpec{Method: http.MethodGet, Path: "/app/data"})
			if err != nil {
				t.Fatalf("NewRequest failed: %v", err)
			}

			_, err = c.Do(req, nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			apiErr, ok := err.(*pkgerrs.APIError)
			if !ok {
				t.Fatalf("expected *pkgerrs.APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Body != `{"error":"nope"}` {
				t.Errorf("Body = %q", apiErr.Body)
			}
		})
	}
}

func TestClient_DoReportsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	req, err := c.NewRequest(context.Background(), &RequestSpec{Method: http.MethodGet, Path: "/app/data"})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	var out map[string]any
	_, err = c.Do(req, &out)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*pkgerrs.ParseError); !ok {
		t.Errorf("expected *pkgerrs.ParseError, got %T", err)
	}
}

func TestClient_BaseURLWithTrailingSlash(t *testing.T) {
	c := newTestClient(t, "https://api.mention.net/api/")

	req, err := c.NewRequest(context.Background(), &RequestSpec{Method: http.MethodGet, Path: "/app/data"})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if req.URL.String() != "https://api.mention.net/api/app/data" {
		t.Errorf("URL = %q", req.URL.String())
	}
}
